package graphql

import (
	"fmt"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

type schemaBuilder struct {
	root    ResolverRoot
	present ErrorPresenter
}

// NewSchema builds the executable links schema:
//
//	type Query    { links(first: Int, after: String): Response, link(id: String!): Link }
//	type Mutation { createLink(...): Link!, bookmarkLink(id: String!): Link! }
//
// Every resolver error passes through present before it reaches the response.
func NewSchema(root ResolverRoot, present ErrorPresenter) (graphql.Schema, error) {
	b := &schemaBuilder{root: root, present: present}

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: userField(func(u domain.User) any { return u.ID.String() })},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: userField(func(u domain.User) any { return u.Email })},
			"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: userField(func(u domain.User) any { return u.Name })},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String), Resolve: userField(func(u domain.User) any { return u.CreatedAt.UTC().Format(time.RFC3339) })},
		},
	})

	linkType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Link",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.String, Resolve: linkField(func(l *domain.Link) any { return l.ID })},
			"title":       &graphql.Field{Type: graphql.String, Resolve: linkField(func(l *domain.Link) any { return l.Title })},
			"url":         &graphql.Field{Type: graphql.String, Resolve: linkField(func(l *domain.Link) any { return l.URL })},
			"description": &graphql.Field{Type: graphql.String, Resolve: linkField(func(l *domain.Link) any { return l.Description })},
			"imageUrl":    &graphql.Field{Type: graphql.String, Resolve: linkField(func(l *domain.Link) any { return l.ImageURL })},
			"category":    &graphql.Field{Type: graphql.String, Resolve: linkField(func(l *domain.Link) any { return l.Category })},
			"users":       &graphql.Field{Type: graphql.NewList(userType), Resolve: b.linkUsers},
		},
	})

	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Edge",
		Fields: graphql.Fields{
			"cursor": &graphql.Field{Type: graphql.String, Resolve: edgeField(func(e domain.Edge) any { return e.Cursor })},
			"node":   &graphql.Field{Type: linkType, Resolve: edgeField(func(e domain.Edge) any { return &e.Node })},
		},
	})

	pageInfoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"endCursor": &graphql.Field{Type: graphql.String, Resolve: pageInfoField(func(pi domain.PageInfo) any {
				if pi.EndCursor == nil {
					return nil
				}
				return *pi.EndCursor
			})},
			"hasNextPage": &graphql.Field{Type: graphql.Boolean, Resolve: pageInfoField(func(pi domain.PageInfo) any { return pi.HasNextPage })},
		},
	})

	responseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Response",
		Fields: graphql.Fields{
			"pageInfo": &graphql.Field{Type: pageInfoType, Resolve: connectionField(func(c *domain.LinkConnection) any { return c.PageInfo })},
			"edges":    &graphql.Field{Type: graphql.NewList(edgeType), Resolve: connectionField(func(c *domain.LinkConnection) any { return c.Edges })},
		},
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"links": &graphql.Field{
				Type: responseType,
				Args: graphql.FieldConfigArgument{
					"first": &graphql.ArgumentConfig{Type: graphql.Int},
					"after": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: b.wrap(b.links),
			},
			"link": &graphql.Field{
				Type: linkType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: b.wrap(b.link),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createLink": &graphql.Field{
				Type: graphql.NewNonNull(linkType),
				Args: graphql.FieldConfigArgument{
					"title":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"url":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"imageUrl":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"category":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"description": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: b.wrap(b.createLink),
			},
			"bookmarkLink": &graphql.Field{
				Type: graphql.NewNonNull(linkType),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: b.wrap(b.bookmarkLink),
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("build graphql schema: %w", err)
	}
	return schema, nil
}

// ---------------------------------------------------------------------------
// Root fields
// ---------------------------------------------------------------------------

func (b *schemaBuilder) links(p graphql.ResolveParams) (any, error) {
	var (
		first *int
		after *string
	)
	if v, ok := p.Args["first"].(int); ok {
		first = &v
	}
	if v, ok := p.Args["after"].(string); ok {
		after = &v
	}

	conn, err := b.root.Query().Links(p.Context, first, after)
	if err != nil || conn == nil {
		return nil, err
	}
	return conn, nil
}

func (b *schemaBuilder) link(p graphql.ResolveParams) (any, error) {
	l, err := b.root.Query().Link(p.Context, stringArg(p, "id"))
	if err != nil || l == nil {
		return nil, err
	}
	return l, nil
}

func (b *schemaBuilder) createLink(p graphql.ResolveParams) (any, error) {
	l, err := b.root.Mutation().CreateLink(p.Context,
		stringArg(p, "title"),
		stringArg(p, "url"),
		stringArg(p, "imageUrl"),
		stringArg(p, "category"),
		stringArg(p, "description"),
	)
	if err != nil || l == nil {
		return nil, err
	}
	return l, nil
}

func (b *schemaBuilder) bookmarkLink(p graphql.ResolveParams) (any, error) {
	l, err := b.root.Mutation().BookmarkLink(p.Context, stringArg(p, "id"))
	if err != nil || l == nil {
		return nil, err
	}
	return l, nil
}

func (b *schemaBuilder) linkUsers(p graphql.ResolveParams) (any, error) {
	l, ok := p.Source.(*domain.Link)
	if !ok {
		return nil, fmt.Errorf("link users: unexpected source %T", p.Source)
	}

	thunk := b.root.Link().Users(p.Context, l)
	return func() (interface{}, error) {
		users, err := thunk()
		if err != nil {
			return nil, b.present(p.Context, err)
		}
		return users, nil
	}, nil
}

// wrap passes resolver errors through the presenter.
func (b *schemaBuilder) wrap(fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		v, err := fn(p)
		if err != nil {
			return nil, b.present(p.Context, err)
		}
		return v, nil
	}
}

// ---------------------------------------------------------------------------
// Object field helpers
// ---------------------------------------------------------------------------

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func linkField(get func(*domain.Link) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		l, ok := p.Source.(*domain.Link)
		if !ok {
			return nil, fmt.Errorf("link field: unexpected source %T", p.Source)
		}
		return get(l), nil
	}
}

func userField(get func(domain.User) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		u, ok := p.Source.(domain.User)
		if !ok {
			return nil, fmt.Errorf("user field: unexpected source %T", p.Source)
		}
		return get(u), nil
	}
}

func edgeField(get func(domain.Edge) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		e, ok := p.Source.(domain.Edge)
		if !ok {
			return nil, fmt.Errorf("edge field: unexpected source %T", p.Source)
		}
		return get(e), nil
	}
}

func pageInfoField(get func(domain.PageInfo) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		pi, ok := p.Source.(domain.PageInfo)
		if !ok {
			return nil, fmt.Errorf("page info field: unexpected source %T", p.Source)
		}
		return get(pi), nil
	}
}

func connectionField(get func(*domain.LinkConnection) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		c, ok := p.Source.(*domain.LinkConnection)
		if !ok {
			return nil, fmt.Errorf("response field: unexpected source %T", p.Source)
		}
		return get(c), nil
	}
}
