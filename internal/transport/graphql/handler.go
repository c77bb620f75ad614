package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"

	"github.com/heartmarshall/linkshelf-backend/internal/config"
)

// NewHandler serves schema over HTTP. It accepts GET and POST requests with
// JSON, form or application/graphql bodies; with the playground enabled a
// browser GET renders GraphQL Playground.
func NewHandler(schema graphql.Schema, cfg config.GraphQLConfig) http.Handler {
	return handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     cfg.Pretty,
		GraphiQL:   false,
		Playground: cfg.PlaygroundEnabled,
	})
}
