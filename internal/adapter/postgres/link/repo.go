// Package link implements the link store on PostgreSQL. Links are ordered by
// id; ids are UUIDv7 strings assigned on insert, so id order follows insertion.
package link

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/linkshelf-backend/internal/adapter/postgres"
	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var linkColumns = []string{"id", "title", "url", "description", "image_url", "category", "created_at"}

var userColumns = []string{"u.id", "u.email", "u.name", "u.created_at"}

type linkRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	URL         string    `db:"url"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	Category    string    `db:"category"`
	CreatedAt   time.Time `db:"created_at"`
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type linkUserRow struct {
	LinkID    string    `db:"link_id"`
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides link persistence backed by PostgreSQL.
type Repo struct {
	db           postgres.Querier
	defaultLimit int
}

// Option configures a Repo.
type Option func(*Repo)

// WithDefaultLimit sets the page size used when a filter carries no limit.
// Zero means unlimited.
func WithDefaultLimit(n int) Option {
	return func(r *Repo) {
		if n > 0 {
			r.defaultLimit = n
		}
	}
}

// New creates a link repository. db is used whenever the context carries no transaction.
func New(db postgres.Querier, opts ...Option) *Repo {
	r := &Repo{db: db}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindMany returns links in ascending id order.
//
// With a cursor, the page starts at the cursor record (or right after it when
// SkipCursor is set). A cursor that names no existing link yields an empty page.
func (r *Repo) FindMany(ctx context.Context, filter domain.LinkFilter) ([]domain.Link, error) {
	q := psql.Select(linkColumns...).From("links").OrderBy("id ASC")

	if filter.Cursor != nil {
		cursor := *filter.Cursor
		if filter.SkipCursor {
			q = q.Where(squirrel.Gt{"id": cursor})
		} else {
			q = q.Where(squirrel.GtOrEq{"id": cursor})
		}
		q = q.Where(squirrel.Expr("EXISTS (SELECT 1 FROM links c WHERE c.id = ?)", cursor))
	}

	switch {
	case filter.Limit != nil:
		if *filter.Limit < 0 {
			return nil, domain.NewValidationError("limit", "must not be negative")
		}
		q = q.Limit(uint64(*filter.Limit))
	case r.defaultLimit > 0:
		q = q.Limit(uint64(r.defaultLimit))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find links query: %w", err)
	}

	var rows []linkRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "links", cursorKey(filter.Cursor))
	}

	links := make([]domain.Link, len(rows))
	for i, row := range rows {
		links[i] = toDomainLink(row)
	}
	return links, nil
}

// GetByID returns a single link. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Link, error) {
	sql, args, err := psql.Select(linkColumns...).From("links").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get link query: %w", err)
	}

	var row linkRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "link", id)
	}

	l := toDomainLink(row)
	return &l, nil
}

// GetUsersByLinkIDs returns users for multiple links (for DataLoader).
// Results are grouped by link in the order of the join rows.
func (r *Repo) GetUsersByLinkIDs(ctx context.Context, linkIDs []string) ([]domain.LinkUser, error) {
	if len(linkIDs) == 0 {
		return []domain.LinkUser{}, nil
	}

	sql, args, err := psql.Select(append([]string{"lu.link_id"}, userColumns...)...).
		From("link_users lu").
		Join("users u ON u.id = lu.user_id").
		Where(squirrel.Eq{"lu.link_id": linkIDs}).
		OrderBy("lu.link_id", "lu.created_at", "u.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build batch link users query: %w", err)
	}

	var rows []linkUserRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "link_users", strings.Join(linkIDs, ","))
	}

	result := make([]domain.LinkUser, len(rows))
	for i, row := range rows {
		result[i] = domain.LinkUser{
			LinkID: row.LinkID,
			User: toDomainUser(userRow{
				ID:        row.ID,
				Email:     row.Email,
				Name:      row.Name,
				CreatedAt: row.CreatedAt,
			}),
		}
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a link with a freshly generated id and returns the stored record.
// Any ID or CreatedAt on the input is ignored.
func (r *Repo) Create(ctx context.Context, l domain.Link) (*domain.Link, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate link id: %w", err)
	}

	sql, args, err := psql.Insert("links").
		Columns("id", "title", "url", "description", "image_url", "category").
		Values(id.String(), l.Title, l.URL, l.Description, l.ImageURL, l.Category).
		Suffix("RETURNING " + strings.Join(linkColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert link query: %w", err)
	}

	var row linkRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "link", id.String())
	}

	created := toDomainLink(row)
	return &created, nil
}

// AddUser associates a user with a link. Adding an existing pair is a no-op.
// Returns domain.ErrNotFound if either side does not exist.
func (r *Repo) AddUser(ctx context.Context, linkID string, userID uuid.UUID) error {
	sql, args, err := psql.Insert("link_users").
		Columns("link_id", "user_id").
		Values(linkID, userID).
		Suffix("ON CONFLICT (link_id, user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build add link user query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "link_users", linkID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainLink(row linkRow) domain.Link {
	return domain.Link{
		ID:          row.ID,
		Title:       row.Title,
		URL:         row.URL,
		Description: row.Description,
		ImageURL:    row.ImageURL,
		Category:    row.Category,
		CreatedAt:   row.CreatedAt,
	}
}

func toDomainUser(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}
}

func cursorKey(cursor *string) string {
	if cursor == nil {
		return "<start>"
	}
	return *cursor
}
