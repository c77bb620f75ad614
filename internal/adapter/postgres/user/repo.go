// Package user implements the user store on PostgreSQL. Emails are unique
// case-insensitively.
package user

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

var columns = []string{"id", "email", "name", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns domain.ErrNotFound when no user has the id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id.String())
}

// GetByEmail matches the email case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Expr("lower(email) = lower(?)", email), email)
}

// Upsert creates the user for email, or renames the existing one, and returns
// the stored record. The id of an existing user never changes.
func (r *Repo) Upsert(ctx context.Context, email, name string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domain.NewValidationError("email", "required")
	}

	sql, args, err := psql.Insert("users").
		Columns("id", "email", "name").
		Values(uuid.New(), email, name).
		Suffix("ON CONFLICT ((lower(email))) DO UPDATE SET name = EXCLUDED.name RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert user query: %w", err)
	}

	var u row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return toDomain(u), nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key string) (*domain.User, error) {
	sql, args, err := psql.Select(columns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user query: %w", err)
	}

	var u row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return toDomain(u), nil
}

func toDomain(u row) *domain.User {
	return &domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
