package link

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func linkRows(ids ...string) *pgxmock.Rows {
	now := time.Now()
	rows := pgxmock.NewRows(linkColumns)
	for _, id := range ids {
		rows.AddRow(id, "title "+id, "https://example.com/"+id, "desc", "https://example.com/img.png", "misc", now)
	}
	return rows
}

func ptr[T any](v T) *T { return &v }

func TestRepo_FindMany(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		filter       domain.LinkFilter
		defaultLimit int
		setup        func(mock pgxmock.PgxPoolIface)
		wantIDs      []string
	}{
		{
			name:   "no cursor with limit",
			filter: domain.LinkFilter{Limit: ptr(2)},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM links ORDER BY id ASC LIMIT 2`).
					WillReturnRows(linkRows("a", "b"))
			},
			wantIDs: []string{"a", "b"},
		},
		{
			name:   "cursor skipped",
			filter: domain.LinkFilter{Limit: ptr(2), Cursor: ptr("b"), SkipCursor: true},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM links WHERE id > \$1 AND EXISTS \(SELECT 1 FROM links c WHERE c\.id = \$2\) ORDER BY id ASC LIMIT 2`).
					WithArgs("b", "b").
					WillReturnRows(linkRows("c", "d"))
			},
			wantIDs: []string{"c", "d"},
		},
		{
			name:   "cursor included",
			filter: domain.LinkFilter{Limit: ptr(1), Cursor: ptr("c")},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM links WHERE id >= \$1 AND EXISTS`).
					WithArgs("c", "c").
					WillReturnRows(linkRows("c"))
			},
			wantIDs: []string{"c"},
		},
		{
			name:         "default limit applies when filter has none",
			filter:       domain.LinkFilter{},
			defaultLimit: 10,
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM links ORDER BY id ASC LIMIT 10`).
					WillReturnRows(linkRows("a"))
			},
			wantIDs: []string{"a"},
		},
		{
			name:   "unknown cursor gives empty page",
			filter: domain.LinkFilter{Limit: ptr(2), Cursor: ptr("zzz"), SkipCursor: true},
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`WHERE id > \$1 AND EXISTS`).
					WithArgs("zzz", "zzz").
					WillReturnRows(linkRows())
			},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newMock(t)
			tt.setup(mock)
			repo := New(mock, WithDefaultLimit(tt.defaultLimit))

			got, err := repo.FindMany(context.Background(), tt.filter)
			require.NoError(t, err)

			ids := make([]string, len(got))
			for i, l := range got {
				ids[i] = l.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepo_FindMany_NoLimitWithoutDefault(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(`FROM links ORDER BY id ASC$`).
		WillReturnRows(linkRows("a", "b", "c"))

	got, err := New(mock).FindMany(context.Background(), domain.LinkFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_FindMany_NegativeLimit(t *testing.T) {
	t.Parallel()

	mock := newMock(t)

	_, err := New(mock).FindMany(context.Background(), domain.LinkFilter{Limit: ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_FindMany_QueryError(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`FROM links`).WillReturnError(dbErr)

	_, err := New(mock).FindMany(context.Background(), domain.LinkFilter{Limit: ptr(1)})
	assert.ErrorIs(t, err, dbErr)
}

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(`SELECT .+ FROM links WHERE id = \$1`).
			WithArgs("a").
			WillReturnRows(linkRows("a"))

		got, err := New(mock).GetByID(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)
		assert.Equal(t, "https://example.com/a", got.URL)
		assert.Equal(t, "https://example.com/img.png", got.ImageURL)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectQuery(`FROM links WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(linkRows())

		_, err := New(mock).GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRepo_Create(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	mock.ExpectQuery(`INSERT INTO links \(id,title,url,description,image_url,category\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) RETURNING`).
		WithArgs(pgxmock.AnyArg(), "Go", "https://go.dev", "The Go site", "https://go.dev/logo.png", "lang").
		WillReturnRows(pgxmock.NewRows(linkColumns).
			AddRow("0190f0e0-0000-7000-8000-000000000001", "Go", "https://go.dev", "The Go site", "https://go.dev/logo.png", "lang", time.Now()))

	got, err := New(mock).Create(context.Background(), domain.Link{
		Title:       "Go",
		URL:         "https://go.dev",
		Description: "The Go site",
		ImageURL:    "https://go.dev/logo.png",
		Category:    "lang",
	})
	require.NoError(t, err)
	assert.Equal(t, "0190f0e0-0000-7000-8000-000000000001", got.ID)
	assert.Equal(t, "lang", got.Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_AddUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectExec(`INSERT INTO link_users .+ ON CONFLICT \(link_id, user_id\) DO NOTHING`).
			WithArgs("a", userID).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, New(mock).AddUser(context.Background(), "a", userID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		mock.ExpectExec(`INSERT INTO link_users`).
			WithArgs("a", userID).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		err := New(mock).AddUser(context.Background(), "a", userID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRepo_GetUsersByLinkIDs(t *testing.T) {
	t.Parallel()

	t.Run("empty input skips query", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)

		got, err := New(mock).GetUsersByLinkIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rows carry link id", func(t *testing.T) {
		t.Parallel()

		mock := newMock(t)
		u1 := uuid.New()
		now := time.Now()
		mock.ExpectQuery(`WHERE lu\.link_id IN \(\$1,\$2\)`).
			WithArgs("a", "b").
			WillReturnRows(pgxmock.NewRows([]string{"link_id", "id", "email", "name", "created_at"}).
				AddRow("a", u1, "one@example.com", "One", now).
				AddRow("b", u1, "one@example.com", "One", now))

		got, err := New(mock).GetUsersByLinkIDs(context.Background(), []string{"a", "b"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].LinkID)
		assert.Equal(t, "b", got[1].LinkID)
		assert.Equal(t, u1, got[1].User.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
