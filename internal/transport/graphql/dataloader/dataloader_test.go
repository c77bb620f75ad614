package dataloader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
	dl "github.com/heartmarshall/linkshelf-backend/internal/transport/graphql/dataloader"
)

type mockLinkUserRepo struct {
	result []domain.LinkUser
	err    error
	calls  atomic.Int32
	keys   [][]string
	mu     sync.Mutex
}

func (m *mockLinkUserRepo) GetUsersByLinkIDs(_ context.Context, ids []string) ([]domain.LinkUser, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.keys = append(m.keys, ids)
	m.mu.Unlock()
	return m.result, m.err
}

func TestFromContext_ReturnsLoaders(t *testing.T) {
	loaders := dl.NewLoaders(&dl.Repos{LinkUsers: &mockLinkUserRepo{}})
	ctx := dl.WithLoaders(context.Background(), loaders)

	assert.Same(t, loaders, dl.FromContext(ctx))
}

func TestFromContext_PanicsWhenMissing(t *testing.T) {
	assert.Panics(t, func() {
		dl.FromContext(context.Background())
	})
}

func TestMiddleware_InjectsFreshLoadersPerRequest(t *testing.T) {
	mw := dl.Middleware(&dl.Repos{LinkUsers: &mockLinkUserRepo{}})

	var got []*dl.Loaders
	handler := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = append(got, dl.FromContext(r.Context()))
	}))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/query", nil))
	}

	require.Len(t, got, 2)
	assert.NotNil(t, got[0].UsersByLinkID)
	assert.NotSame(t, got[0], got[1])
}

func TestUsersLoader_GroupsByLinkID(t *testing.T) {
	u1 := domain.User{ID: uuid.New(), Email: "one@example.com"}
	u2 := domain.User{ID: uuid.New(), Email: "two@example.com"}

	repo := &mockLinkUserRepo{
		result: []domain.LinkUser{
			{LinkID: "a", User: u1},
			{LinkID: "a", User: u2},
			{LinkID: "b", User: u2},
		},
	}
	loaders := dl.NewLoaders(&dl.Repos{LinkUsers: repo})
	ctx := context.Background()

	thunkA := loaders.UsersByLinkID.Load(ctx, "a")
	thunkB := loaders.UsersByLinkID.Load(ctx, "b")
	thunkC := loaders.UsersByLinkID.Load(ctx, "c")

	usersA, err := thunkA()
	require.NoError(t, err)
	assert.Equal(t, []domain.User{u1, u2}, usersA)

	usersB, err := thunkB()
	require.NoError(t, err)
	assert.Equal(t, []domain.User{u2}, usersB)

	usersC, err := thunkC()
	require.NoError(t, err)
	assert.NotNil(t, usersC, "should return empty slice, not nil")
	assert.Empty(t, usersC)

	assert.Equal(t, int32(1), repo.calls.Load())
	assert.ElementsMatch(t, []string{"a", "b", "c"}, repo.keys[0])
}

func TestUsersLoader_PropagatesError(t *testing.T) {
	repo := &mockLinkUserRepo{err: domain.ErrNotFound}
	loaders := dl.NewLoaders(&dl.Repos{LinkUsers: repo})

	_, err := loaders.UsersByLinkID.Load(context.Background(), "a")()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
