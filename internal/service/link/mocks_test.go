package link

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
)

var _ linkRepo = &linkRepoMock{}

type linkRepoMock struct {
	FindManyFunc func(ctx context.Context, filter domain.LinkFilter) ([]domain.Link, error)
	GetByIDFunc  func(ctx context.Context, id string) (*domain.Link, error)
	CreateFunc   func(ctx context.Context, link domain.Link) (*domain.Link, error)
	AddUserFunc  func(ctx context.Context, linkID string, userID uuid.UUID) error

	calls struct {
		FindMany []struct {
			Ctx    context.Context
			Filter domain.LinkFilter
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		Create []struct {
			Ctx  context.Context
			Link domain.Link
		}
		AddUser []struct {
			Ctx    context.Context
			LinkID string
			UserID uuid.UUID
		}
	}
	lockFindMany sync.RWMutex
	lockGetByID  sync.RWMutex
	lockCreate   sync.RWMutex
	lockAddUser  sync.RWMutex
}

func (mock *linkRepoMock) FindMany(ctx context.Context, filter domain.LinkFilter) ([]domain.Link, error) {
	if mock.FindManyFunc == nil {
		panic("linkRepoMock.FindManyFunc: method is nil but linkRepo.FindMany was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.LinkFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockFindMany.Lock()
	mock.calls.FindMany = append(mock.calls.FindMany, callInfo)
	mock.lockFindMany.Unlock()
	return mock.FindManyFunc(ctx, filter)
}

func (mock *linkRepoMock) FindManyCalls() []struct {
	Ctx    context.Context
	Filter domain.LinkFilter
} {
	mock.lockFindMany.RLock()
	calls := mock.calls.FindMany
	mock.lockFindMany.RUnlock()
	return calls
}

func (mock *linkRepoMock) GetByID(ctx context.Context, id string) (*domain.Link, error) {
	if mock.GetByIDFunc == nil {
		panic("linkRepoMock.GetByIDFunc: method is nil but linkRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *linkRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *linkRepoMock) Create(ctx context.Context, link domain.Link) (*domain.Link, error) {
	if mock.CreateFunc == nil {
		panic("linkRepoMock.CreateFunc: method is nil but linkRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Link domain.Link
	}{Ctx: ctx, Link: link}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, link)
}

func (mock *linkRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Link domain.Link
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *linkRepoMock) AddUser(ctx context.Context, linkID string, userID uuid.UUID) error {
	if mock.AddUserFunc == nil {
		panic("linkRepoMock.AddUserFunc: method is nil but linkRepo.AddUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		LinkID string
		UserID uuid.UUID
	}{Ctx: ctx, LinkID: linkID, UserID: userID}
	mock.lockAddUser.Lock()
	mock.calls.AddUser = append(mock.calls.AddUser, callInfo)
	mock.lockAddUser.Unlock()
	return mock.AddUserFunc(ctx, linkID, userID)
}

func (mock *linkRepoMock) AddUserCalls() []struct {
	Ctx    context.Context
	LinkID string
	UserID uuid.UUID
} {
	mock.lockAddUser.RLock()
	calls := mock.calls.AddUser
	mock.lockAddUser.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
