package resolver

import (
	"context"
	"sync"

	"github.com/heartmarshall/linkshelf-backend/internal/domain"
	"github.com/heartmarshall/linkshelf-backend/internal/service/link"
)

var _ linkService = &linkServiceMock{}

type linkServiceMock struct {
	ListLinksFunc    func(ctx context.Context, input link.ListLinksInput) (*domain.LinkConnection, error)
	GetLinkFunc      func(ctx context.Context, id string) (*domain.Link, error)
	CreateLinkFunc   func(ctx context.Context, input link.CreateLinkInput) (*domain.Link, error)
	BookmarkLinkFunc func(ctx context.Context, id string) (*domain.Link, error)

	calls struct {
		ListLinks []struct {
			Ctx   context.Context
			Input link.ListLinksInput
		}
		CreateLink []struct {
			Ctx   context.Context
			Input link.CreateLinkInput
		}
	}
	lockListLinks  sync.RWMutex
	lockCreateLink sync.RWMutex
}

func (mock *linkServiceMock) ListLinks(ctx context.Context, input link.ListLinksInput) (*domain.LinkConnection, error) {
	if mock.ListLinksFunc == nil {
		panic("linkServiceMock.ListLinksFunc: method is nil but linkService.ListLinks was just called")
	}
	mock.lockListLinks.Lock()
	mock.calls.ListLinks = append(mock.calls.ListLinks, struct {
		Ctx   context.Context
		Input link.ListLinksInput
	}{Ctx: ctx, Input: input})
	mock.lockListLinks.Unlock()
	return mock.ListLinksFunc(ctx, input)
}

func (mock *linkServiceMock) ListLinksCalls() []struct {
	Ctx   context.Context
	Input link.ListLinksInput
} {
	mock.lockListLinks.RLock()
	calls := mock.calls.ListLinks
	mock.lockListLinks.RUnlock()
	return calls
}

func (mock *linkServiceMock) GetLink(ctx context.Context, id string) (*domain.Link, error) {
	if mock.GetLinkFunc == nil {
		panic("linkServiceMock.GetLinkFunc: method is nil but linkService.GetLink was just called")
	}
	return mock.GetLinkFunc(ctx, id)
}

func (mock *linkServiceMock) CreateLink(ctx context.Context, input link.CreateLinkInput) (*domain.Link, error) {
	if mock.CreateLinkFunc == nil {
		panic("linkServiceMock.CreateLinkFunc: method is nil but linkService.CreateLink was just called")
	}
	mock.lockCreateLink.Lock()
	mock.calls.CreateLink = append(mock.calls.CreateLink, struct {
		Ctx   context.Context
		Input link.CreateLinkInput
	}{Ctx: ctx, Input: input})
	mock.lockCreateLink.Unlock()
	return mock.CreateLinkFunc(ctx, input)
}

func (mock *linkServiceMock) CreateLinkCalls() []struct {
	Ctx   context.Context
	Input link.CreateLinkInput
} {
	mock.lockCreateLink.RLock()
	calls := mock.calls.CreateLink
	mock.lockCreateLink.RUnlock()
	return calls
}

func (mock *linkServiceMock) BookmarkLink(ctx context.Context, id string) (*domain.Link, error) {
	if mock.BookmarkLinkFunc == nil {
		panic("linkServiceMock.BookmarkLinkFunc: method is nil but linkService.BookmarkLink was just called")
	}
	return mock.BookmarkLinkFunc(ctx, id)
}
