package category

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
)

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	CreateFunc     func(ctx context.Context, category *domain.Category) (*domain.Category, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx      context.Context
			Category *domain.Category
		}
	}
	lockListByUser sync.RWMutex
	lockCreate     sync.RWMutex
}

func (mock *categoryRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	if mock.ListByUserFunc == nil {
		panic("categoryRepoMock.ListByUserFunc: method is nil but categoryRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *categoryRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category *domain.Category
	}{Ctx: ctx, Category: category}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, category)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	Category *domain.Category
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
