package investment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/financanvas/backend/internal/domain"
)

var _ investmentRepo = &investmentRepoMock{}

type investmentRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error)
	CreateFunc     func(ctx context.Context, inv *domain.Investment) (*domain.Investment, error)
	UpdateFunc     func(ctx context.Context, userID, id uuid.UUID, inv *domain.Investment) (*domain.Investment, error)
	DeleteFunc     func(ctx context.Context, userID, id uuid.UUID) error

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Create []struct {
			Ctx context.Context
			Inv *domain.Investment
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Inv    *domain.Investment
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockListByUser sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *investmentRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error) {
	if mock.ListByUserFunc == nil {
		panic("investmentRepoMock.ListByUserFunc: method is nil but investmentRepo.ListByUser was just called")
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

func (mock *investmentRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *investmentRepoMock) Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error) {
	if mock.CreateFunc == nil {
		panic("investmentRepoMock.CreateFunc: method is nil but investmentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Inv *domain.Investment
	}{Ctx: ctx, Inv: inv}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, inv)
}

func (mock *investmentRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Inv *domain.Investment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *investmentRepoMock) Update(ctx context.Context, userID, id uuid.UUID, inv *domain.Investment) (*domain.Investment, error) {
	if mock.UpdateFunc == nil {
		panic("investmentRepoMock.UpdateFunc: method is nil but investmentRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Inv    *domain.Investment
	}{Ctx: ctx, UserID: userID, ID: id, Inv: inv}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, inv)
}

func (mock *investmentRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Inv    *domain.Investment
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *investmentRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("investmentRepoMock.DeleteFunc: method is nil but investmentRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *investmentRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
