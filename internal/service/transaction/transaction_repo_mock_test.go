package transaction

import (
	"context"
	"sync"

	"github.com/google/uuid"

	txrepo "github.com/financanvas/backend/internal/adapter/postgres/transaction"
	"github.com/financanvas/backend/internal/domain"
)

var _ transactionRepo = &transactionRepoMock{}

type transactionRepoMock struct {
	CreateFunc     func(ctx context.Context, tx *domain.Transaction) (*domain.TransactionWithCategory, error)
	UpdateFunc     func(ctx context.Context, userID, id uuid.UUID, tx *domain.Transaction) (*domain.TransactionWithCategory, error)
	GetByIDFunc    func(ctx context.Context, userID, id uuid.UUID) (*domain.TransactionWithCategory, error)
	ListFunc       func(ctx context.Context, userID uuid.UUID, filter txrepo.ListFilter) ([]*domain.TransactionWithCategory, error)
	SoftDeleteFunc func(ctx context.Context, userID, id uuid.UUID) error
	RestoreFunc    func(ctx context.Context, userID, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			Tx  *domain.Transaction
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
			Tx     *domain.Transaction
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Filter txrepo.ListFilter
		}
		SoftDelete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		Restore []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockSoftDelete sync.RWMutex
	lockRestore    sync.RWMutex
}

func (mock *transactionRepoMock) Create(ctx context.Context, tx *domain.Transaction) (*domain.TransactionWithCategory, error) {
	if mock.CreateFunc == nil {
		panic("transactionRepoMock.CreateFunc: method is nil but transactionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Tx  *domain.Transaction
	}{Ctx: ctx, Tx: tx}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, tx)
}

func (mock *transactionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Tx  *domain.Transaction
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *transactionRepoMock) Update(ctx context.Context, userID, id uuid.UUID, tx *domain.Transaction) (*domain.TransactionWithCategory, error) {
	if mock.UpdateFunc == nil {
		panic("transactionRepoMock.UpdateFunc: method is nil but transactionRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
		Tx     *domain.Transaction
	}{Ctx: ctx, UserID: userID, ID: id, Tx: tx}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, tx)
}

func (mock *transactionRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
	Tx     *domain.Transaction
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *transactionRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.TransactionWithCategory, error) {
	if mock.GetByIDFunc == nil {
		panic("transactionRepoMock.GetByIDFunc: method is nil but transactionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *transactionRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *transactionRepoMock) List(ctx context.Context, userID uuid.UUID, filter txrepo.ListFilter) ([]*domain.TransactionWithCategory, error) {
	if mock.ListFunc == nil {
		panic("transactionRepoMock.ListFunc: method is nil but transactionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Filter txrepo.ListFilter
	}{Ctx: ctx, UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *transactionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Filter txrepo.ListFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *transactionRepoMock) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("transactionRepoMock.SoftDeleteFunc: method is nil but transactionRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, userID, id)
}

func (mock *transactionRepoMock) SoftDeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *transactionRepoMock) Restore(ctx context.Context, userID, id uuid.UUID) error {
	if mock.RestoreFunc == nil {
		panic("transactionRepoMock.RestoreFunc: method is nil but transactionRepo.Restore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, userID, id)
}

func (mock *transactionRepoMock) RestoreCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}
