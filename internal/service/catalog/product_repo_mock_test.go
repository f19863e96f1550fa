package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/goods-search/internal/domain"
)

var _ productRepo = &productRepoMock{}

type productRepoMock struct {
	UpsertFunc           func(ctx context.Context, p domain.Product) (domain.Product, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (domain.Product, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	SearchFunc           func(ctx context.Context, variants []string, brand *string, limit int) ([]domain.Product, error)
	ListAfterFunc        func(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Product, error)
	UpdateSearchTextFunc func(ctx context.Context, id uuid.UUID, text string) error

	calls struct {
		Upsert []struct {
			Ctx context.Context
			P   domain.Product
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Search []struct {
			Ctx      context.Context
			Variants []string
			Brand    *string
			Limit    int
		}
		ListAfter []struct {
			Ctx     context.Context
			AfterID uuid.UUID
			Limit   int
		}
		UpdateSearchText []struct {
			Ctx  context.Context
			ID   uuid.UUID
			Text string
		}
	}
	lockUpsert           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockDelete           sync.RWMutex
	lockSearch           sync.RWMutex
	lockListAfter        sync.RWMutex
	lockUpdateSearchText sync.RWMutex
}

func (mock *productRepoMock) Upsert(ctx context.Context, p domain.Product) (domain.Product, error) {
	if mock.UpsertFunc == nil {
		panic("productRepoMock.UpsertFunc: method is nil but productRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.Product
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *productRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   domain.Product
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *productRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if mock.GetByIDFunc == nil {
		panic("productRepoMock.GetByIDFunc: method is nil but productRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *productRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *productRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("productRepoMock.DeleteFunc: method is nil but productRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *productRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *productRepoMock) Search(ctx context.Context, variants []string, brand *string, limit int) ([]domain.Product, error) {
	if mock.SearchFunc == nil {
		panic("productRepoMock.SearchFunc: method is nil but productRepo.Search was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Variants []string
		Brand    *string
		Limit    int
	}{Ctx: ctx, Variants: variants, Brand: brand, Limit: limit}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, variants, brand, limit)
}

func (mock *productRepoMock) SearchCalls() []struct {
	Ctx      context.Context
	Variants []string
	Brand    *string
	Limit    int
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *productRepoMock) ListAfter(ctx context.Context, afterID uuid.UUID, limit int) ([]domain.Product, error) {
	if mock.ListAfterFunc == nil {
		panic("productRepoMock.ListAfterFunc: method is nil but productRepo.ListAfter was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		AfterID uuid.UUID
		Limit   int
	}{Ctx: ctx, AfterID: afterID, Limit: limit}
	mock.lockListAfter.Lock()
	mock.calls.ListAfter = append(mock.calls.ListAfter, callInfo)
	mock.lockListAfter.Unlock()
	return mock.ListAfterFunc(ctx, afterID, limit)
}

func (mock *productRepoMock) ListAfterCalls() []struct {
	Ctx     context.Context
	AfterID uuid.UUID
	Limit   int
} {
	mock.lockListAfter.RLock()
	calls := mock.calls.ListAfter
	mock.lockListAfter.RUnlock()
	return calls
}

func (mock *productRepoMock) UpdateSearchText(ctx context.Context, id uuid.UUID, text string) error {
	if mock.UpdateSearchTextFunc == nil {
		panic("productRepoMock.UpdateSearchTextFunc: method is nil but productRepo.UpdateSearchText was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   uuid.UUID
		Text string
	}{Ctx: ctx, ID: id, Text: text}
	mock.lockUpdateSearchText.Lock()
	mock.calls.UpdateSearchText = append(mock.calls.UpdateSearchText, callInfo)
	mock.lockUpdateSearchText.Unlock()
	return mock.UpdateSearchTextFunc(ctx, id, text)
}

func (mock *productRepoMock) UpdateSearchTextCalls() []struct {
	Ctx  context.Context
	ID   uuid.UUID
	Text string
} {
	mock.lockUpdateSearchText.RLock()
	calls := mock.calls.UpdateSearchText
	mock.lockUpdateSearchText.RUnlock()
	return calls
}
