package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/goods-search/internal/domain"
	"github.com/heartmarshall/goods-search/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	SearchFunc        func(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error)
	GetProductFunc    func(ctx context.Context, id uuid.UUID) (domain.Product, error)
	SaveProductFunc   func(ctx context.Context, input catalog.SaveProductInput) (domain.Product, error)
	DeleteProductFunc func(ctx context.Context, id uuid.UUID) error
	ReindexFunc       func(ctx context.Context, batchSize int) (catalog.ReindexResult, error)

	calls struct {
		Search []struct {
			Ctx    context.Context
			Params domain.SearchParams
		}
		GetProduct []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		SaveProduct []struct {
			Ctx   context.Context
			Input catalog.SaveProductInput
		}
		DeleteProduct []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Reindex []struct {
			Ctx       context.Context
			BatchSize int
		}
	}
	lockSearch        sync.RWMutex
	lockGetProduct    sync.RWMutex
	lockSaveProduct   sync.RWMutex
	lockDeleteProduct sync.RWMutex
	lockReindex       sync.RWMutex
}

func (mock *catalogServiceMock) Search(ctx context.Context, params domain.SearchParams) (domain.SearchResult, error) {
	if mock.SearchFunc == nil {
		panic("catalogServiceMock.SearchFunc: method is nil but catalogService.Search was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Params domain.SearchParams
	}{Ctx: ctx, Params: params}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, params)
}

func (mock *catalogServiceMock) SearchCalls() []struct {
	Ctx    context.Context
	Params domain.SearchParams
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}

func (mock *catalogServiceMock) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if mock.GetProductFunc == nil {
		panic("catalogServiceMock.GetProductFunc: method is nil but catalogService.GetProduct was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetProduct.Lock()
	mock.calls.GetProduct = append(mock.calls.GetProduct, callInfo)
	mock.lockGetProduct.Unlock()
	return mock.GetProductFunc(ctx, id)
}

func (mock *catalogServiceMock) GetProductCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetProduct.RLock()
	calls := mock.calls.GetProduct
	mock.lockGetProduct.RUnlock()
	return calls
}

func (mock *catalogServiceMock) SaveProduct(ctx context.Context, input catalog.SaveProductInput) (domain.Product, error) {
	if mock.SaveProductFunc == nil {
		panic("catalogServiceMock.SaveProductFunc: method is nil but catalogService.SaveProduct was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input catalog.SaveProductInput
	}{Ctx: ctx, Input: input}
	mock.lockSaveProduct.Lock()
	mock.calls.SaveProduct = append(mock.calls.SaveProduct, callInfo)
	mock.lockSaveProduct.Unlock()
	return mock.SaveProductFunc(ctx, input)
}

func (mock *catalogServiceMock) SaveProductCalls() []struct {
	Ctx   context.Context
	Input catalog.SaveProductInput
} {
	mock.lockSaveProduct.RLock()
	calls := mock.calls.SaveProduct
	mock.lockSaveProduct.RUnlock()
	return calls
}

func (mock *catalogServiceMock) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteProductFunc == nil {
		panic("catalogServiceMock.DeleteProductFunc: method is nil but catalogService.DeleteProduct was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteProduct.Lock()
	mock.calls.DeleteProduct = append(mock.calls.DeleteProduct, callInfo)
	mock.lockDeleteProduct.Unlock()
	return mock.DeleteProductFunc(ctx, id)
}

func (mock *catalogServiceMock) DeleteProductCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteProduct.RLock()
	calls := mock.calls.DeleteProduct
	mock.lockDeleteProduct.RUnlock()
	return calls
}

func (mock *catalogServiceMock) Reindex(ctx context.Context, batchSize int) (catalog.ReindexResult, error) {
	if mock.ReindexFunc == nil {
		panic("catalogServiceMock.ReindexFunc: method is nil but catalogService.Reindex was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		BatchSize int
	}{Ctx: ctx, BatchSize: batchSize}
	mock.lockReindex.Lock()
	mock.calls.Reindex = append(mock.calls.Reindex, callInfo)
	mock.lockReindex.Unlock()
	return mock.ReindexFunc(ctx, batchSize)
}

func (mock *catalogServiceMock) ReindexCalls() []struct {
	Ctx       context.Context
	BatchSize int
} {
	mock.lockReindex.RLock()
	calls := mock.calls.Reindex
	mock.lockReindex.RUnlock()
	return calls
}
