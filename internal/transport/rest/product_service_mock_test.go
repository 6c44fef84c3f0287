package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/franken-backoffice/internal/domain"
	"github.com/heartmarshall/franken-backoffice/internal/service/product"
)

var _ productService = &productServiceMock{}

type productServiceMock struct {
	CreateProductFunc func(ctx context.Context, input product.CreateProductInput) (*domain.Product, error)
	UpdateProductFunc func(ctx context.Context, input product.UpdateProductInput) (*domain.Product, error)
	DeleteProductFunc func(ctx context.Context, id uuid.UUID) error
	GetProductFunc    func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProductsFunc  func(ctx context.Context, input product.ListProductsInput) ([]domain.Product, error)
	CategoriesFunc    func(ctx context.Context) ([]string, error)

	calls struct {
		CreateProduct []struct {
			Ctx   context.Context
			Input product.CreateProductInput
		}
		UpdateProduct []struct {
			Ctx   context.Context
			Input product.UpdateProductInput
		}
		DeleteProduct []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetProduct []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListProducts []struct {
			Ctx   context.Context
			Input product.ListProductsInput
		}
		Categories []struct {
			Ctx context.Context
		}
	}
	lockCreateProduct sync.RWMutex
	lockUpdateProduct sync.RWMutex
	lockDeleteProduct sync.RWMutex
	lockGetProduct    sync.RWMutex
	lockListProducts  sync.RWMutex
	lockCategories    sync.RWMutex
}

func (mock *productServiceMock) CreateProduct(ctx context.Context, input product.CreateProductInput) (*domain.Product, error) {
	if mock.CreateProductFunc == nil {
		panic("productServiceMock.CreateProductFunc: method is nil but productService.CreateProduct was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input product.CreateProductInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateProduct.Lock()
	mock.calls.CreateProduct = append(mock.calls.CreateProduct, callInfo)
	mock.lockCreateProduct.Unlock()
	return mock.CreateProductFunc(ctx, input)
}

func (mock *productServiceMock) CreateProductCalls() []struct {
	Ctx   context.Context
	Input product.CreateProductInput
} {
	var calls []struct {
		Ctx   context.Context
		Input product.CreateProductInput
	}
	mock.lockCreateProduct.RLock()
	calls = mock.calls.CreateProduct
	mock.lockCreateProduct.RUnlock()
	return calls
}

func (mock *productServiceMock) UpdateProduct(ctx context.Context, input product.UpdateProductInput) (*domain.Product, error) {
	if mock.UpdateProductFunc == nil {
		panic("productServiceMock.UpdateProductFunc: method is nil but productService.UpdateProduct was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input product.UpdateProductInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateProduct.Lock()
	mock.calls.UpdateProduct = append(mock.calls.UpdateProduct, callInfo)
	mock.lockUpdateProduct.Unlock()
	return mock.UpdateProductFunc(ctx, input)
}

func (mock *productServiceMock) UpdateProductCalls() []struct {
	Ctx   context.Context
	Input product.UpdateProductInput
} {
	var calls []struct {
		Ctx   context.Context
		Input product.UpdateProductInput
	}
	mock.lockUpdateProduct.RLock()
	calls = mock.calls.UpdateProduct
	mock.lockUpdateProduct.RUnlock()
	return calls
}

func (mock *productServiceMock) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteProductFunc == nil {
		panic("productServiceMock.DeleteProductFunc: method is nil but productService.DeleteProduct was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteProduct.Lock()
	mock.calls.DeleteProduct = append(mock.calls.DeleteProduct, callInfo)
	mock.lockDeleteProduct.Unlock()
	return mock.DeleteProductFunc(ctx, id)
}

func (mock *productServiceMock) DeleteProductCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockDeleteProduct.RLock()
	calls = mock.calls.DeleteProduct
	mock.lockDeleteProduct.RUnlock()
	return calls
}

func (mock *productServiceMock) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if mock.GetProductFunc == nil {
		panic("productServiceMock.GetProductFunc: method is nil but productService.GetProduct was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetProduct.Lock()
	mock.calls.GetProduct = append(mock.calls.GetProduct, callInfo)
	mock.lockGetProduct.Unlock()
	return mock.GetProductFunc(ctx, id)
}

func (mock *productServiceMock) GetProductCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetProduct.RLock()
	calls = mock.calls.GetProduct
	mock.lockGetProduct.RUnlock()
	return calls
}

func (mock *productServiceMock) ListProducts(ctx context.Context, input product.ListProductsInput) ([]domain.Product, error) {
	if mock.ListProductsFunc == nil {
		panic("productServiceMock.ListProductsFunc: method is nil but productService.ListProducts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input product.ListProductsInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListProducts.Lock()
	mock.calls.ListProducts = append(mock.calls.ListProducts, callInfo)
	mock.lockListProducts.Unlock()
	return mock.ListProductsFunc(ctx, input)
}

func (mock *productServiceMock) ListProductsCalls() []struct {
	Ctx   context.Context
	Input product.ListProductsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input product.ListProductsInput
	}
	mock.lockListProducts.RLock()
	calls = mock.calls.ListProducts
	mock.lockListProducts.RUnlock()
	return calls
}

func (mock *productServiceMock) Categories(ctx context.Context) ([]string, error) {
	if mock.CategoriesFunc == nil {
		panic("productServiceMock.CategoriesFunc: method is nil but productService.Categories was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCategories.Lock()
	mock.calls.Categories = append(mock.calls.Categories, callInfo)
	mock.lockCategories.Unlock()
	return mock.CategoriesFunc(ctx)
}

func (mock *productServiceMock) CategoriesCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCategories.RLock()
	calls = mock.calls.Categories
	mock.lockCategories.RUnlock()
	return calls
}
