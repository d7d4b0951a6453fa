package usecase_test

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/ovenlight/bakeshop/internal/domain/errors"
	"github.com/ovenlight/bakeshop/internal/domain/model"
	testhelpers "github.com/ovenlight/bakeshop/internal/test"
	"github.com/ovenlight/bakeshop/internal/usecase"
)

func TestCatalogUseCaseListPassesCategory(t *testing.T) {
	var gotCategory string
	products := &testhelpers.ProductRepositoryStub{ListPublicFn: func(ctx context.Context, category string) ([]model.Product, error) {
		gotCategory = category
		return []model.Product{{ID: 1}}, nil
	}}
	uc := usecase.NewCatalogUseCase(products)

	list, err := uc.List(context.Background(), "pastry")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected one product, got %d", len(list))
	}
	if gotCategory != "pastry" {
		t.Fatalf("expected category filter to pass through, got %q", gotCategory)
	}
}

func TestCatalogUseCaseGetNotFound(t *testing.T) {
	uc := usecase.NewCatalogUseCase(&testhelpers.ProductRepositoryStub{})
	if _, err := uc.Get(context.Background(), 42); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
