package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationMatchesInvalidInput(t *testing.T) {
	err := Validation("Please fill in all fields")
	if err.Error() != "Please fill in all fields" {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatal("expected validation error to match ErrInvalidInput")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("validation error should not match unrelated sentinels")
	}
}

func TestStockErrorMessage(t *testing.T) {
	err := &StockError{Issues: []StockIssue{
		{ProductName: "Croissant", Requested: 5, Available: 2},
		{ProductName: "Eclair", Unavailable: true},
	}}

	want := `only 2 left of "Croissant" (requested 5); "Eclair" is not available`
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestAsStockError(t *testing.T) {
	stockErr := &StockError{Issues: []StockIssue{{ProductName: "Croissant", Requested: 2, Available: 1}}}

	if found, ok := AsStockError(stockErr); !ok || found != stockErr {
		t.Fatal("expected direct stock error to unwrap")
	}

	wrapped := fmt.Errorf("checkout: %w", stockErr)
	if found, ok := AsStockError(wrapped); !ok || found != stockErr {
		t.Fatal("expected wrapped stock error to unwrap")
	}

	if _, ok := AsStockError(errors.New("plain")); ok {
		t.Fatal("expected plain error not to unwrap")
	}
}
