package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidSecurityCode = errors.New("invalid security code")
	ErrAccountDisabled     = errors.New("account disabled")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrProductUnavailable  = errors.New("product not available")
	ErrSelfDelete          = errors.New("cannot delete own account")
	ErrCheckoutFailed      = errors.New("checkout failed")
)

// Validation builds a field-level validation error with a customer-facing
// message. It matches ErrInvalidInput under errors.Is and never reaches
// storage.
func Validation(msg string) error {
	return &validationError{msg: msg}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrInvalidInput }

// StockIssue describes a single cart line that cannot be fulfilled.
type StockIssue struct {
	ProductName string
	Requested   int64
	Available   int64
	Unavailable bool
}

func (i StockIssue) String() string {
	if i.Unavailable {
		return fmt.Sprintf("%q is not available", i.ProductName)
	}
	return fmt.Sprintf("only %d left of %q (requested %d)", i.Available, i.ProductName, i.Requested)
}

// StockError aggregates every offending cart line so the customer sees all
// problems in one response instead of fixing them one at a time.
type StockError struct {
	Issues []StockIssue
}

func (e *StockError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.String())
	}
	return strings.Join(parts, "; ")
}

// AsStockError unwraps err into *StockError if possible.
func AsStockError(err error) (*StockError, bool) {
	var stockErr *StockError
	if errors.As(err, &stockErr) {
		return stockErr, true
	}
	return nil, false
}
