// internal/util/errors.go
package util

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Common application-specific errors. Typed errors below unwrap to one of
// these sentinels so callers can branch with errors.Is.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidAmount        = errors.New("amount must be a positive number")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrBalanceUpdate        = errors.New("balance update failed")
	ErrDuplicateName        = errors.New("duplicate name")
	ErrTransactionImmutable = errors.New("transactions cannot be updated")
	ErrStorageRead          = errors.New("storage read failed")
	ErrStorageWrite         = errors.New("storage write failed")
)

// InsufficientBalanceError reports that a sender cannot cover a transfer.
// It also covers the case where the sender does not exist at all: the original
// behavior conflates "unknown account" with "cannot pay", and that conflation
// is preserved here rather than silently split into a not-found error.
type InsufficientBalanceError struct {
	SenderID string
	Amount   decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("sender %s does not have enough balance to send %s", e.SenderID, e.Amount)
}

func (e *InsufficientBalanceError) Unwrap() error { return ErrInsufficientBalance }

// BalanceUpdateError reports that an account vanished between validation and
// mutation, so the balance adjustment wrote nothing.
type BalanceUpdateError struct {
	AccountID string
	Delta     decimal.Decimal
}

func (e *BalanceUpdateError) Error() string {
	return fmt.Sprintf("while updating account %s amount %s", e.AccountID, e.Delta)
}

func (e *BalanceUpdateError) Unwrap() error { return ErrBalanceUpdate }

// DuplicateCategoryError reports a category insert whose name exactly matches
// an existing one.
type DuplicateCategoryError struct {
	Name string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("category with name %q already exists", e.Name)
}

func (e *DuplicateCategoryError) Unwrap() error { return ErrDuplicateName }

// StorageError reports that a collection's backing file could not be read or
// written. Op is "read" or "write"; errors.Is matches ErrStorageRead or
// ErrStorageWrite accordingly.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrStorageRead:
		return e.Op == "read"
	case ErrStorageWrite:
		return e.Op == "write"
	}
	return false
}

// IsError is a convenience wrapper around errors.Is.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
