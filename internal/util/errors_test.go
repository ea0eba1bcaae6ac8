// internal/util/errors_test.go
package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	insufficient := &InsufficientBalanceError{SenderID: "s-1", Amount: decimal.NewFromInt(50)}
	assert.ErrorIs(t, insufficient, ErrInsufficientBalance)
	assert.Contains(t, insufficient.Error(), "s-1")
	assert.Contains(t, insufficient.Error(), "50")

	update := &BalanceUpdateError{AccountID: "a-1", Delta: decimal.NewFromInt(-50)}
	assert.ErrorIs(t, update, ErrBalanceUpdate)

	dup := &DuplicateCategoryError{Name: "food"}
	assert.ErrorIs(t, dup, ErrDuplicateName)
	assert.Contains(t, dup.Error(), "food")
}

func TestStorageErrorKinds(t *testing.T) {
	read := &StorageError{Op: "read", Path: "/tmp/x.json", Err: errors.New("boom")}
	assert.ErrorIs(t, read, ErrStorageRead)
	assert.NotErrorIs(t, read, ErrStorageWrite)

	write := &StorageError{Op: "write", Path: "/tmp/x.json", Err: errors.New("boom")}
	assert.ErrorIs(t, write, ErrStorageWrite)
	assert.NotErrorIs(t, write, ErrStorageRead)
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("transfer: %w", &InsufficientBalanceError{SenderID: "s", Amount: decimal.NewFromInt(1)})
	assert.True(t, IsError(wrapped, ErrInsufficientBalance))

	var typed *InsufficientBalanceError
	assert.True(t, errors.As(wrapped, &typed))
}
