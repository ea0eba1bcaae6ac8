// internal/service/account_service_test.go
package service

import (
	"io"
	"log/slog"
	"testing"

	"moneta/internal/domain"
	"moneta/internal/repository/jsonfile"
	"moneta/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAccountService(t *testing.T) AccountService {
	t.Helper()
	return NewAccountService(jsonfile.NewAccountStore(t.TempDir()), discardLogger())
}

func mustInsertAccount(t *testing.T, svc AccountService, name string, balance int64) *domain.Account {
	t.Helper()
	account, err := svc.Insert(name, "User", name+"@test.com", "password", domain.CurrencyUAH, domain.RoleAccount, decimal.NewFromInt(balance))
	require.NoError(t, err)
	return account
}

func TestInsertHashesPassword(t *testing.T) {
	svc := newAccountService(t)

	account := mustInsertAccount(t, svc, "Sender", 1000)
	assert.NotEmpty(t, account.PasswordHash)
	assert.NotEqual(t, "password", account.PasswordHash)

	ok, err := util.VerifyPassword("password", account.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = util.VerifyPassword("wrong", account.PasswordHash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInsertPersistsImmutableIdentity(t *testing.T) {
	svc := newAccountService(t)
	account := mustInsertAccount(t, svc, "Sender", 1000)

	loaded, err := svc.GetByID(account.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, account.ID, loaded.ID)
	assert.Equal(t, account.CreatedAt, loaded.CreatedAt)
	assert.Equal(t, domain.CurrencyUAH, loaded.Currency)
	assert.Equal(t, domain.RoleAccount, loaded.Role)
	assert.True(t, loaded.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestGetByIDAbsentIsNilNotError(t *testing.T) {
	svc := newAccountService(t)

	account, err := svc.GetByID("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, account)

	balance, err := svc.GetBalance("no-such-id")
	require.NoError(t, err)
	assert.Nil(t, balance)
}

func TestAdjustBalance(t *testing.T) {
	svc := newAccountService(t)
	account := mustInsertAccount(t, svc, "Sender", 1000)

	updated, err := svc.AdjustBalance(account.ID, decimal.NewFromInt(-300))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(700)))

	// The change is persisted, not just returned.
	balance, err := svc.GetBalance(account.ID)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.True(t, balance.Equal(decimal.NewFromInt(700)))
}

func TestAdjustBalanceAllowsNegativeResult(t *testing.T) {
	svc := newAccountService(t)
	account := mustInsertAccount(t, svc, "Sender", 100)

	updated, err := svc.AdjustBalance(account.ID, decimal.NewFromInt(-250))
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Balance.Equal(decimal.NewFromInt(-150)))
}

func TestAdjustBalanceAbsentAccountWritesNothing(t *testing.T) {
	svc := newAccountService(t)
	witness := mustInsertAccount(t, svc, "Witness", 42)

	updated, err := svc.AdjustBalance("no-such-id", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Nil(t, updated)

	balance, err := svc.GetBalance(witness.ID)
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.True(t, balance.Equal(decimal.NewFromInt(42)))
}

func TestUpdateField(t *testing.T) {
	svc := newAccountService(t)
	account := mustInsertAccount(t, svc, "Sender", 0)

	updated, err := svc.UpdateField(account.ID, "new@mail.com", domain.FieldEmail)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "new@mail.com", updated.Email)

	updated, err = svc.UpdateField(account.ID, "Renamed", domain.FieldName)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Renamed", updated.Name)
	// Other fields are untouched.
	assert.Equal(t, "new@mail.com", updated.Email)

	missing, err := svc.UpdateField("no-such-id", "x", domain.FieldName)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteAccount(t *testing.T) {
	svc := newAccountService(t)
	a := mustInsertAccount(t, svc, "A", 0)
	b := mustInsertAccount(t, svc, "B", 0)

	require.NoError(t, svc.Delete(a.ID))

	gone, err := svc.GetByID(a.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := svc.GetByID(b.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept)

	// Deleting an unknown id is a no-op, not an error.
	assert.NoError(t, svc.Delete("no-such-id"))
}
