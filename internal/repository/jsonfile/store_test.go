// internal/repository/jsonfile/store_test.go
package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"moneta/internal/domain"
	"moneta/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store[domain.Category] {
	t.Helper()
	return NewStore[domain.Category](t.TempDir(), "categories")
}

func TestReadAllBootstrapsEmptyCollection(t *testing.T) {
	store := newTestStore(t)

	records, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)

	// The backing file now exists and holds an empty collection.
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestEnsureReadyIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.EnsureReady())
	first, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	require.NoError(t, store.EnsureReady())
	second, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEnsureReadyDoesNotClobberExistingData(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(domain.NewCategory("food", nil, nil)))

	require.NoError(t, store.EnsureReady())

	records, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "food", records[0].Name)
}

func TestWriteAllThenReadAllPreservesOrder(t *testing.T) {
	store := newTestStore(t)

	want := []domain.Category{
		domain.NewCategory("zebra", nil, nil),
		domain.NewCategory("apple", nil, nil),
		domain.NewCategory("mango", nil, nil),
	}
	require.NoError(t, store.WriteAll(want))

	got, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Name, got[i].Name)
	}
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(domain.NewCategory("first", nil, nil)))
	require.NoError(t, store.Append(domain.NewCategory("second", nil, nil)))

	records, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Name)
	assert.Equal(t, "second", records[1].Name)
}

func TestReadAllCorruptFileIsStorageReadError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureReady())
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.ReadAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrStorageRead)
}

func TestUpdateAbortLeavesFileUntouched(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(domain.NewCategory("keep", nil, nil)))
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	sentinel := assert.AnError
	err = store.Update(func(records []domain.Category) ([]domain.Category, error) {
		return nil, sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWriteAllFailureKeepsPreviousState(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions do not bind root")
	}
	dir := t.TempDir()
	store := NewStore[domain.Category](dir, "categories")
	require.NoError(t, store.Append(domain.NewCategory("survivor", nil, nil)))
	before, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	// A read-only directory rejects the temp file, so the rename path is
	// never reached and the original file survives.
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	err = store.WriteAll(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrStorageWrite)

	require.NoError(t, os.Chmod(dir, 0o755))
	after, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWriteAllNilPersistsEmptyCollection(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(domain.NewCategory("gone", nil, nil)))

	require.NoError(t, store.WriteAll(nil))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestStoresShareDataDirectory(t *testing.T) {
	dir := t.TempDir()
	accounts := NewAccountStore(dir)
	transactions := NewTransactionStore(dir)

	require.NoError(t, accounts.Append(domain.NewAccount("A", "B", "a@b.c", domain.RoleAccount, domain.CurrencyUAH, "hash", decimal.NewFromInt(10))))
	require.NoError(t, transactions.Append(domain.NewTransaction("s", "r", "c", decimal.NewFromInt(1))))

	_, err := os.Stat(filepath.Join(dir, "accounts.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "transactions.json"))
	assert.NoError(t, err)
}
