// internal/domain/domain_test.go
package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntityAssignsUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		e := NewEntity()
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
		assert.NotZero(t, e.CreatedAt)
	}
}

func TestParseCurrency(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Currency
		ok   bool
	}{
		{"UAH", CurrencyUAH, true},
		{"usd", CurrencyUSD, true},
		{" eur ", CurrencyEUR, true},
		{"GBP", "", false},
		{"", "", false},
	} {
		got, err := ParseCurrency(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got)
		} else {
			assert.Error(t, err, "input %q", tc.in)
		}
	}
}

func TestParseRole(t *testing.T) {
	got, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, got)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}

func TestParseAccountField(t *testing.T) {
	for _, valid := range []string{"name", "secondName", "email"} {
		_, err := ParseAccountField(valid)
		assert.NoError(t, err, valid)
	}
	_, err := ParseAccountField("balance")
	assert.Error(t, err)
}

func TestParseCategoryKind(t *testing.T) {
	got, err := ParseCategoryKind("Income")
	require.NoError(t, err)
	assert.Equal(t, KindIncome, got)

	_, err = ParseCategoryKind("transfer")
	assert.Error(t, err)
}

func TestCategoryDescriptionEmptyIsDistinctFromAbsent(t *testing.T) {
	empty := ""
	with := NewCategory("a", &empty, nil)
	without := NewCategory("b", nil, nil)

	dataWith, err := json.Marshal(with)
	require.NoError(t, err)
	dataWithout, err := json.Marshal(without)
	require.NoError(t, err)

	assert.Contains(t, string(dataWith), `"description":""`)
	assert.NotContains(t, string(dataWithout), "description")
}

func TestTransactionOccurredOn(t *testing.T) {
	late := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local)
	tx := Transaction{
		Entity: Entity{ID: "t1", CreatedAt: late.UnixMilli()},
		Amount: decimal.NewFromInt(1),
	}

	assert.True(t, tx.OccurredOn(time.Date(2024, time.March, 5, 0, 1, 0, 0, time.Local)))
	assert.False(t, tx.OccurredOn(time.Date(2024, time.March, 6, 0, 1, 0, 0, time.Local)))
}

func TestTransactionInvolves(t *testing.T) {
	tx := NewTransaction("sender", "receiver", "cat", decimal.NewFromInt(5))
	assert.True(t, tx.Involves("sender"))
	assert.True(t, tx.Involves("receiver"))
	assert.False(t, tx.Involves("bystander"))
}
