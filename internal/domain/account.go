// internal/domain/account.go
package domain

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the closed set of currencies an account can be denominated in.
// It is fixed at account creation.
type Currency string

const (
	CurrencyUAH Currency = "UAH"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// ParseCurrency converts raw caller input into a Currency. The code must be one
// of the supported set and a known ISO code in the go-money registry.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	switch c {
	case CurrencyUAH, CurrencyUSD, CurrencyEUR:
	default:
		return "", fmt.Errorf("unsupported currency %q", code)
	}
	if money.GetCurrency(string(c)) == nil {
		return "", fmt.Errorf("unknown currency code %q", code)
	}
	return c, nil
}

// Role is the closed set of account roles, fixed at account creation.
type Role string

const (
	RoleAccount Role = "ACCOUNT"
	RoleAdmin   Role = "ADMIN"
)

// ParseRole converts raw caller input into a Role.
func ParseRole(role string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(role)))
	switch r {
	case RoleAccount, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("unsupported role %q", role)
}

// AccountField names the mutable profile fields of an account.
type AccountField string

const (
	FieldName       AccountField = "name"
	FieldSecondName AccountField = "secondName"
	FieldEmail      AccountField = "email"
)

// ParseAccountField converts raw caller input into an AccountField.
func ParseAccountField(field string) (AccountField, error) {
	f := AccountField(strings.TrimSpace(field))
	switch f {
	case FieldName, FieldSecondName, FieldEmail:
		return f, nil
	}
	return "", fmt.Errorf("unsupported account field %q", field)
}

// Account represents a ledger participant. Balance is stored, never derived,
// and is only mutated through balance adjustments; negative balances are a
// modeled state, not an error.
type Account struct {
	Entity

	Name       string `json:"name"`
	SecondName string `json:"secondName"`
	Email      string `json:"email"`

	Role     Role     `json:"role"`     // Fixed at creation
	Currency Currency `json:"currency"` // Fixed at creation

	Balance decimal.Decimal `json:"balance"`

	// PasswordHash is an opaque credential produced at creation. The ledger
	// never inspects or rewrites it.
	PasswordHash string `json:"passwordHash"`
}

// NewAccount creates a new Account instance with a fresh identity.
func NewAccount(name, secondName, email string, role Role, currency Currency, passwordHash string, startBalance decimal.Decimal) Account {
	return Account{
		Entity:       NewEntity(),
		Name:         name,
		SecondName:   secondName,
		Email:        email,
		Role:         role,
		Currency:     currency,
		Balance:      startBalance,
		PasswordHash: passwordHash,
	}
}
