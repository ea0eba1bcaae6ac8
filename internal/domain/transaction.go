// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Transaction records a completed transfer between two accounts. Records are
// immutable once appended to the ledger; the ids are opaque references and are
// not re-validated against the account or category collections.
type Transaction struct {
	Entity

	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	CategoryID string `json:"categoryId"`

	Amount decimal.Decimal `json:"amount"` // The positive quantity moved
}

// NewTransaction creates a new Transaction instance with a fresh identity.
func NewTransaction(senderID, receiverID, categoryID string, amount decimal.Decimal) Transaction {
	return Transaction{
		Entity:     NewEntity(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		CategoryID: categoryID,
		Amount:     amount,
	}
}

// OccurredOn reports whether the transaction was created on the given calendar
// day in local time, ignoring time of day.
func (t Transaction) OccurredOn(day time.Time) bool {
	created := t.CreatedTime()
	y1, m1, d1 := created.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Involves reports whether the account is the sender or the receiver.
func (t Transaction) Involves(accountID string) bool {
	return t.SenderID == accountID || t.ReceiverID == accountID
}
