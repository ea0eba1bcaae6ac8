// internal/service/transaction_service.go
package service

import (
	"fmt"
	"log/slog"
	"time"

	"moneta/internal/domain"
	"moneta/internal/repository"
	"moneta/internal/util"

	"github.com/shopspring/decimal"
)

// CategoryStats accumulates the two directions of money movement for one
// category over a period. A category seen in both directions reports both.
type CategoryStats struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// TransactionService defines the transfer engine and the reporting queries
// over the transaction ledger. The ledger is append-only: updates are
// unconditionally declined.
type TransactionService interface {
	// Transfer moves a positive amount from sender to receiver and appends
	// one Transaction record.
	//
	// Failure ordering, in sequence:
	//   - non-positive amount fails with ErrInvalidAmount before any I/O;
	//   - a sender that is missing or cannot cover the amount fails with
	//     InsufficientBalanceError (the two cases are deliberately not
	//     distinguished — a known limitation kept from the original
	//     behavior);
	//   - a sender that vanishes between the check and the debit fails with
	//     BalanceUpdateError, nothing written;
	//   - a receiver that is absent at credit time fails with
	//     BalanceUpdateError. The debit is NOT rolled back: the amount stays
	//     debited and uncredited;
	//   - a failure appending the record leaves both balances moved with no
	//     ledger entry.
	// The partial states are reported to the caller, never reversed.
	Transfer(senderID, receiverID, categoryID string, amount decimal.Decimal) (*domain.Transaction, error)

	// GetByID returns the transaction, or nil when absent.
	GetByID(id string) (*domain.Transaction, error)
	// GetAll returns the full ledger in storage order.
	GetAll() ([]domain.Transaction, error)

	// ByPeriod returns transactions where the account is sender or receiver
	// and start <= createdAt <= end, compared as instants with both ends
	// inclusive.
	ByPeriod(accountID string, start, end time.Time) ([]domain.Transaction, error)
	// StatsByCategories aggregates ByPeriod's result per category id:
	// amounts received count as income, amounts sent as expense.
	StatsByCategories(accountID string, start, end time.Time) (map[string]CategoryStats, error)
	// ByCategory returns transactions referencing the category id.
	ByCategory(categoryID string) ([]domain.Transaction, error)
	// ByAmount returns transactions whose amount equals exactly.
	ByAmount(amount decimal.Decimal) ([]domain.Transaction, error)
	// ByDate returns transactions created on the same calendar day in local
	// time, ignoring time of day. Unlike ByPeriod this is a day match, not an
	// instant range.
	ByDate(day time.Time) ([]domain.Transaction, error)

	// Update always fails with ErrTransactionImmutable.
	Update(tx domain.Transaction) error
	// Delete removes the transaction by rewriting the collection without it,
	// the only supported mutation of stored records.
	Delete(id string) error
}

type transactionService struct {
	repo     repository.TransactionRepository
	accounts AccountService
	log      *slog.Logger
}

// NewTransactionService creates a new instance of TransactionService.
func NewTransactionService(repo repository.TransactionRepository, accounts AccountService, log *slog.Logger) TransactionService {
	return &transactionService{repo: repo, accounts: accounts, log: log}
}

func (s *transactionService) Transfer(senderID, receiverID, categoryID string, amount decimal.Decimal) (*domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, util.ErrInvalidAmount
	}

	balance, err := s.accounts.GetBalance(senderID)
	if err != nil {
		return nil, fmt.Errorf("transfer: checking sender balance: %w", err)
	}
	if balance == nil || balance.LessThan(amount) {
		return nil, &util.InsufficientBalanceError{SenderID: senderID, Amount: amount}
	}

	debited, err := s.accounts.AdjustBalance(senderID, amount.Neg())
	if err != nil {
		return nil, fmt.Errorf("transfer: debiting sender: %w", err)
	}
	if debited == nil {
		// Reachable only when the sender vanished after the balance check.
		return nil, &util.BalanceUpdateError{AccountID: senderID, Delta: amount.Neg()}
	}

	credited, err := s.accounts.AdjustBalance(receiverID, amount)
	if err != nil {
		s.log.Error("transfer debited sender but crediting receiver failed",
			"sender", senderID, "receiver", receiverID, "amount", amount, "error", err)
		return nil, fmt.Errorf("transfer: crediting receiver: %w", err)
	}
	if credited == nil {
		// The debit above stays in place: the amount is now debited but not
		// credited, and nothing self-heals it.
		s.log.Warn("transfer left amount in flight: receiver absent after sender debit",
			"sender", senderID, "receiver", receiverID, "amount", amount)
		return nil, &util.BalanceUpdateError{AccountID: receiverID, Delta: amount}
	}

	tx := domain.NewTransaction(senderID, receiverID, categoryID, amount)
	if err := s.repo.Append(tx); err != nil {
		// Balances are already moved; only the ledger entry is missing.
		s.log.Error("transfer moved balances but recording the transaction failed",
			"sender", senderID, "receiver", receiverID, "amount", amount, "error", err)
		return nil, fmt.Errorf("transfer: recording transaction: %w", err)
	}

	s.log.Info("transfer completed",
		"tx", tx.ID, "sender", senderID, "receiver", receiverID, "amount", amount)
	return &tx, nil
}

func (s *transactionService) GetByID(id string) (*domain.Transaction, error) {
	all, err := s.repo.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", id, err)
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (s *transactionService) GetAll() ([]domain.Transaction, error) {
	return s.repo.ReadAll()
}

func (s *transactionService) ByPeriod(accountID string, start, end time.Time) ([]domain.Transaction, error) {
	return s.filter(func(tx domain.Transaction) bool {
		return tx.Involves(accountID) &&
			tx.CreatedAt >= start.UnixMilli() &&
			tx.CreatedAt <= end.UnixMilli()
	})
}

func (s *transactionService) StatsByCategories(accountID string, start, end time.Time) (map[string]CategoryStats, error) {
	transactions, err := s.ByPeriod(accountID, start, end)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]CategoryStats)
	for _, tx := range transactions {
		entry := stats[tx.CategoryID]
		if tx.ReceiverID == accountID {
			entry.Income = entry.Income.Add(tx.Amount)
		} else if tx.SenderID == accountID {
			entry.Expense = entry.Expense.Add(tx.Amount)
		}
		stats[tx.CategoryID] = entry
	}
	return stats, nil
}

func (s *transactionService) ByCategory(categoryID string) ([]domain.Transaction, error) {
	return s.filter(func(tx domain.Transaction) bool {
		return tx.CategoryID == categoryID
	})
}

func (s *transactionService) ByAmount(amount decimal.Decimal) ([]domain.Transaction, error) {
	return s.filter(func(tx domain.Transaction) bool {
		return tx.Amount.Equal(amount)
	})
}

func (s *transactionService) ByDate(day time.Time) ([]domain.Transaction, error) {
	return s.filter(func(tx domain.Transaction) bool {
		return tx.OccurredOn(day)
	})
}

func (s *transactionService) filter(keep func(domain.Transaction) bool) ([]domain.Transaction, error) {
	all, err := s.repo.ReadAll()
	if err != nil {
		return nil, err
	}
	var matched []domain.Transaction
	for _, tx := range all {
		if keep(tx) {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

func (s *transactionService) Update(domain.Transaction) error {
	return util.ErrTransactionImmutable
}

func (s *transactionService) Delete(id string) error {
	err := s.repo.Update(func(transactions []domain.Transaction) ([]domain.Transaction, error) {
		kept := transactions[:0]
		for _, tx := range transactions {
			if tx.ID != id {
				kept = append(kept, tx)
			}
		}
		return kept, nil
	})
	if err != nil {
		return fmt.Errorf("delete transaction %s: %w", id, err)
	}
	return nil
}
