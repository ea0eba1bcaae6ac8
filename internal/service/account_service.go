// internal/service/account_service.go
package service

import (
	"errors"
	"fmt"
	"log/slog"

	"moneta/internal/domain"
	"moneta/internal/repository"
	"moneta/internal/util"

	"github.com/shopspring/decimal"
)

// AccountService defines the account ledger operations. Lookups report a
// missing account as a nil result, not an error; operations whose contract
// requires existence surface their own failures.
type AccountService interface {
	// Insert hashes the password and appends a new account.
	Insert(name, secondName, email, password string, currency domain.Currency, role domain.Role, startBalance decimal.Decimal) (*domain.Account, error)
	// GetByID returns the account, or nil when absent.
	GetByID(id string) (*domain.Account, error)
	// GetAll returns every account in storage order.
	GetAll() ([]domain.Account, error)
	// GetBalance returns the stored balance, or nil when the account is absent.
	GetBalance(id string) (*decimal.Decimal, error)
	// AdjustBalance replaces balance with balance+delta (delta may be
	// negative) and persists the collection. When the account is absent it
	// returns nil and performs no write. The resulting balance is not checked
	// for sign here; that is the transfer engine's responsibility.
	AdjustBalance(id string, delta decimal.Decimal) (*domain.Account, error)
	// UpdateField replaces one mutable profile field. Returns nil when the
	// account is absent.
	UpdateField(id, value string, field domain.AccountField) (*domain.Account, error)
	// Delete removes the account by rewriting the collection without it.
	// Deleting an unknown id is a no-op.
	Delete(id string) error
}

type accountService struct {
	repo repository.AccountRepository
	log  *slog.Logger
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(repo repository.AccountRepository, log *slog.Logger) AccountService {
	return &accountService{repo: repo, log: log}
}

// errRecordMissing aborts a store Update without persisting anything.
var errRecordMissing = errors.New("record not present in collection")

func (s *accountService) Insert(name, secondName, email, password string, currency domain.Currency, role domain.Role, startBalance decimal.Decimal) (*domain.Account, error) {
	passwordHash, err := util.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("insert account: hashing password: %w", err)
	}

	account := domain.NewAccount(name, secondName, email, role, currency, passwordHash, startBalance)
	if err := s.repo.Append(account); err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}
	s.log.Info("account created", "id", account.ID, "currency", account.Currency, "role", account.Role)
	return &account, nil
}

func (s *accountService) GetByID(id string) (*domain.Account, error) {
	accounts, err := s.repo.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("get account %s: %w", id, err)
	}
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i], nil
		}
	}
	return nil, nil
}

func (s *accountService) GetAll() ([]domain.Account, error) {
	return s.repo.ReadAll()
}

func (s *accountService) GetBalance(id string) (*decimal.Decimal, error) {
	account, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	balance := account.Balance
	return &balance, nil
}

func (s *accountService) AdjustBalance(id string, delta decimal.Decimal) (*domain.Account, error) {
	var updated *domain.Account
	err := s.repo.Update(func(accounts []domain.Account) ([]domain.Account, error) {
		for i := range accounts {
			if accounts[i].ID == id {
				accounts[i].Balance = accounts[i].Balance.Add(delta)
				a := accounts[i]
				updated = &a
				return accounts, nil
			}
		}
		return nil, errRecordMissing
	})
	if errors.Is(err, errRecordMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("adjust balance of %s by %s: %w", id, delta, err)
	}
	s.log.Debug("balance adjusted", "id", id, "delta", delta, "balance", updated.Balance)
	return updated, nil
}

func (s *accountService) UpdateField(id, value string, field domain.AccountField) (*domain.Account, error) {
	var updated *domain.Account
	err := s.repo.Update(func(accounts []domain.Account) ([]domain.Account, error) {
		for i := range accounts {
			if accounts[i].ID != id {
				continue
			}
			switch field {
			case domain.FieldName:
				accounts[i].Name = value
			case domain.FieldSecondName:
				accounts[i].SecondName = value
			case domain.FieldEmail:
				accounts[i].Email = value
			default:
				return nil, fmt.Errorf("unsupported account field %q", field)
			}
			a := accounts[i]
			updated = &a
			return accounts, nil
		}
		return nil, errRecordMissing
	})
	if errors.Is(err, errRecordMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update %s of account %s: %w", field, id, err)
	}
	return updated, nil
}

func (s *accountService) Delete(id string) error {
	err := s.repo.Update(func(accounts []domain.Account) ([]domain.Account, error) {
		kept := accounts[:0]
		for _, a := range accounts {
			if a.ID != id {
				kept = append(kept, a)
			}
		}
		return kept, nil
	})
	if err != nil {
		return fmt.Errorf("delete account %s: %w", id, err)
	}
	return nil
}
