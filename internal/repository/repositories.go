// internal/repository/repositories.go
package repository

import "moneta/internal/domain"

// Collection names double as file names under the data directory.
const (
	AccountsCollection     = "accounts"
	CategoriesCollection   = "categories"
	TransactionsCollection = "transactions"
)

// AccountRepository stores the account collection.
type AccountRepository = Collection[domain.Account]

// CategoryRepository stores the category collection.
type CategoryRepository = Collection[domain.Category]

// TransactionRepository stores the transaction collection.
type TransactionRepository = Collection[domain.Transaction]
