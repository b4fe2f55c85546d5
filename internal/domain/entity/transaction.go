// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// ExpenseCategory is one of the fixed expense categories.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "food"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryHome          ExpenseCategory = "home"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryHealth        ExpenseCategory = "health"
	CategoryOthers        ExpenseCategory = "others"
)

// ExpenseCategories lists every valid expense category.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryHome,
	CategoryEntertainment,
	CategoryHealth,
	CategoryOthers,
}

// IsValidExpenseCategory reports whether c is a known category.
func IsValidExpenseCategory(c ExpenseCategory) bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction represents a personal ledger entry (income or expense).
// Expenses carry a category from the fixed taxonomy; incomes carry a
// free-text source instead.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      TransactionType
	Amount    decimal.Decimal
	Category  ExpenseCategory // expenses only
	Source    string          // incomes only
	Notes     string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpense creates a new expense transaction.
func NewExpense(userID uuid.UUID, amount decimal.Decimal, category ExpenseCategory, notes string, date time.Time) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      TransactionTypeExpense,
		Amount:    amount,
		Category:  category,
		Notes:     notes,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewIncome creates a new income transaction.
func NewIncome(userID uuid.UUID, amount decimal.Decimal, source, notes string, date time.Time) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      TransactionTypeIncome,
		Amount:    amount,
		Source:    source,
		Notes:     notes,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TransactionTotals represents aggregated totals for a transaction list.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}

// CategoryBreakdown represents the share of one category within a filtered
// expense list. Percentage is relative to the filtered expense total.
type CategoryBreakdown struct {
	Category   ExpenseCategory
	Total      decimal.Decimal
	Count      int
	Percentage float64
}
