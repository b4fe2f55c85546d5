// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/kumpul/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type     string  `json:"type" binding:"required,oneof=expense income"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category,omitempty"`
	Source   string  `json:"source,omitempty" binding:"omitempty,max=100"`
	Notes    string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Date     string  `json:"date,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Amount   *float64 `json:"amount,omitempty"`
	Category *string  `json:"category,omitempty"`
	Source   *string  `json:"source,omitempty" binding:"omitempty,max=100"`
	Notes    *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Date     *string  `json:"date,omitempty"`
}

// SuggestCategoryRequest represents the request body for category suggestion.
type SuggestCategoryRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
}

// SuggestCategoryResponse represents the category suggestion result.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Amount    string    `json:"amount"`
	Category  string    `json:"category,omitempty"`
	Source    string    `json:"source,omitempty"`
	Notes     string    `json:"notes"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	Balance      string `json:"balance"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
	Totals       TransactionTotalsResponse     `json:"totals"`
}

// CategoryBreakdownEntry represents one category's share of the filtered expenses.
type CategoryBreakdownEntry struct {
	Category   string  `json:"category"`
	Total      string  `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the per-category expense breakdown.
type CategoryBreakdownResponse struct {
	Breakdown    []CategoryBreakdownEntry `json:"breakdown"`
	ExpenseTotal string                   `json:"expense_total"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.ID.String(),
		UserID:    txn.UserID.String(),
		Type:      string(txn.Type),
		Amount:    txn.Amount.String(),
		Category:  string(txn.Category),
		Source:    txn.Source,
		Notes:     txn.Notes,
		Date:      txn.Date.Format("2006-01-02"),
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(txn)
	}
	return responses
}
