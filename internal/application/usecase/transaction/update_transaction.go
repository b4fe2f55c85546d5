// Package transaction contains personal ledger use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil pointers leave the corresponding field unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Amount        *decimal.Decimal
	Category      *entity.ExpenseCategory
	Source        *string
	Notes         *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	tx, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	if tx == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if tx.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnauthorizedTransactionAccess,
			"transaction does not belong to user",
			domainerror.ErrUnauthorizedTransactionAccess,
		)
	}

	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		tx.Amount = *input.Amount
	}
	if input.Category != nil && tx.Type == entity.TransactionTypeExpense {
		if !entity.IsValidExpenseCategory(*input.Category) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidCategory,
				fmt.Sprintf("unknown expense category %q", *input.Category),
				domainerror.ErrInvalidCategory,
			)
		}
		tx.Category = *input.Category
	}
	if input.Source != nil && tx.Type == entity.TransactionTypeIncome {
		if strings.TrimSpace(*input.Source) == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingSource,
				"income source is required",
				domainerror.ErrMissingSource,
			)
		}
		tx.Source = *input.Source
	}
	if input.Notes != nil {
		tx.Notes = *input.Notes
	}
	if input.Date != nil {
		tx.Date = *input.Date
	}
	tx.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: tx}, nil
}
