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

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	UserID   uuid.UUID
	Type     entity.TransactionType
	Amount   decimal.Decimal
	Category entity.ExpenseCategory // expenses only
	Source   string                 // incomes only
	Notes    string
	Date     time.Time
}

// CreateTransactionOutput represents the output of creating a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}

	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}

	var tx *entity.Transaction
	switch input.Type {
	case entity.TransactionTypeExpense:
		if !entity.IsValidExpenseCategory(input.Category) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidCategory,
				fmt.Sprintf("unknown expense category %q", input.Category),
				domainerror.ErrInvalidCategory,
			)
		}
		tx = entity.NewExpense(input.UserID, input.Amount, input.Category, input.Notes, input.Date)

	case entity.TransactionTypeIncome:
		if strings.TrimSpace(input.Source) == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingSource,
				"income source is required",
				domainerror.ErrMissingSource,
			)
		}
		tx = entity.NewIncome(input.UserID, input.Amount, input.Source, input.Notes, input.Date)

	default:
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("unknown transaction type %q", input.Type),
			domainerror.ErrInvalidTransactionType,
		)
	}

	if err := uc.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}
