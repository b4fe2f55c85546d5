// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for updating a hangout expense.
// Nil pointers leave the corresponding field unchanged.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Description *string
	Amount      *decimal.Decimal
	Category    *entity.ExpenseCategory
	Date        *time.Time
	SplitAmong  *[]uuid.UUID
}

// UpdateExpenseOutput represents the output of updating a hangout expense.
type UpdateExpenseOutput struct {
	Expense *entity.HangoutExpense
}

// UpdateExpenseUseCase handles expense updates. Only the payer may edit
// their expense.
type UpdateExpenseUseCase struct {
	hangoutRepo adapter.HangoutRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(hangoutRepo adapter.HangoutRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		hangoutRepo: hangoutRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.hangoutRepo.FindExpenseByID(ctx, input.ExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	if expense == nil {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeHangoutExpenseNotFound,
			"hangout expense not found",
			domainerror.ErrHangoutExpenseNotFound,
		)
	}
	if expense.PaidByID != input.UserID {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeNotExpensePayer,
			"only the payer can edit an expense",
			domainerror.ErrNotExpensePayer,
		)
	}

	h, err := uc.hangoutRepo.FindHangoutByID(ctx, expense.HangoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to find hangout: %w", err)
	}
	if h != nil && h.IsSettled {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeHangoutSettled,
			"hangout is already settled",
			domainerror.ErrHangoutSettled,
		)
	}

	if input.Amount != nil {
		if input.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewHangoutError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"expense amount must be greater than zero",
				domainerror.ErrInvalidAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		if !entity.IsValidExpenseCategory(*input.Category) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidCategory,
				fmt.Sprintf("unknown expense category %q", *input.Category),
				domainerror.ErrInvalidCategory,
			)
		}
		expense.Category = *input.Category
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.SplitAmong != nil {
		expense.SplitAmong = *input.SplitAmong
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.hangoutRepo.UpdateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
