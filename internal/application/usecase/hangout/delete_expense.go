// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for deleting a hangout expense.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseOutput represents the output of deleting a hangout expense.
type DeleteExpenseOutput struct {
	Message string
}

// DeleteExpenseUseCase handles expense deletion. Only the payer may delete
// their expense.
type DeleteExpenseUseCase struct {
	hangoutRepo adapter.HangoutRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(hangoutRepo adapter.HangoutRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		hangoutRepo: hangoutRepo,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
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
			"only the payer can delete an expense",
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

	if err := uc.hangoutRepo.DeleteExpense(ctx, input.ExpenseID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	return &DeleteExpenseOutput{Message: "Expense deleted"}, nil
}
