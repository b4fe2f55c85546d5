// Package savings contains savings goal use cases.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for deleting a savings goal.
type DeleteGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
}

// DeleteGoalOutput represents the output of deleting a savings goal.
type DeleteGoalOutput struct {
	Message string
}

// DeleteGoalUseCase handles savings goal deletion logic.
type DeleteGoalUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(savingsRepo adapter.SavingsRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the savings goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	goal, err := uc.savingsRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to find savings goal: %w", err)
	}
	if goal == nil {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeSavingsGoalNotFound,
			"savings goal not found",
			domainerror.ErrSavingsGoalNotFound,
		)
	}
	if goal.UserID != input.UserID {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"savings goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if err := uc.savingsRepo.Delete(ctx, input.GoalID); err != nil {
		return nil, fmt.Errorf("failed to delete savings goal: %w", err)
	}

	return &DeleteGoalOutput{Message: "Savings goal deleted"}, nil
}
