// Package savings contains savings goal use cases.
package savings

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

// UpdateGoalInput represents the input for updating a savings goal.
// Nil pointers leave the corresponding field unchanged.
type UpdateGoalInput struct {
	GoalID     uuid.UUID
	UserID     uuid.UUID
	GoalName   *string
	GoalAmount *decimal.Decimal
	TargetDate *time.Time
	Notes      *string
}

// UpdateGoalOutput represents the output of updating a savings goal.
type UpdateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// UpdateGoalUseCase handles savings goal update logic.
type UpdateGoalUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(savingsRepo adapter.SavingsRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the savings goal update. Changing the target amount
// recomputes the completion flag against the new target.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
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

	if input.GoalName != nil {
		if strings.TrimSpace(*input.GoalName) == "" {
			return nil, domainerror.NewSavingsError(
				domainerror.ErrCodeGoalNameRequired,
				"goal name is required",
				domainerror.ErrGoalNameRequired,
			)
		}
		goal.GoalName = *input.GoalName
	}
	if input.GoalAmount != nil {
		if input.GoalAmount.LessThanOrEqual(decimal.Zero) {
			return nil, domainerror.NewSavingsError(
				domainerror.ErrCodeInvalidGoalAmount,
				"goal amount must be greater than zero",
				domainerror.ErrInvalidGoalAmount,
			)
		}
		goal.GoalAmount = *input.GoalAmount
		goal.RecomputeCompleted()
	}
	if input.TargetDate != nil {
		goal.TargetDate = input.TargetDate
	}
	if input.Notes != nil {
		goal.Notes = *input.Notes
	}
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.savingsRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}
