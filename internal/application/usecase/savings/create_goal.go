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

// CreateGoalInput represents the input for creating a savings goal.
type CreateGoalInput struct {
	UserID     uuid.UUID
	GoalName   string
	GoalAmount decimal.Decimal
	TargetDate *time.Time
	Notes      string
}

// CreateGoalOutput represents the output of creating a savings goal.
type CreateGoalOutput struct {
	Goal *entity.SavingsGoal
}

// CreateGoalUseCase handles savings goal creation logic.
type CreateGoalUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(savingsRepo adapter.SavingsRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the savings goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(input.GoalName) == "" {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeGoalNameRequired,
			"goal name is required",
			domainerror.ErrGoalNameRequired,
		)
	}
	if input.GoalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidGoalAmount,
			"goal amount must be greater than zero",
			domainerror.ErrInvalidGoalAmount,
		)
	}

	goal := entity.NewSavingsGoal(input.UserID, input.GoalName, input.GoalAmount, input.TargetDate, input.Notes)

	if err := uc.savingsRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create savings goal: %w", err)
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
