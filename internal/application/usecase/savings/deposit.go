// Package savings contains savings goal use cases.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// DepositInput represents the input for depositing into a savings goal.
type DepositInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
}

// DepositOutput represents the output of a deposit.
type DepositOutput struct {
	Goal *entity.SavingsGoal
}

// DepositUseCase handles deposits into savings goals. The completion flag is
// recomputed from the updated amount on every deposit.
type DepositUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewDepositUseCase creates a new DepositUseCase instance.
func NewDepositUseCase(savingsRepo adapter.SavingsRepository) *DepositUseCase {
	return &DepositUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute performs the deposit.
func (uc *DepositUseCase) Execute(ctx context.Context, input DepositInput) (*DepositOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidDepositAmount,
			"deposit amount must be greater than zero",
			domainerror.ErrInvalidDepositAmount,
		)
	}

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

	goal.Deposit(input.Amount)

	if err := uc.savingsRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update savings goal: %w", err)
	}

	return &DepositOutput{Goal: goal}, nil
}
