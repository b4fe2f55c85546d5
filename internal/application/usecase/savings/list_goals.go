// Package savings contains savings goal use cases.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing savings goals.
type ListGoalsInput struct {
	UserID uuid.UUID
}

// ListGoalsOutput represents the output of listing savings goals.
type ListGoalsOutput struct {
	Goals      []*entity.SavingsGoal
	TotalSaved decimal.Decimal
}

// ListGoalsUseCase handles savings goal listing logic.
type ListGoalsUseCase struct {
	savingsRepo adapter.SavingsRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(savingsRepo adapter.SavingsRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		savingsRepo: savingsRepo,
	}
}

// Execute lists all savings goals for the user.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.savingsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}

	totalSaved := decimal.Zero
	for _, g := range goals {
		totalSaved = totalSaved.Add(g.CurrentAmount)
	}

	return &ListGoalsOutput{
		Goals:      goals,
		TotalSaved: totalSaved,
	}, nil
}
