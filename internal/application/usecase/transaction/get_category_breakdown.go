// Package transaction contains personal ledger use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
type GetCategoryBreakdownInput struct {
	UserID uuid.UUID
	Period Period
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Breakdown    []*entity.CategoryBreakdown
	ExpenseTotal decimal.Decimal
}

// GetCategoryBreakdownUseCase aggregates expense totals per category.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute calculates the per-category expense breakdown for the period.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	start, end := PeriodRange(input.Period, time.Now().UTC())
	expenseType := entity.TransactionTypeExpense
	filter := adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: start,
		EndDate:   end,
		Type:      &expenseType,
	}

	breakdown, err := uc.transactionRepo.GetCategoryBreakdown(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	total := decimal.Zero
	for _, b := range breakdown {
		total = total.Add(b.Total)
	}
	for _, b := range breakdown {
		if total.IsPositive() {
			pct, _ := b.Total.Div(total).Mul(decimal.NewFromInt(100)).Round(2).Float64()
			b.Percentage = pct
		}
	}

	return &GetCategoryBreakdownOutput{
		Breakdown:    breakdown,
		ExpenseTotal: total,
	}, nil
}
