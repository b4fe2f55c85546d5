// Package dashboard contains the home overview use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/application/usecase/transaction"
	"github.com/kumpul/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the home overview.
type GetOverviewInput struct {
	UserID uuid.UUID
	Period transaction.Period
}

// GetOverviewOutput aggregates everything the home screen shows: the ledger
// balance for the period, recent transactions, savings progress and the
// user's active hangouts.
type GetOverviewOutput struct {
	Balance            decimal.Decimal // income total - expense total
	IncomeTotal        decimal.Decimal
	ExpenseTotal       decimal.Decimal
	RecentTransactions []*entity.Transaction
	TotalSaved         decimal.Decimal
	SavingsGoals       []*entity.SavingsGoal
	ActiveHangouts     []*entity.HangoutListItem
}

// GetOverviewUseCase assembles the home overview.
type GetOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	savingsRepo     adapter.SavingsRepository
	hangoutRepo     adapter.HangoutRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	savingsRepo adapter.SavingsRepository,
	hangoutRepo adapter.HangoutRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		transactionRepo: transactionRepo,
		savingsRepo:     savingsRepo,
		hangoutRepo:     hangoutRepo,
	}
}

// Execute builds the overview for the user and period.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	if input.Period == "" {
		input.Period = transaction.PeriodThisMonth
	}

	start, end := transaction.PeriodRange(input.Period, time.Now().UTC())
	filter := adapter.TransactionFilter{
		UserID:    input.UserID,
		StartDate: start,
		EndDate:   end,
	}

	totals, err := uc.transactionRepo.GetTotals(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate totals: %w", err)
	}

	recent, err := uc.transactionRepo.FindByFilter(ctx, filter, adapter.TransactionPagination{Page: 1, Limit: 5})
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	goals, err := uc.savingsRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	totalSaved := decimal.Zero
	for _, g := range goals {
		totalSaved = totalSaved.Add(g.CurrentAmount)
	}

	hangouts, err := uc.hangoutRepo.FindHangoutsByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hangouts: %w", err)
	}
	var active []*entity.HangoutListItem
	for _, h := range hangouts {
		if h.IsActive && !h.IsSettled {
			active = append(active, h)
		}
	}

	return &GetOverviewOutput{
		Balance:            totals.IncomeTotal.Sub(totals.ExpenseTotal),
		IncomeTotal:        totals.IncomeTotal,
		ExpenseTotal:       totals.ExpenseTotal,
		RecentTransactions: recent.Transactions,
		TotalSaved:         totalSaved,
		SavingsGoals:       goals,
		ActiveHangouts:     active,
	}, nil
}
