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

// AddExpenseInput represents the input for recording a hangout expense.
type AddExpenseInput struct {
	HangoutID   uuid.UUID
	UserID      uuid.UUID // payer
	Description string
	Amount      decimal.Decimal
	Category    entity.ExpenseCategory
	Date        time.Time
	SplitAmong  []uuid.UUID
}

// AddExpenseOutput represents the output of recording a hangout expense.
type AddExpenseOutput struct {
	Expense *entity.HangoutExpense
}

// AddExpenseUseCase handles recording expenses within a hangout. The full
// amount is credited to the caller as payer.
type AddExpenseUseCase struct {
	hangoutRepo adapter.HangoutRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(hangoutRepo adapter.HangoutRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		hangoutRepo: hangoutRepo,
	}
}

// Execute performs the expense creation.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be greater than zero",
			domainerror.ErrInvalidAmount,
		)
	}
	if input.Category != "" && !entity.IsValidExpenseCategory(input.Category) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("unknown expense category %q", input.Category),
			domainerror.ErrInvalidCategory,
		)
	}

	h, err := uc.hangoutRepo.FindHangoutByID(ctx, input.HangoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to find hangout: %w", err)
	}
	if h == nil {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeHangoutNotFound,
			"hangout not found",
			domainerror.ErrHangoutNotFound,
		)
	}
	if h.IsSettled {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeHangoutSettled,
			"hangout is already settled",
			domainerror.ErrHangoutSettled,
		)
	}

	isParticipant, err := uc.hangoutRepo.IsUserParticipant(ctx, input.HangoutID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	if !isParticipant {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeNotHangoutParticipant,
			"user is not a hangout participant",
			domainerror.ErrNotHangoutParticipant,
		)
	}

	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}
	if input.Category == "" {
		input.Category = entity.CategoryOthers
	}

	// An empty split list means the expense concerns every participant.
	expense := entity.NewHangoutExpense(
		input.HangoutID,
		input.UserID,
		input.Description,
		input.Amount,
		input.Category,
		input.Date,
		input.SplitAmong,
	)
	if err := uc.hangoutRepo.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &AddExpenseOutput{Expense: expense}, nil
}
