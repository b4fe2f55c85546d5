// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
	"github.com/kumpul/backend/internal/domain/split"
)

// GetHangoutInput represents the input for fetching a hangout's details.
type GetHangoutInput struct {
	HangoutID uuid.UUID
	UserID    uuid.UUID
}

// GetHangoutOutput represents the full hangout view: the stored state plus
// the settlement summary derived from the live expense list.
type GetHangoutOutput struct {
	Hangout      *entity.Hangout
	Participants []*entity.HangoutParticipant
	Expenses     []*entity.HangoutExpense
	Summary      split.Summary
}

// GetHangoutUseCase handles fetching one hangout with derived balances.
type GetHangoutUseCase struct {
	hangoutRepo adapter.HangoutRepository
}

// NewGetHangoutUseCase creates a new GetHangoutUseCase instance.
func NewGetHangoutUseCase(hangoutRepo adapter.HangoutRepository) *GetHangoutUseCase {
	return &GetHangoutUseCase{
		hangoutRepo: hangoutRepo,
	}
}

// Execute fetches the hangout details. Only participants may view a hangout.
func (uc *GetHangoutUseCase) Execute(ctx context.Context, input GetHangoutInput) (*GetHangoutOutput, error) {
	details, err := uc.hangoutRepo.GetHangoutWithDetails(ctx, input.HangoutID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hangout details: %w", err)
	}
	if details == nil || details.Hangout == nil {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeHangoutNotFound,
			"hangout not found",
			domainerror.ErrHangoutNotFound,
		)
	}

	isParticipant := false
	for _, p := range details.Participants {
		if p.UserID == input.UserID {
			isParticipant = true
			break
		}
	}
	if !isParticipant {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeNotHangoutParticipant,
			"user is not a hangout participant",
			domainerror.ErrNotHangoutParticipant,
		)
	}

	return &GetHangoutOutput{
		Hangout:      details.Hangout,
		Participants: details.Participants,
		Expenses:     details.Expenses,
		Summary:      split.Summarize(details.Hangout, details.Participants, details.Expenses),
	}, nil
}
