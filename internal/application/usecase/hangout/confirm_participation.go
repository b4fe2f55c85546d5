// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// ConfirmParticipationInput represents the input for confirming attendance.
// SharePercentage and FixedAmount carry the participant's own split
// configuration for the percentage and manual methods respectively.
type ConfirmParticipationInput struct {
	HangoutID       uuid.UUID
	UserID          uuid.UUID
	SharePercentage *float64
	FixedAmount     *decimal.Decimal
}

// ConfirmParticipationOutput represents the output of confirming attendance.
type ConfirmParticipationOutput struct {
	Participant *entity.HangoutParticipant
}

// ConfirmParticipationUseCase handles a participant confirming their spot.
type ConfirmParticipationUseCase struct {
	hangoutRepo adapter.HangoutRepository
}

// NewConfirmParticipationUseCase creates a new ConfirmParticipationUseCase instance.
func NewConfirmParticipationUseCase(hangoutRepo adapter.HangoutRepository) *ConfirmParticipationUseCase {
	return &ConfirmParticipationUseCase{
		hangoutRepo: hangoutRepo,
	}
}

// Execute marks the participant confirmed and stores their split overrides.
// Overrides are stored as given; the engine treats missing values as zero
// and never validates that percentages sum to 100.
func (uc *ConfirmParticipationUseCase) Execute(ctx context.Context, input ConfirmParticipationInput) (*ConfirmParticipationOutput, error) {
	participant, err := uc.hangoutRepo.FindParticipantByHangoutAndUser(ctx, input.HangoutID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	if participant == nil {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeNotHangoutParticipant,
			"user is not a hangout participant",
			domainerror.ErrNotHangoutParticipant,
		)
	}

	participant.HasConfirmed = true
	if input.SharePercentage != nil {
		participant.SharePercentage = input.SharePercentage
	}
	if input.FixedAmount != nil {
		participant.FixedAmount = input.FixedAmount
	}

	if err := uc.hangoutRepo.UpdateParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return &ConfirmParticipationOutput{Participant: participant}, nil
}
