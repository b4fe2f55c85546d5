// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// MarkPaidInput represents the input for marking a participant as paid.
type MarkPaidInput struct {
	HangoutID uuid.UUID
	UserID    uuid.UUID // caller
	TargetID  uuid.UUID // participant user being marked
	HasPaid   bool
}

// MarkPaidOutput represents the output of marking a participant as paid.
type MarkPaidOutput struct {
	Participant *entity.HangoutParticipant
}

// MarkPaidUseCase toggles a participant's paid flag. Participants mark
// themselves; the owner may mark anyone.
type MarkPaidUseCase struct {
	hangoutRepo adapter.HangoutRepository
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(hangoutRepo adapter.HangoutRepository) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		hangoutRepo: hangoutRepo,
	}
}

// Execute performs the paid flag update.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
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

	if input.TargetID != input.UserID && h.OwnerID != input.UserID {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeNotHangoutOwner,
			"only the owner can mark other participants as paid",
			domainerror.ErrNotHangoutOwner,
		)
	}

	participant, err := uc.hangoutRepo.FindParticipantByHangoutAndUser(ctx, input.HangoutID, input.TargetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find participant: %w", err)
	}
	if participant == nil {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeParticipantNotFound,
			"participant not found",
			domainerror.ErrParticipantNotFound,
		)
	}

	participant.HasPaid = input.HasPaid
	if err := uc.hangoutRepo.UpdateParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to update participant: %w", err)
	}

	return &MarkPaidOutput{Participant: participant}, nil
}
