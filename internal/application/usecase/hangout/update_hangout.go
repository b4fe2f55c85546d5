// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// UpdateHangoutInput represents the input for updating a hangout.
// Nil pointers leave the corresponding field unchanged.
type UpdateHangoutInput struct {
	HangoutID       uuid.UUID
	UserID          uuid.UUID
	Title           *string
	Description     *string
	Location        *string
	Date            *time.Time
	SplitMethod     *entity.SplitMethod
	MaxParticipants *int
}

// UpdateHangoutOutput represents the output of updating a hangout.
type UpdateHangoutOutput struct {
	Hangout *entity.Hangout
}

// UpdateHangoutUseCase handles hangout update logic. Only the owner may
// update, and settled hangouts are read-only.
type UpdateHangoutUseCase struct {
	hangoutRepo adapter.HangoutRepository
}

// NewUpdateHangoutUseCase creates a new UpdateHangoutUseCase instance.
func NewUpdateHangoutUseCase(hangoutRepo adapter.HangoutRepository) *UpdateHangoutUseCase {
	return &UpdateHangoutUseCase{
		hangoutRepo: hangoutRepo,
	}
}

// Execute performs the hangout update.
func (uc *UpdateHangoutUseCase) Execute(ctx context.Context, input UpdateHangoutInput) (*UpdateHangoutOutput, error) {
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
	if h.OwnerID != input.UserID {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeNotHangoutOwner,
			"only the owner can update a hangout",
			domainerror.ErrNotHangoutOwner,
		)
	}
	if h.IsSettled {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeHangoutSettled,
			"hangout is already settled",
			domainerror.ErrHangoutSettled,
		)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, domainerror.NewHangoutError(
				domainerror.ErrCodeHangoutTitleRequired,
				"hangout title is required",
				domainerror.ErrHangoutTitleRequired,
			)
		}
		h.Title = *input.Title
	}
	if input.Description != nil {
		h.Description = *input.Description
	}
	if input.Location != nil {
		h.Location = *input.Location
	}
	if input.Date != nil {
		h.Date = *input.Date
	}
	if input.SplitMethod != nil {
		if !entity.IsValidSplitMethod(*input.SplitMethod) {
			return nil, domainerror.NewHangoutError(
				domainerror.ErrCodeInvalidSplitMethod,
				fmt.Sprintf("unknown split method %q", *input.SplitMethod),
				domainerror.ErrInvalidSplitMethod,
			)
		}
		h.SplitMethod = *input.SplitMethod
	}
	if input.MaxParticipants != nil {
		h.MaxParticipants = input.MaxParticipants
	}
	h.UpdatedAt = time.Now().UTC()

	if err := uc.hangoutRepo.UpdateHangout(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to update hangout: %w", err)
	}

	return &UpdateHangoutOutput{Hangout: h}, nil
}
