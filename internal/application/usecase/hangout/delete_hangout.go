// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// DeleteHangoutInput represents the input for deleting a hangout.
type DeleteHangoutInput struct {
	HangoutID uuid.UUID
	UserID    uuid.UUID
}

// DeleteHangoutOutput represents the output of deleting a hangout.
type DeleteHangoutOutput struct {
	Message string
}

// DeleteHangoutUseCase handles hangout deletion. Only the owner may delete;
// participants and expenses are removed with the hangout.
type DeleteHangoutUseCase struct {
	hangoutRepo   adapter.HangoutRepository
	joinCodeCache adapter.JoinCodeCache
}

// NewDeleteHangoutUseCase creates a new DeleteHangoutUseCase instance.
func NewDeleteHangoutUseCase(hangoutRepo adapter.HangoutRepository, joinCodeCache adapter.JoinCodeCache) *DeleteHangoutUseCase {
	return &DeleteHangoutUseCase{
		hangoutRepo:   hangoutRepo,
		joinCodeCache: joinCodeCache,
	}
}

// Execute performs the hangout deletion.
func (uc *DeleteHangoutUseCase) Execute(ctx context.Context, input DeleteHangoutInput) (*DeleteHangoutOutput, error) {
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
			"only the owner can delete a hangout",
			domainerror.ErrNotHangoutOwner,
		)
	}

	if err := uc.hangoutRepo.DeleteHangout(ctx, input.HangoutID); err != nil {
		return nil, fmt.Errorf("failed to delete hangout: %w", err)
	}

	if uc.joinCodeCache != nil {
		if err := uc.joinCodeCache.Delete(ctx, h.JoinCode); err != nil {
			slog.Warn("failed to evict join code from cache", "join_code", h.JoinCode, "error", err)
		}
	}

	return &DeleteHangoutOutput{Message: "Hangout deleted"}, nil
}
