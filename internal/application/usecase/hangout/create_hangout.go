// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// CreateHangoutInput represents the input for creating a hangout.
type CreateHangoutInput struct {
	OwnerID         uuid.UUID
	Title           string
	Description     string
	Location        string
	Date            time.Time
	SplitMethod     entity.SplitMethod
	MaxParticipants *int
}

// CreateHangoutOutput represents the output of creating a hangout.
type CreateHangoutOutput struct {
	Hangout     *entity.Hangout
	Participant *entity.HangoutParticipant
}

// CreateHangoutUseCase handles hangout creation logic. The owner is added as
// the first, pre-confirmed participant.
type CreateHangoutUseCase struct {
	hangoutRepo   adapter.HangoutRepository
	userRepo      adapter.UserRepository
	joinCodeCache adapter.JoinCodeCache
}

// NewCreateHangoutUseCase creates a new CreateHangoutUseCase instance.
func NewCreateHangoutUseCase(
	hangoutRepo adapter.HangoutRepository,
	userRepo adapter.UserRepository,
	joinCodeCache adapter.JoinCodeCache,
) *CreateHangoutUseCase {
	return &CreateHangoutUseCase{
		hangoutRepo:   hangoutRepo,
		userRepo:      userRepo,
		joinCodeCache: joinCodeCache,
	}
}

// Execute performs the hangout creation.
func (uc *CreateHangoutUseCase) Execute(ctx context.Context, input CreateHangoutInput) (*CreateHangoutOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeHangoutTitleRequired,
			"hangout title is required",
			domainerror.ErrHangoutTitleRequired,
		)
	}
	if !entity.IsValidSplitMethod(input.SplitMethod) {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeInvalidSplitMethod,
			fmt.Sprintf("unknown split method %q", input.SplitMethod),
			domainerror.ErrInvalidSplitMethod,
		)
	}
	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}

	owner, err := uc.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find owner: %w", err)
	}
	if owner == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	joinCode, err := uniqueJoinCode(ctx, uc.hangoutRepo)
	if err != nil {
		return nil, err
	}

	h := entity.NewHangout(
		input.OwnerID,
		input.Title,
		input.Description,
		input.Location,
		input.Date,
		input.SplitMethod,
		input.MaxParticipants,
		joinCode,
	)
	if err := uc.hangoutRepo.CreateHangout(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to create hangout: %w", err)
	}

	// The owner joins immediately, pre-confirmed. Under the percentage
	// method they start with the full 100% share until others join and
	// shares are re-assigned.
	participant := entity.NewHangoutParticipant(h.ID, owner.ID, owner.FirstName(), true)
	if h.SplitMethod == entity.SplitMethodPercentage {
		full := 100.0
		participant.SharePercentage = &full
	}
	if err := uc.hangoutRepo.CreateParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to add owner participant: %w", err)
	}

	// Cache failures only cost a database lookup on join, so they are
	// logged and swallowed.
	if uc.joinCodeCache != nil {
		if err := uc.joinCodeCache.Set(ctx, h.JoinCode, h.ID); err != nil {
			slog.Warn("failed to cache join code", "join_code", h.JoinCode, "error", err)
		}
	}

	return &CreateHangoutOutput{
		Hangout:     h,
		Participant: participant,
	}, nil
}
