// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// JoinHangoutInput represents the input for joining a hangout by code.
type JoinHangoutInput struct {
	UserID      uuid.UUID
	JoinCode    string
	DisplayName string
}

// JoinHangoutOutput represents the output of joining a hangout.
type JoinHangoutOutput struct {
	Hangout     *entity.Hangout
	Participant *entity.HangoutParticipant
}

// JoinHangoutUseCase handles joining a hangout through its join code.
type JoinHangoutUseCase struct {
	hangoutRepo   adapter.HangoutRepository
	userRepo      adapter.UserRepository
	joinCodeCache adapter.JoinCodeCache
}

// NewJoinHangoutUseCase creates a new JoinHangoutUseCase instance.
func NewJoinHangoutUseCase(
	hangoutRepo adapter.HangoutRepository,
	userRepo adapter.UserRepository,
	joinCodeCache adapter.JoinCodeCache,
) *JoinHangoutUseCase {
	return &JoinHangoutUseCase{
		hangoutRepo:   hangoutRepo,
		userRepo:      userRepo,
		joinCodeCache: joinCodeCache,
	}
}

// Execute performs the join. Join codes are case-insensitive on input and
// stored uppercase.
func (uc *JoinHangoutUseCase) Execute(ctx context.Context, input JoinHangoutInput) (*JoinHangoutOutput, error) {
	joinCode := strings.ToUpper(strings.TrimSpace(input.JoinCode))
	if len(joinCode) != joinCodeLength {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeInvalidJoinCode,
			"invalid join code",
			domainerror.ErrInvalidJoinCode,
		)
	}

	h, err := uc.findByJoinCode(ctx, joinCode)
	if err != nil {
		return nil, err
	}
	if h == nil || !h.IsActive {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeInvalidJoinCode,
			"invalid join code",
			domainerror.ErrInvalidJoinCode,
		)
	}

	already, err := uc.hangoutRepo.IsUserParticipant(ctx, h.ID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check participation: %w", err)
	}
	if already {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeAlreadyParticipant,
			"user is already a participant",
			domainerror.ErrAlreadyParticipant,
		)
	}

	if h.MaxParticipants != nil {
		count, err := uc.hangoutRepo.CountParticipantsByHangoutID(ctx, h.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count participants: %w", err)
		}
		if count >= *h.MaxParticipants {
			return nil, domainerror.NewHangoutError(
				domainerror.ErrCodeHangoutFull,
				"hangout is full",
				domainerror.ErrHangoutFull,
			)
		}
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		user, err := uc.userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		if user == nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		displayName = user.FirstName()
	}

	participant := entity.NewHangoutParticipant(h.ID, input.UserID, displayName, false)
	if err := uc.hangoutRepo.CreateParticipant(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}

	return &JoinHangoutOutput{
		Hangout:     h,
		Participant: participant,
	}, nil
}

// findByJoinCode consults the cache first and falls back to the database.
func (uc *JoinHangoutUseCase) findByJoinCode(ctx context.Context, joinCode string) (*entity.Hangout, error) {
	if uc.joinCodeCache != nil {
		hangoutID, err := uc.joinCodeCache.Get(ctx, joinCode)
		if err != nil {
			slog.Warn("join code cache lookup failed", "join_code", joinCode, "error", err)
		} else if hangoutID != uuid.Nil {
			h, err := uc.hangoutRepo.FindHangoutByID(ctx, hangoutID)
			if err != nil {
				return nil, fmt.Errorf("failed to find hangout: %w", err)
			}
			// Stale cache entries fall through to the code lookup.
			if h != nil && h.JoinCode == joinCode {
				return h, nil
			}
		}
	}

	h, err := uc.hangoutRepo.FindHangoutByJoinCode(ctx, joinCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find hangout by join code: %w", err)
	}
	return h, nil
}
