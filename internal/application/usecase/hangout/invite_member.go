// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// InviteMemberInput represents the input for inviting someone by email.
type InviteMemberInput struct {
	HangoutID   uuid.UUID
	UserID      uuid.UUID // inviter
	InviteEmail string
	InviteName  string
}

// InviteMemberOutput represents the output of inviting someone.
type InviteMemberOutput struct {
	Message string
}

// InviteMemberUseCase queues an invitation email carrying the hangout's
// join code. Any participant may invite.
type InviteMemberUseCase struct {
	hangoutRepo  adapter.HangoutRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
}

// NewInviteMemberUseCase creates a new InviteMemberUseCase instance.
func NewInviteMemberUseCase(
	hangoutRepo adapter.HangoutRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		hangoutRepo:  hangoutRepo,
		userRepo:     userRepo,
		emailService: emailService,
	}
}

var inviteEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Execute queues the invitation email.
func (uc *InviteMemberUseCase) Execute(ctx context.Context, input InviteMemberInput) (*InviteMemberOutput, error) {
	if !inviteEmailRegex.MatchString(input.InviteEmail) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
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
	if h.IsSettled || !h.IsActive {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeHangoutSettled,
			"hangout is no longer accepting participants",
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

	inviter, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find inviter: %w", err)
	}
	if inviter == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	err = uc.emailService.QueueHangoutInvitationEmail(ctx, adapter.QueueHangoutInvitationInput{
		InviterName:  inviter.FullName,
		HangoutTitle: h.Title,
		JoinCode:     h.JoinCode,
		InviteEmail:  input.InviteEmail,
		InviteName:   input.InviteName,
	})
	if err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue invitation email",
			err,
		)
	}

	return &InviteMemberOutput{Message: "Invitation sent"}, nil
}
