// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
	"github.com/kumpul/backend/internal/domain/split"
)

// SettleHangoutInput represents the input for settling a hangout.
type SettleHangoutInput struct {
	HangoutID uuid.UUID
	UserID    uuid.UUID
}

// SettleHangoutOutput represents the output of settling a hangout.
type SettleHangoutOutput struct {
	Hangout *entity.Hangout
	Summary split.Summary
}

// SettleHangoutUseCase marks a hangout as settled and closed. Settlement is
// terminal for display only; the summary stays derived from the expense
// list, so the returned figures would still change if the data changed.
type SettleHangoutUseCase struct {
	hangoutRepo   adapter.HangoutRepository
	userRepo      adapter.UserRepository
	emailService  adapter.EmailService
	joinCodeCache adapter.JoinCodeCache
}

// NewSettleHangoutUseCase creates a new SettleHangoutUseCase instance.
func NewSettleHangoutUseCase(
	hangoutRepo adapter.HangoutRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	joinCodeCache adapter.JoinCodeCache,
) *SettleHangoutUseCase {
	return &SettleHangoutUseCase{
		hangoutRepo:   hangoutRepo,
		userRepo:      userRepo,
		emailService:  emailService,
		joinCodeCache: joinCodeCache,
	}
}

// Execute performs the settlement. Only the owner can settle.
func (uc *SettleHangoutUseCase) Execute(ctx context.Context, input SettleHangoutInput) (*SettleHangoutOutput, error) {
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

	h := details.Hangout
	if h.OwnerID != input.UserID {
		return nil, domainerror.NewHangoutError(
			domainerror.ErrCodeNotHangoutOwner,
			"only the owner can settle a hangout",
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

	h.IsSettled = true
	h.IsActive = false
	h.UpdatedAt = time.Now().UTC()
	if err := uc.hangoutRepo.UpdateHangout(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to settle hangout: %w", err)
	}

	// A settled hangout can no longer be joined, so its code leaves the cache.
	if uc.joinCodeCache != nil {
		if err := uc.joinCodeCache.Delete(ctx, h.JoinCode); err != nil {
			slog.Warn("failed to evict join code from cache", "join_code", h.JoinCode, "error", err)
		}
	}

	summary := split.Summarize(h, details.Participants, details.Expenses)
	uc.queueSettlementEmails(ctx, h, details.Participants, summary)

	return &SettleHangoutOutput{
		Hangout: h,
		Summary: summary,
	}, nil
}

// queueSettlementEmails sends each participant their final position. Email
// failures never fail the settlement.
func (uc *SettleHangoutUseCase) queueSettlementEmails(ctx context.Context, h *entity.Hangout, participants []*entity.HangoutParticipant, summary split.Summary) {
	if uc.emailService == nil {
		return
	}
	for _, p := range participants {
		user, err := uc.userRepo.FindByID(ctx, p.UserID)
		if err != nil || user == nil {
			slog.Warn("skipping settlement email, user lookup failed", "user_id", p.UserID, "error", err)
			continue
		}
		balance := summary.Balances[p.UserID]
		err = uc.emailService.QueueHangoutSettledEmail(ctx, adapter.QueueHangoutSettledInput{
			HangoutTitle:   h.Title,
			RecipientEmail: user.Email,
			RecipientName:  p.DisplayName,
			TotalAmount:    summary.Total.StringFixed(0),
			ShareAmount:    balance.Owed.StringFixed(0),
			NetAmount:      balance.Net.StringFixed(0),
		})
		if err != nil {
			slog.Warn("failed to queue settlement email", "user_id", p.UserID, "error", err)
		}
	}
}
