// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueHangoutInvitationEmail queues a hangout invitation email carrying the join code.
func (s *Service) QueueHangoutInvitationEmail(ctx context.Context, input adapter.QueueHangoutInvitationInput) error {
	subject := fmt.Sprintf("%s invited you to %s - Kumpul", input.InviterName, input.HangoutTitle)

	templateData := map[string]interface{}{
		"inviter_name":  input.InviterName,
		"hangout_title": input.HangoutTitle,
		"join_code":     input.JoinCode,
		"app_url":       s.appBaseURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateHangoutInvitation,
		input.InviteEmail,
		input.InviteName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue hangout invitation email",
			err,
		)
	}

	return nil
}

// QueueHangoutSettledEmail queues a settlement summary email for a participant.
func (s *Service) QueueHangoutSettledEmail(ctx context.Context, input adapter.QueueHangoutSettledInput) error {
	subject := fmt.Sprintf("%s has been settled - Kumpul", input.HangoutTitle)

	templateData := map[string]interface{}{
		"hangout_title":  input.HangoutTitle,
		"recipient_name": input.RecipientName,
		"total_amount":   input.TotalAmount,
		"share_amount":   input.ShareAmount,
		"net_amount":     input.NetAmount,
		"app_url":        s.appBaseURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateHangoutSettled,
		input.RecipientEmail,
		input.RecipientName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue hangout settled email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
