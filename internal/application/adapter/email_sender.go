// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueHangoutInvitationEmail queues a hangout invitation email.
	QueueHangoutInvitationEmail(ctx context.Context, input QueueHangoutInvitationInput) error

	// QueueHangoutSettledEmail queues a settlement summary email.
	QueueHangoutSettledEmail(ctx context.Context, input QueueHangoutSettledInput) error
}

// QueueHangoutInvitationInput represents the input for queueing a hangout invitation email.
type QueueHangoutInvitationInput struct {
	InviterName  string
	HangoutTitle string
	JoinCode     string
	InviteEmail  string
	InviteName   string
}

// QueueHangoutSettledInput represents the input for queueing a settlement summary email.
type QueueHangoutSettledInput struct {
	HangoutTitle   string
	RecipientEmail string
	RecipientName  string
	TotalAmount    string
	ShareAmount    string
	NetAmount      string
}
