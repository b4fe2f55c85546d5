package entity

import (
	"errors"
	"testing"
	"time"
)

func TestEmailJob_Lifecycle(t *testing.T) {
	t.Run("new job starts pending with three attempts", func(t *testing.T) {
		job := NewEmailJob(TemplateHangoutInvitation, "sari@example.com", "Sari", "You're invited", nil)

		if job.Status != EmailStatusPending {
			t.Errorf("expected status %s, got %s", EmailStatusPending, job.Status)
		}
		if job.MaxAttempts != 3 {
			t.Errorf("expected max attempts 3, got %d", job.MaxAttempts)
		}
		if job.Attempts != 0 {
			t.Errorf("expected 0 attempts, got %d", job.Attempts)
		}
		if !job.CanRetry() {
			t.Error("expected a fresh job to be retryable")
		}
	})

	t.Run("mark sent records the provider id and processed time", func(t *testing.T) {
		job := NewEmailJob(TemplateHangoutSettled, "sari@example.com", "Sari", "Settled", nil)
		job.MarkProcessing()
		job.MarkSent("resend-123")

		if job.Status != EmailStatusSent {
			t.Errorf("expected status %s, got %s", EmailStatusSent, job.Status)
		}
		if job.ResendID != "resend-123" {
			t.Errorf("expected resend id to be recorded, got %q", job.ResendID)
		}
		if job.ProcessedAt == nil {
			t.Error("expected processed time to be set")
		}
	})

	t.Run("transient failure requeues with backoff", func(t *testing.T) {
		job := NewEmailJob(TemplateHangoutInvitation, "sari@example.com", "Sari", "You're invited", nil)
		before := time.Now().UTC()
		job.MarkFailed(errors.New("rate limited"), false)

		if job.Status != EmailStatusPending {
			t.Errorf("expected status %s after transient failure, got %s", EmailStatusPending, job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
		if job.LastError != "rate limited" {
			t.Errorf("expected last error to be recorded, got %q", job.LastError)
		}
		// Second attempt backs off by a minute.
		if job.ScheduledAt.Before(before.Add(30 * time.Second)) {
			t.Errorf("expected retry to be scheduled in the future, got %v", job.ScheduledAt)
		}
		if job.IsReadyToProcess() {
			t.Error("expected job not to be ready before its scheduled retry")
		}
	})

	t.Run("permanent failure goes straight to failed", func(t *testing.T) {
		job := NewEmailJob(TemplateHangoutInvitation, "sari@example.com", "Sari", "You're invited", nil)
		job.MarkFailed(errors.New("invalid recipient"), true)

		if job.Status != EmailStatusFailed {
			t.Errorf("expected status %s, got %s", EmailStatusFailed, job.Status)
		}
		if job.ProcessedAt == nil {
			t.Error("expected processed time to be set on permanent failure")
		}
	})

	t.Run("exhausting attempts fails the job", func(t *testing.T) {
		job := NewEmailJob(TemplateHangoutInvitation, "sari@example.com", "Sari", "You're invited", nil)
		job.MarkFailed(errors.New("timeout"), false)
		job.MarkFailed(errors.New("timeout"), false)
		if job.Status == EmailStatusFailed {
			t.Fatal("job should still be retryable after two failures")
		}

		job.MarkFailed(errors.New("timeout"), false)
		if job.Status != EmailStatusFailed {
			t.Errorf("expected status %s after three failures, got %s", EmailStatusFailed, job.Status)
		}
		if job.CanRetry() {
			t.Error("expected job to be exhausted after max attempts")
		}
	})
}
