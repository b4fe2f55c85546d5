// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/domain/entity"
)

// HangoutRepository defines the interface for hangout persistence operations.
type HangoutRepository interface {
	// CreateHangout creates a new hangout in the database.
	CreateHangout(ctx context.Context, hangout *entity.Hangout) error

	// FindHangoutByID retrieves a hangout by its ID.
	FindHangoutByID(ctx context.Context, id uuid.UUID) (*entity.Hangout, error)

	// FindHangoutByJoinCode retrieves an active hangout by its join code.
	FindHangoutByJoinCode(ctx context.Context, joinCode string) (*entity.Hangout, error)

	// FindHangoutsByUserID retrieves all hangouts a user owns or participates in.
	FindHangoutsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.HangoutListItem, error)

	// UpdateHangout updates an existing hangout in the database.
	UpdateHangout(ctx context.Context, hangout *entity.Hangout) error

	// DeleteHangout removes a hangout with its participants and expenses.
	DeleteHangout(ctx context.Context, id uuid.UUID) error

	// ExistsByJoinCode checks if an active hangout already uses the join code.
	ExistsByJoinCode(ctx context.Context, joinCode string) (bool, error)

	// CreateParticipant adds a new participant to a hangout.
	CreateParticipant(ctx context.Context, participant *entity.HangoutParticipant) error

	// FindParticipantByID retrieves a participant by their ID.
	FindParticipantByID(ctx context.Context, id uuid.UUID) (*entity.HangoutParticipant, error)

	// FindParticipantByHangoutAndUser retrieves a participant by hangout and user ID.
	FindParticipantByHangoutAndUser(ctx context.Context, hangoutID, userID uuid.UUID) (*entity.HangoutParticipant, error)

	// FindParticipantsByHangoutID retrieves all participants of a hangout.
	FindParticipantsByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*entity.HangoutParticipant, error)

	// CountParticipantsByHangoutID counts the participants of a hangout.
	CountParticipantsByHangoutID(ctx context.Context, hangoutID uuid.UUID) (int, error)

	// UpdateParticipant updates a hangout participant.
	UpdateParticipant(ctx context.Context, participant *entity.HangoutParticipant) error

	// DeleteParticipant removes a participant from a hangout.
	DeleteParticipant(ctx context.Context, id uuid.UUID) error

	// IsUserParticipant checks if a user participates in a hangout.
	IsUserParticipant(ctx context.Context, hangoutID, userID uuid.UUID) (bool, error)

	// CreateExpense adds a new expense to a hangout.
	CreateExpense(ctx context.Context, expense *entity.HangoutExpense) error

	// FindExpenseByID retrieves a hangout expense by its ID.
	FindExpenseByID(ctx context.Context, id uuid.UUID) (*entity.HangoutExpense, error)

	// FindExpensesByHangoutID retrieves all expenses of a hangout.
	FindExpensesByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*entity.HangoutExpense, error)

	// UpdateExpense updates a hangout expense.
	UpdateExpense(ctx context.Context, expense *entity.HangoutExpense) error

	// DeleteExpense removes an expense from a hangout.
	DeleteExpense(ctx context.Context, id uuid.UUID) error

	// GetHangoutWithDetails retrieves a hangout with its participants and expenses.
	GetHangoutWithDetails(ctx context.Context, hangoutID uuid.UUID) (*entity.HangoutWithDetails, error)
}
