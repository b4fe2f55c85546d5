// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SplitMethod represents the policy for dividing a hangout's total expense
// among its participants.
type SplitMethod string

const (
	SplitMethodEqual      SplitMethod = "equal"
	SplitMethodPercentage SplitMethod = "percentage"
	SplitMethodManual     SplitMethod = "manual"
	SplitMethodTreat      SplitMethod = "treat"
)

// IsValidSplitMethod reports whether m is a known split method.
func IsValidSplitMethod(m SplitMethod) bool {
	switch m {
	case SplitMethodEqual, SplitMethodPercentage, SplitMethodManual, SplitMethodTreat:
		return true
	}
	return false
}

// Hangout represents a shared-expense event with participants and a chosen
// split policy. Balances and totals are never stored on the hangout; they
// are derived from the live expense list on every read.
type Hangout struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Title           string
	Description     string
	Location        string
	Date            time.Time
	SplitMethod     SplitMethod
	IsActive        bool
	IsSettled       bool
	JoinCode        string
	MaxParticipants *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewHangout creates a new active, unsettled Hangout.
func NewHangout(ownerID uuid.UUID, title, description, location string, date time.Time, method SplitMethod, maxParticipants *int, joinCode string) *Hangout {
	now := time.Now().UTC()
	return &Hangout{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Title:           title,
		Description:     description,
		Location:        location,
		Date:            date,
		SplitMethod:     method,
		IsActive:        true,
		IsSettled:       false,
		JoinCode:        joinCode,
		MaxParticipants: maxParticipants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// HangoutParticipant represents one user's membership in a hangout.
// SharePercentage is consulted only for the percentage split method and
// FixedAmount only for the manual method.
type HangoutParticipant struct {
	ID              uuid.UUID
	HangoutID       uuid.UUID
	UserID          uuid.UUID
	DisplayName     string
	SharePercentage *float64
	FixedAmount     *decimal.Decimal
	HasConfirmed    bool
	HasPaid         bool
	JoinedAt        time.Time
	CreatedAt       time.Time
}

// NewHangoutParticipant creates a new participant. The owner joins
// pre-confirmed; everyone else confirms after joining.
func NewHangoutParticipant(hangoutID, userID uuid.UUID, displayName string, confirmed bool) *HangoutParticipant {
	now := time.Now().UTC()
	return &HangoutParticipant{
		ID:           uuid.New(),
		HangoutID:    hangoutID,
		UserID:       userID,
		DisplayName:  displayName,
		HasConfirmed: confirmed,
		HasPaid:      false,
		JoinedAt:     now,
		CreatedAt:    now,
	}
}

// HangoutExpense represents a single recorded expense within a hangout.
// The full amount is credited to PaidByID. SplitAmong restricts which
// participants the expense concerns; an empty list means all participants.
type HangoutExpense struct {
	ID          uuid.UUID
	HangoutID   uuid.UUID
	PaidByID    uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    ExpenseCategory
	Date        time.Time
	SplitAmong  []uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewHangoutExpense creates a new expense for a hangout.
func NewHangoutExpense(hangoutID, paidByID uuid.UUID, description string, amount decimal.Decimal, category ExpenseCategory, date time.Time, splitAmong []uuid.UUID) *HangoutExpense {
	now := time.Now().UTC()
	return &HangoutExpense{
		ID:          uuid.New(),
		HangoutID:   hangoutID,
		PaidByID:    paidByID,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		SplitAmong:  splitAmong,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// HangoutWithDetails represents a hangout with its resolved participants
// and expenses, the shape the split engine consumes.
type HangoutWithDetails struct {
	Hangout      *Hangout
	Participants []*HangoutParticipant
	Expenses     []*HangoutExpense
}

// HangoutListItem represents a hangout in a list view.
type HangoutListItem struct {
	ID               uuid.UUID
	Title            string
	Date             time.Time
	Location         string
	SplitMethod      SplitMethod
	IsActive         bool
	IsSettled        bool
	JoinCode         string
	OwnerID          uuid.UUID
	ParticipantCount int
	ExpenseCount     int
	Total            decimal.Decimal
}
