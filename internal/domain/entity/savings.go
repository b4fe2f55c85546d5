// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsGoal represents a savings target the user deposits toward.
// CurrentAmount only ever grows through deposits; IsCompleted is recomputed
// from current values on every deposit rather than latched.
type SavingsGoal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	GoalName      string
	GoalAmount    decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	Notes         string
	IsCompleted   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingsGoal creates a new SavingsGoal starting at zero.
func NewSavingsGoal(userID uuid.UUID, goalName string, goalAmount decimal.Decimal, targetDate *time.Time, notes string) *SavingsGoal {
	now := time.Now().UTC()
	return &SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		GoalName:      goalName,
		GoalAmount:    goalAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		Notes:         notes,
		IsCompleted:   false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Deposit adds amount to the goal and recomputes the completion flag.
func (g *SavingsGoal) Deposit(amount decimal.Decimal) {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.RecomputeCompleted()
	g.UpdatedAt = time.Now().UTC()
}

// RecomputeCompleted derives IsCompleted from the current amounts.
// There is no sticky lock: lowering CurrentAmount externally and
// recomputing would un-complete the goal.
func (g *SavingsGoal) RecomputeCompleted() {
	g.IsCompleted = g.CurrentAmount.GreaterThanOrEqual(g.GoalAmount)
}

// Progress returns completion as a percentage, capped at 100.
func (g *SavingsGoal) Progress() float64 {
	if !g.GoalAmount.IsPositive() {
		return 0
	}
	pct, _ := g.CurrentAmount.Div(g.GoalAmount).Mul(decimal.NewFromInt(100)).Float64()
	if pct > 100 {
		return 100
	}
	return pct
}
