package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSavingsGoal_Deposit(t *testing.T) {
	goal := NewSavingsGoal(uuid.New(), "Trip to Bali", decimal.NewFromInt(100000), nil, "")

	t.Run("partial deposit does not complete the goal", func(t *testing.T) {
		goal.Deposit(decimal.NewFromInt(60000))

		if want := decimal.NewFromInt(60000); !goal.CurrentAmount.Equal(want) {
			t.Errorf("expected current amount %s, got %s", want, goal.CurrentAmount)
		}
		if goal.IsCompleted {
			t.Error("goal should not be completed at 60%")
		}
	})

	t.Run("deposit past the target completes the goal", func(t *testing.T) {
		goal.Deposit(decimal.NewFromInt(50000))

		if want := decimal.NewFromInt(110000); !goal.CurrentAmount.Equal(want) {
			t.Errorf("expected current amount %s, got %s", want, goal.CurrentAmount)
		}
		if !goal.IsCompleted {
			t.Error("goal should be completed after exceeding the target")
		}
	})

	t.Run("exact target completes the goal", func(t *testing.T) {
		exact := NewSavingsGoal(uuid.New(), "Emergency fund", decimal.NewFromInt(500000), nil, "")
		exact.Deposit(decimal.NewFromInt(500000))
		if !exact.IsCompleted {
			t.Error("goal should be completed when current equals target")
		}
	})
}

func TestSavingsGoal_RecomputeCompleted(t *testing.T) {
	// The completed flag is derived, not latched: recomputing after the
	// current amount drops below the target un-completes the goal.
	goal := NewSavingsGoal(uuid.New(), "Laptop", decimal.NewFromInt(100000), nil, "")
	goal.Deposit(decimal.NewFromInt(120000))
	if !goal.IsCompleted {
		t.Fatal("expected goal to be completed")
	}

	goal.CurrentAmount = decimal.NewFromInt(90000)
	goal.RecomputeCompleted()
	if goal.IsCompleted {
		t.Error("expected goal to un-complete after current amount dropped")
	}
}

func TestSavingsGoal_Progress(t *testing.T) {
	goal := NewSavingsGoal(uuid.New(), "Concert", decimal.NewFromInt(200000), nil, "")

	if got := goal.Progress(); got != 0 {
		t.Errorf("expected 0%% progress, got %v", got)
	}

	goal.Deposit(decimal.NewFromInt(50000))
	if got := goal.Progress(); got != 25 {
		t.Errorf("expected 25%% progress, got %v", got)
	}

	goal.Deposit(decimal.NewFromInt(300000))
	if got := goal.Progress(); got != 100 {
		t.Errorf("expected progress capped at 100%%, got %v", got)
	}

	zero := NewSavingsGoal(uuid.New(), "Broken", decimal.Zero, nil, "")
	if got := zero.Progress(); got != 0 {
		t.Errorf("expected 0%% progress for zero target, got %v", got)
	}
}
