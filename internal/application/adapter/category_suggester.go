// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/kumpul/backend/internal/domain/entity"
)

// CategorySuggestion represents a suggested expense category for a description.
type CategorySuggestion struct {
	Category   entity.ExpenseCategory
	Confidence float64
}

// CategorySuggester defines the interface for AI-backed expense categorization.
type CategorySuggester interface {
	// SuggestCategory suggests an expense category for a free-text description.
	// The suggestion is constrained to the fixed category taxonomy.
	SuggestCategory(ctx context.Context, description string) (*CategorySuggestion, error)

	// IsAvailable checks if the suggester is available and properly configured.
	IsAvailable() bool
}
