// Package transaction contains personal ledger use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
)

// SuggestCategoryInput represents the input for category suggestion.
type SuggestCategoryInput struct {
	Description string
}

// SuggestCategoryOutput represents the output of category suggestion.
type SuggestCategoryOutput struct {
	Category   entity.ExpenseCategory
	Confidence float64
}

// SuggestCategoryUseCase suggests an expense category for a description
// using the configured AI suggester. When the suggester is unavailable it
// falls back to the "others" category so the caller never blocks on it.
type SuggestCategoryUseCase struct {
	suggester adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
func NewSuggestCategoryUseCase(suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		suggester: suggester,
	}
}

// Execute performs the category suggestion.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" || uc.suggester == nil || !uc.suggester.IsAvailable() {
		return &SuggestCategoryOutput{Category: entity.CategoryOthers, Confidence: 0}, nil
	}

	suggestion, err := uc.suggester.SuggestCategory(ctx, description)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest category: %w", err)
	}

	// Anything outside the taxonomy degrades to "others".
	if !entity.IsValidExpenseCategory(suggestion.Category) {
		return &SuggestCategoryOutput{Category: entity.CategoryOthers, Confidence: 0}, nil
	}

	return &SuggestCategoryOutput{
		Category:   suggestion.Category,
		Confidence: suggestion.Confidence,
	}, nil
}
