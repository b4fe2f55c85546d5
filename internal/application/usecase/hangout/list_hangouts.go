// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
)

// ListHangoutsInput represents the input for listing a user's hangouts.
type ListHangoutsInput struct {
	UserID uuid.UUID
}

// ListHangoutsOutput buckets the user's hangouts the way the home screen
// renders them.
type ListHangoutsOutput struct {
	Owned   []*entity.HangoutListItem
	Joined  []*entity.HangoutListItem
	Active  []*entity.HangoutListItem
	Settled []*entity.HangoutListItem
}

// ListHangoutsUseCase handles hangout listing logic.
type ListHangoutsUseCase struct {
	hangoutRepo adapter.HangoutRepository
}

// NewListHangoutsUseCase creates a new ListHangoutsUseCase instance.
func NewListHangoutsUseCase(hangoutRepo adapter.HangoutRepository) *ListHangoutsUseCase {
	return &ListHangoutsUseCase{
		hangoutRepo: hangoutRepo,
	}
}

// Execute lists all hangouts the user owns or participates in.
func (uc *ListHangoutsUseCase) Execute(ctx context.Context, input ListHangoutsInput) (*ListHangoutsOutput, error) {
	items, err := uc.hangoutRepo.FindHangoutsByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hangouts: %w", err)
	}

	out := &ListHangoutsOutput{}
	for _, item := range items {
		if item.OwnerID == input.UserID {
			out.Owned = append(out.Owned, item)
		} else {
			out.Joined = append(out.Joined, item)
		}
		if item.IsSettled {
			out.Settled = append(out.Settled, item)
		} else if item.IsActive {
			out.Active = append(out.Active, item)
		}
	}

	return out, nil
}
