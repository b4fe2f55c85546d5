// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	"github.com/kumpul/backend/internal/integration/persistence/model"
)

// savingsRepository implements the adapter.SavingsRepository interface.
type savingsRepository struct {
	db *gorm.DB
}

// NewSavingsRepository creates a new savings repository instance.
func NewSavingsRepository(db *gorm.DB) adapter.SavingsRepository {
	return &savingsRepository{
		db: db,
	}
}

// Create creates a new savings goal in the database.
func (r *savingsRepository) Create(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a savings goal by its ID. Returns nil without error when
// the goal does not exist.
func (r *savingsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUserID retrieves all savings goals for a given user.
func (r *savingsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var models []model.SavingsGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.SavingsGoal, len(models))
	for i, m := range models {
		goals[i] = m.ToEntity()
	}
	return goals, nil
}

// Update updates an existing savings goal in the database.
func (r *savingsRepository) Update(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Save(goalModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a savings goal from the database (soft delete).
func (r *savingsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SavingsGoalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
