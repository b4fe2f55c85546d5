// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	"github.com/kumpul/backend/internal/integration/persistence/model"
)

// hangoutRepository implements the adapter.HangoutRepository interface.
type hangoutRepository struct {
	db *gorm.DB
}

// NewHangoutRepository creates a new hangout repository instance.
func NewHangoutRepository(db *gorm.DB) adapter.HangoutRepository {
	return &hangoutRepository{
		db: db,
	}
}

// CreateHangout creates a new hangout in the database.
func (r *hangoutRepository) CreateHangout(ctx context.Context, hangout *entity.Hangout) error {
	hangoutModel := model.HangoutFromEntity(hangout)
	result := r.db.WithContext(ctx).Create(hangoutModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindHangoutByID retrieves a hangout by its ID. Returns nil without error
// when the hangout does not exist.
func (r *hangoutRepository) FindHangoutByID(ctx context.Context, id uuid.UUID) (*entity.Hangout, error) {
	var hangoutModel model.HangoutModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&hangoutModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return hangoutModel.ToEntity(), nil
}

// FindHangoutByJoinCode retrieves an active hangout by its join code.
func (r *hangoutRepository) FindHangoutByJoinCode(ctx context.Context, joinCode string) (*entity.Hangout, error) {
	var hangoutModel model.HangoutModel
	result := r.db.WithContext(ctx).
		Where("join_code = ? AND is_active = ?", joinCode, true).
		First(&hangoutModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return hangoutModel.ToEntity(), nil
}

// FindHangoutsByUserID retrieves all hangouts a user owns or participates in,
// with participant and expense counts and the running total per hangout.
func (r *hangoutRepository) FindHangoutsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.HangoutListItem, error) {
	type row struct {
		model.HangoutModel
		ParticipantCount int
		ExpenseCount     int
		Total            decimal.Decimal
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Model(&model.HangoutModel{}).
		Select(`hangouts.*,
			(SELECT COUNT(*) FROM hangout_participants hp WHERE hp.hangout_id = hangouts.id) AS participant_count,
			(SELECT COUNT(*) FROM hangout_expenses he WHERE he.hangout_id = hangouts.id) AS expense_count,
			(SELECT COALESCE(SUM(he.amount), 0) FROM hangout_expenses he WHERE he.hangout_id = hangouts.id) AS total`).
		Where("hangouts.id IN (SELECT hangout_id FROM hangout_participants WHERE user_id = ?)", userID).
		Order("hangouts.date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]*entity.HangoutListItem, len(rows))
	for i, rw := range rows {
		items[i] = &entity.HangoutListItem{
			ID:               rw.ID,
			Title:            rw.Title,
			Date:             rw.Date,
			Location:         rw.Location,
			SplitMethod:      entity.SplitMethod(rw.SplitMethod),
			IsActive:         rw.IsActive,
			IsSettled:        rw.IsSettled,
			JoinCode:         rw.JoinCode,
			OwnerID:          rw.OwnerID,
			ParticipantCount: rw.ParticipantCount,
			ExpenseCount:     rw.ExpenseCount,
			Total:            rw.Total,
		}
	}
	return items, nil
}

// UpdateHangout updates an existing hangout in the database.
func (r *hangoutRepository) UpdateHangout(ctx context.Context, hangout *entity.Hangout) error {
	hangoutModel := model.HangoutFromEntity(hangout)
	result := r.db.WithContext(ctx).Save(hangoutModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteHangout removes a hangout with its participants and expenses.
func (r *hangoutRepository) DeleteHangout(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.HangoutExpenseModel{}, "hangout_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.HangoutParticipantModel{}, "hangout_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.HangoutModel{}, "id = ?", id).Error
	})
}

// ExistsByJoinCode checks if an active hangout already uses the join code.
func (r *hangoutRepository) ExistsByJoinCode(ctx context.Context, joinCode string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HangoutModel{}).
		Where("join_code = ? AND is_active = ?", joinCode, true).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CreateParticipant adds a new participant to a hangout.
func (r *hangoutRepository) CreateParticipant(ctx context.Context, participant *entity.HangoutParticipant) error {
	participantModel := model.HangoutParticipantFromEntity(participant)
	result := r.db.WithContext(ctx).Create(participantModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindParticipantByID retrieves a participant by their ID.
func (r *hangoutRepository) FindParticipantByID(ctx context.Context, id uuid.UUID) (*entity.HangoutParticipant, error) {
	var participantModel model.HangoutParticipantModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&participantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return participantModel.ToEntity(), nil
}

// FindParticipantByHangoutAndUser retrieves a participant by hangout and user ID.
func (r *hangoutRepository) FindParticipantByHangoutAndUser(ctx context.Context, hangoutID, userID uuid.UUID) (*entity.HangoutParticipant, error) {
	var participantModel model.HangoutParticipantModel
	result := r.db.WithContext(ctx).
		Where("hangout_id = ? AND user_id = ?", hangoutID, userID).
		First(&participantModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return participantModel.ToEntity(), nil
}

// FindParticipantsByHangoutID retrieves all participants of a hangout.
func (r *hangoutRepository) FindParticipantsByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*entity.HangoutParticipant, error) {
	var models []model.HangoutParticipantModel
	result := r.db.WithContext(ctx).
		Where("hangout_id = ?", hangoutID).
		Order("joined_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	participants := make([]*entity.HangoutParticipant, len(models))
	for i, m := range models {
		participants[i] = m.ToEntity()
	}
	return participants, nil
}

// CountParticipantsByHangoutID counts the participants of a hangout.
func (r *hangoutRepository) CountParticipantsByHangoutID(ctx context.Context, hangoutID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HangoutParticipantModel{}).
		Where("hangout_id = ?", hangoutID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// UpdateParticipant updates a hangout participant.
func (r *hangoutRepository) UpdateParticipant(ctx context.Context, participant *entity.HangoutParticipant) error {
	participantModel := model.HangoutParticipantFromEntity(participant)
	result := r.db.WithContext(ctx).Save(participantModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteParticipant removes a participant from a hangout.
func (r *hangoutRepository) DeleteParticipant(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.HangoutParticipantModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// IsUserParticipant checks if a user participates in a hangout.
func (r *hangoutRepository) IsUserParticipant(ctx context.Context, hangoutID, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.HangoutParticipantModel{}).
		Where("hangout_id = ? AND user_id = ?", hangoutID, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CreateExpense adds a new expense to a hangout.
func (r *hangoutRepository) CreateExpense(ctx context.Context, expense *entity.HangoutExpense) error {
	expenseModel := model.HangoutExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindExpenseByID retrieves a hangout expense by its ID.
func (r *hangoutRepository) FindExpenseByID(ctx context.Context, id uuid.UUID) (*entity.HangoutExpense, error) {
	var expenseModel model.HangoutExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindExpensesByHangoutID retrieves all expenses of a hangout.
func (r *hangoutRepository) FindExpensesByHangoutID(ctx context.Context, hangoutID uuid.UUID) ([]*entity.HangoutExpense, error) {
	var models []model.HangoutExpenseModel
	result := r.db.WithContext(ctx).
		Where("hangout_id = ?", hangoutID).
		Order("date DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.HangoutExpense, len(models))
	for i, m := range models {
		expenses[i] = m.ToEntity()
	}
	return expenses, nil
}

// UpdateExpense updates a hangout expense.
func (r *hangoutRepository) UpdateExpense(ctx context.Context, expense *entity.HangoutExpense) error {
	expenseModel := model.HangoutExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteExpense removes an expense from a hangout.
func (r *hangoutRepository) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.HangoutExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetHangoutWithDetails retrieves a hangout with its participants and
// expenses, the shape the split engine consumes.
func (r *hangoutRepository) GetHangoutWithDetails(ctx context.Context, hangoutID uuid.UUID) (*entity.HangoutWithDetails, error) {
	hangout, err := r.FindHangoutByID(ctx, hangoutID)
	if err != nil {
		return nil, err
	}
	if hangout == nil {
		return nil, nil
	}

	participants, err := r.FindParticipantsByHangoutID(ctx, hangoutID)
	if err != nil {
		return nil, err
	}
	expenses, err := r.FindExpensesByHangoutID(ctx, hangoutID)
	if err != nil {
		return nil, err
	}

	return &entity.HangoutWithDetails{
		Hangout:      hangout,
		Participants: participants,
		Expenses:     expenses,
	}, nil
}
