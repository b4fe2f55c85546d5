// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kumpul/backend/internal/application/adapter"
	"github.com/kumpul/backend/internal/domain/entity"
	"github.com/kumpul/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(txModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a transaction by its ID. Returns nil without error when
// the transaction does not exist.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&txModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return txModel.ToEntity(), nil
}

// applyFilter builds the WHERE clause shared by listing and aggregation.
func applyFilter(query *gorm.DB, filter adapter.TransactionFilter) *gorm.DB {
	query = query.Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date < ?", *filter.EndDate)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("notes ILIKE ? OR source ILIKE ?", pattern, pattern)
	}

	return query
}

// FindByFilter retrieves transactions based on filter criteria with pagination.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	query := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.Limit < 1 {
		pagination.Limit = 20
	}
	offset := (pagination.Page - 1) * pagination.Limit

	var models []model.TransactionModel
	err := query.
		Order("date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(models))
	for i, m := range models {
		transactions[i] = m.ToEntity()
	}

	return &adapter.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   int(math.Ceil(float64(total) / float64(pagination.Limit))),
	}, nil
}

// GetTotals calculates income and expense totals based on filter criteria.
func (r *transactionRepository) GetTotals(ctx context.Context, filter adapter.TransactionFilter) (*entity.TransactionTotals, error) {
	type row struct {
		Type  string
		Total decimal.Decimal
	}
	var rows []row

	err := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := &entity.TransactionTotals{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	for _, rw := range rows {
		switch entity.TransactionType(rw.Type) {
		case entity.TransactionTypeIncome:
			totals.IncomeTotal = rw.Total
		case entity.TransactionTypeExpense:
			totals.ExpenseTotal = rw.Total
		}
	}
	totals.Balance = totals.IncomeTotal.Sub(totals.ExpenseTotal)

	return totals, nil
}

// GetCategoryBreakdown aggregates expense totals per category for the filter.
// Percentages are filled in by the use case once the grand total is known.
func (r *transactionRepository) GetCategoryBreakdown(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.CategoryBreakdown, error) {
	type row struct {
		Category string
		Total    decimal.Decimal
		Count    int
	}
	var rows []row

	err := applyFilter(r.db.WithContext(ctx).Model(&model.TransactionModel{}), filter).
		Where("type = ?", string(entity.TransactionTypeExpense)).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make([]*entity.CategoryBreakdown, len(rows))
	for i, rw := range rows {
		breakdown[i] = &entity.CategoryBreakdown{
			Category: entity.ExpenseCategory(rw.Category),
			Total:    rw.Total,
			Count:    rw.Count,
		}
	}

	return breakdown, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	txModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Save(txModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
