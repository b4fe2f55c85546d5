// Package model defines database models for persistence layer.
package model

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/domain/entity"
)

// HangoutModel represents the hangouts table in the database.
type HangoutModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(100);not null"`
	Description     string    `gorm:"type:text"`
	Location        string    `gorm:"type:varchar(255)"`
	Date            time.Time `gorm:"type:date;not null"`
	SplitMethod     string    `gorm:"type:varchar(20);not null;default:'equal'"`
	IsActive        bool      `gorm:"default:true;index"`
	IsSettled       bool      `gorm:"default:false"`
	JoinCode        string    `gorm:"type:varchar(6);not null;index"`
	MaxParticipants *int      `gorm:"type:integer"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

// TableName returns the table name for the HangoutModel.
func (HangoutModel) TableName() string {
	return "hangouts"
}

// ToEntity converts a HangoutModel to a domain Hangout entity.
func (m *HangoutModel) ToEntity() *entity.Hangout {
	return &entity.Hangout{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Title:           m.Title,
		Description:     m.Description,
		Location:        m.Location,
		Date:            m.Date,
		SplitMethod:     entity.SplitMethod(m.SplitMethod),
		IsActive:        m.IsActive,
		IsSettled:       m.IsSettled,
		JoinCode:        m.JoinCode,
		MaxParticipants: m.MaxParticipants,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// HangoutFromEntity creates a HangoutModel from a domain Hangout entity.
func HangoutFromEntity(h *entity.Hangout) *HangoutModel {
	return &HangoutModel{
		ID:              h.ID,
		OwnerID:         h.OwnerID,
		Title:           h.Title,
		Description:     h.Description,
		Location:        h.Location,
		Date:            h.Date,
		SplitMethod:     string(h.SplitMethod),
		IsActive:        h.IsActive,
		IsSettled:       h.IsSettled,
		JoinCode:        h.JoinCode,
		MaxParticipants: h.MaxParticipants,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}

// HangoutParticipantModel represents the hangout_participants table.
type HangoutParticipantModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	HangoutID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	DisplayName     string           `gorm:"type:varchar(100);not null"`
	SharePercentage *float64         `gorm:"type:decimal(5,2)"`
	FixedAmount     *decimal.Decimal `gorm:"type:decimal(15,2)"`
	HasConfirmed    bool             `gorm:"default:false"`
	HasPaid         bool             `gorm:"default:false"`
	JoinedAt        time.Time        `gorm:"not null"`
	CreatedAt       time.Time        `gorm:"not null"`
}

// TableName returns the table name for the HangoutParticipantModel.
func (HangoutParticipantModel) TableName() string {
	return "hangout_participants"
}

// ToEntity converts a HangoutParticipantModel to a domain HangoutParticipant entity.
func (m *HangoutParticipantModel) ToEntity() *entity.HangoutParticipant {
	return &entity.HangoutParticipant{
		ID:              m.ID,
		HangoutID:       m.HangoutID,
		UserID:          m.UserID,
		DisplayName:     m.DisplayName,
		SharePercentage: m.SharePercentage,
		FixedAmount:     m.FixedAmount,
		HasConfirmed:    m.HasConfirmed,
		HasPaid:         m.HasPaid,
		JoinedAt:        m.JoinedAt,
		CreatedAt:       m.CreatedAt,
	}
}

// HangoutParticipantFromEntity creates a HangoutParticipantModel from a domain entity.
func HangoutParticipantFromEntity(p *entity.HangoutParticipant) *HangoutParticipantModel {
	return &HangoutParticipantModel{
		ID:              p.ID,
		HangoutID:       p.HangoutID,
		UserID:          p.UserID,
		DisplayName:     p.DisplayName,
		SharePercentage: p.SharePercentage,
		FixedAmount:     p.FixedAmount,
		HasConfirmed:    p.HasConfirmed,
		HasPaid:         p.HasPaid,
		JoinedAt:        p.JoinedAt,
		CreatedAt:       p.CreatedAt,
	}
}

// HangoutExpenseModel represents the hangout_expenses table. SplitAmong is
// stored as a Postgres text array of user IDs.
type HangoutExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HangoutID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaidByID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(20)"`
	Date        time.Time       `gorm:"type:date;not null"`
	SplitAmong  pq.StringArray  `gorm:"type:text[]"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the HangoutExpenseModel.
func (HangoutExpenseModel) TableName() string {
	return "hangout_expenses"
}

// ToEntity converts a HangoutExpenseModel to a domain HangoutExpense entity.
func (m *HangoutExpenseModel) ToEntity() *entity.HangoutExpense {
	splitAmong := make([]uuid.UUID, 0, len(m.SplitAmong))
	for _, raw := range m.SplitAmong {
		id, err := uuid.Parse(raw)
		if err != nil {
			slog.Warn("skipping malformed split_among entry", "expense_id", m.ID, "value", raw)
			continue
		}
		splitAmong = append(splitAmong, id)
	}

	return &entity.HangoutExpense{
		ID:          m.ID,
		HangoutID:   m.HangoutID,
		PaidByID:    m.PaidByID,
		Description: m.Description,
		Amount:      m.Amount,
		Category:    entity.ExpenseCategory(m.Category),
		Date:        m.Date,
		SplitAmong:  splitAmong,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// HangoutExpenseFromEntity creates a HangoutExpenseModel from a domain entity.
func HangoutExpenseFromEntity(e *entity.HangoutExpense) *HangoutExpenseModel {
	splitAmong := make(pq.StringArray, 0, len(e.SplitAmong))
	for _, id := range e.SplitAmong {
		splitAmong = append(splitAmong, id.String())
	}

	return &HangoutExpenseModel{
		ID:          e.ID,
		HangoutID:   e.HangoutID,
		PaidByID:    e.PaidByID,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    string(e.Category),
		Date:        e.Date,
		SplitAmong:  splitAmong,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
