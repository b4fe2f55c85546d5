// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/kumpul/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for creating a savings goal.
type CreateGoalRequest struct {
	GoalName   string  `json:"goal_name" binding:"required,min=1,max=100"`
	GoalAmount float64 `json:"goal_amount" binding:"required,gt=0"`
	TargetDate *string `json:"target_date,omitempty"`
	Notes      string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateGoalRequest represents the request body for updating a savings goal.
type UpdateGoalRequest struct {
	GoalName   *string  `json:"goal_name,omitempty" binding:"omitempty,min=1,max=100"`
	GoalAmount *float64 `json:"goal_amount,omitempty"`
	TargetDate *string  `json:"target_date,omitempty"`
	Notes      *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// DepositRequest represents the request body for depositing into a goal.
type DepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// SavingsGoalResponse represents a savings goal in API responses.
type SavingsGoalResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	GoalName      string    `json:"goal_name"`
	GoalAmount    string    `json:"goal_amount"`
	CurrentAmount string    `json:"current_amount"`
	TargetDate    *string   `json:"target_date,omitempty"`
	Notes         string    `json:"notes"`
	IsCompleted   bool      `json:"is_completed"`
	Progress      float64   `json:"progress"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SavingsGoalListResponse represents the response for listing savings goals.
type SavingsGoalListResponse struct {
	Goals      []SavingsGoalResponse `json:"goals"`
	TotalSaved string                `json:"total_saved"`
}

// ToSavingsGoalResponse converts a SavingsGoal entity to a response DTO.
func ToSavingsGoalResponse(goal *entity.SavingsGoal) SavingsGoalResponse {
	response := SavingsGoalResponse{
		ID:            goal.ID.String(),
		UserID:        goal.UserID.String(),
		GoalName:      goal.GoalName,
		GoalAmount:    goal.GoalAmount.String(),
		CurrentAmount: goal.CurrentAmount.String(),
		Notes:         goal.Notes,
		IsCompleted:   goal.IsCompleted,
		Progress:      goal.Progress(),
		CreatedAt:     goal.CreatedAt,
		UpdatedAt:     goal.UpdatedAt,
	}
	if goal.TargetDate != nil {
		targetDate := goal.TargetDate.Format("2006-01-02")
		response.TargetDate = &targetDate
	}
	return response
}

// ToSavingsGoalResponses converts a slice of savings goals.
func ToSavingsGoalResponses(goals []*entity.SavingsGoal) []SavingsGoalResponse {
	responses := make([]SavingsGoalResponse, len(goals))
	for i, goal := range goals {
		responses[i] = ToSavingsGoalResponse(goal)
	}
	return responses
}
