// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kumpul/backend/internal/domain/entity"
	"github.com/kumpul/backend/internal/domain/split"
)

// CreateHangoutRequest represents the request body for creating a hangout.
type CreateHangoutRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=100"`
	Description     string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Location        string `json:"location,omitempty" binding:"omitempty,max=255"`
	Date            string `json:"date,omitempty"`
	SplitMethod     string `json:"split_method" binding:"required,oneof=equal percentage manual treat"`
	MaxParticipants *int   `json:"max_participants,omitempty" binding:"omitempty,gt=0"`
}

// UpdateHangoutRequest represents the request body for updating a hangout.
type UpdateHangoutRequest struct {
	Title           *string `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	Description     *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Location        *string `json:"location,omitempty" binding:"omitempty,max=255"`
	Date            *string `json:"date,omitempty"`
	SplitMethod     *string `json:"split_method,omitempty" binding:"omitempty,oneof=equal percentage manual treat"`
	MaxParticipants *int    `json:"max_participants,omitempty" binding:"omitempty,gt=0"`
}

// JoinHangoutRequest represents the request body for joining by code.
type JoinHangoutRequest struct {
	JoinCode    string `json:"join_code" binding:"required"`
	DisplayName string `json:"display_name,omitempty" binding:"omitempty,max=100"`
}

// ConfirmParticipationRequest represents the request body for confirming attendance.
type ConfirmParticipationRequest struct {
	SharePercentage *float64 `json:"share_percentage,omitempty"`
	FixedAmount     *float64 `json:"fixed_amount,omitempty"`
}

// MarkPaidRequest represents the request body for toggling a paid flag.
type MarkPaidRequest struct {
	UserID  string `json:"user_id" binding:"required,uuid"`
	HasPaid *bool  `json:"has_paid" binding:"required"`
}

// InviteMemberRequest represents the request body for inviting someone by email.
type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name,omitempty" binding:"omitempty,max=100"`
}

// AddHangoutExpenseRequest represents the request body for recording an expense.
type AddHangoutExpenseRequest struct {
	Description string   `json:"description" binding:"required,min=1,max=255"`
	Amount      float64  `json:"amount" binding:"required,gt=0"`
	Category    string   `json:"category,omitempty"`
	Date        string   `json:"date,omitempty"`
	SplitAmong  []string `json:"split_among,omitempty"`
}

// UpdateHangoutExpenseRequest represents the request body for editing an expense.
type UpdateHangoutExpenseRequest struct {
	Description *string   `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *float64  `json:"amount,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Date        *string   `json:"date,omitempty"`
	SplitAmong  *[]string `json:"split_among,omitempty"`
}

// HangoutResponse represents a hangout in API responses.
type HangoutResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Date            string    `json:"date"`
	SplitMethod     string    `json:"split_method"`
	IsActive        bool      `json:"is_active"`
	IsSettled       bool      `json:"is_settled"`
	JoinCode        string    `json:"join_code"`
	MaxParticipants *int      `json:"max_participants,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HangoutParticipantResponse represents a participant in API responses.
type HangoutParticipantResponse struct {
	ID              string   `json:"id"`
	HangoutID       string   `json:"hangout_id"`
	UserID          string   `json:"user_id"`
	DisplayName     string   `json:"display_name"`
	SharePercentage *float64 `json:"share_percentage,omitempty"`
	FixedAmount     *string  `json:"fixed_amount,omitempty"`
	HasConfirmed    bool     `json:"has_confirmed"`
	HasPaid         bool     `json:"has_paid"`
	JoinedAt        time.Time `json:"joined_at"`
}

// HangoutExpenseResponse represents a hangout expense in API responses.
type HangoutExpenseResponse struct {
	ID          string    `json:"id"`
	HangoutID   string    `json:"hangout_id"`
	PaidByID    string    `json:"paid_by_id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	SplitAmong  []string  `json:"split_among"`
	CreatedAt   time.Time `json:"created_at"`
}

// ParticipantBalanceResponse represents one participant's derived position.
type ParticipantBalanceResponse struct {
	UserID string `json:"user_id"`
	Owed   string `json:"owed"`
	Paid   string `json:"paid"`
	Net    string `json:"net"`
}

// HangoutSummaryResponse represents the derived settlement view.
type HangoutSummaryResponse struct {
	Total            string                       `json:"total"`
	PerPerson        string                       `json:"per_person"`
	ParticipantCount int                          `json:"participant_count"`
	ExpenseCount     int                          `json:"expense_count"`
	Balances         []ParticipantBalanceResponse `json:"balances"`
}

// HangoutDetailResponse represents the full hangout view.
type HangoutDetailResponse struct {
	Hangout      HangoutResponse              `json:"hangout"`
	Participants []HangoutParticipantResponse `json:"participants"`
	Expenses     []HangoutExpenseResponse     `json:"expenses"`
	Summary      HangoutSummaryResponse       `json:"summary"`
}

// HangoutListItemResponse represents a hangout in list views.
type HangoutListItemResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	Location         string `json:"location"`
	SplitMethod      string `json:"split_method"`
	IsActive         bool   `json:"is_active"`
	IsSettled        bool   `json:"is_settled"`
	JoinCode         string `json:"join_code"`
	OwnerID          string `json:"owner_id"`
	ParticipantCount int    `json:"participant_count"`
	ExpenseCount     int    `json:"expense_count"`
	Total            string `json:"total"`
}

// HangoutListResponse buckets the user's hangouts for the home screen.
type HangoutListResponse struct {
	Owned   []HangoutListItemResponse `json:"owned"`
	Joined  []HangoutListItemResponse `json:"joined"`
	Active  []HangoutListItemResponse `json:"active"`
	Settled []HangoutListItemResponse `json:"settled"`
}

// JoinHangoutResponse represents the response for a successful join.
type JoinHangoutResponse struct {
	Hangout     HangoutResponse            `json:"hangout"`
	Participant HangoutParticipantResponse `json:"participant"`
}

// SettleHangoutResponse represents the response for settling a hangout.
type SettleHangoutResponse struct {
	Hangout HangoutResponse        `json:"hangout"`
	Summary HangoutSummaryResponse `json:"summary"`
}

// ToHangoutResponse converts a Hangout entity to a response DTO.
func ToHangoutResponse(h *entity.Hangout) HangoutResponse {
	return HangoutResponse{
		ID:              h.ID.String(),
		OwnerID:         h.OwnerID.String(),
		Title:           h.Title,
		Description:     h.Description,
		Location:        h.Location,
		Date:            h.Date.Format("2006-01-02"),
		SplitMethod:     string(h.SplitMethod),
		IsActive:        h.IsActive,
		IsSettled:       h.IsSettled,
		JoinCode:        h.JoinCode,
		MaxParticipants: h.MaxParticipants,
		CreatedAt:       h.CreatedAt,
		UpdatedAt:       h.UpdatedAt,
	}
}

// ToHangoutParticipantResponse converts a participant entity to a response DTO.
func ToHangoutParticipantResponse(p *entity.HangoutParticipant) HangoutParticipantResponse {
	response := HangoutParticipantResponse{
		ID:              p.ID.String(),
		HangoutID:       p.HangoutID.String(),
		UserID:          p.UserID.String(),
		DisplayName:     p.DisplayName,
		SharePercentage: p.SharePercentage,
		HasConfirmed:    p.HasConfirmed,
		HasPaid:         p.HasPaid,
		JoinedAt:        p.JoinedAt,
	}
	if p.FixedAmount != nil {
		fixed := p.FixedAmount.String()
		response.FixedAmount = &fixed
	}
	return response
}

// ToHangoutExpenseResponse converts a hangout expense entity to a response DTO.
func ToHangoutExpenseResponse(e *entity.HangoutExpense) HangoutExpenseResponse {
	splitAmong := make([]string, len(e.SplitAmong))
	for i, id := range e.SplitAmong {
		splitAmong[i] = id.String()
	}
	return HangoutExpenseResponse{
		ID:          e.ID.String(),
		HangoutID:   e.HangoutID.String(),
		PaidByID:    e.PaidByID.String(),
		Description: e.Description,
		Amount:      e.Amount.String(),
		Category:    string(e.Category),
		Date:        e.Date.Format("2006-01-02"),
		SplitAmong:  splitAmong,
		CreatedAt:   e.CreatedAt,
	}
}

// ToHangoutSummaryResponse converts the derived split summary to a response DTO.
// Balances are keyed by user ID in the engine; the response flattens them to
// a list ordered by the participant user IDs present in the summary.
func ToHangoutSummaryResponse(s split.Summary) HangoutSummaryResponse {
	balances := make([]ParticipantBalanceResponse, 0, len(s.Balances))
	for userID, b := range s.Balances {
		balances = append(balances, ParticipantBalanceResponse{
			UserID: userID.String(),
			Owed:   b.Owed.String(),
			Paid:   b.Paid.String(),
			Net:    b.Net.String(),
		})
	}
	return HangoutSummaryResponse{
		Total:            s.Total.String(),
		PerPerson:        s.PerPerson.String(),
		ParticipantCount: s.ParticipantCount,
		ExpenseCount:     s.ExpenseCount,
		Balances:         balances,
	}
}

// ToHangoutListItemResponse converts a list item entity to a response DTO.
func ToHangoutListItemResponse(item *entity.HangoutListItem) HangoutListItemResponse {
	return HangoutListItemResponse{
		ID:               item.ID.String(),
		Title:            item.Title,
		Date:             item.Date.Format("2006-01-02"),
		Location:         item.Location,
		SplitMethod:      string(item.SplitMethod),
		IsActive:         item.IsActive,
		IsSettled:        item.IsSettled,
		JoinCode:         item.JoinCode,
		OwnerID:          item.OwnerID.String(),
		ParticipantCount: item.ParticipantCount,
		ExpenseCount:     item.ExpenseCount,
		Total:            item.Total.String(),
	}
}

// ToHangoutListItemResponses converts a slice of list items.
func ToHangoutListItemResponses(items []*entity.HangoutListItem) []HangoutListItemResponse {
	responses := make([]HangoutListItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToHangoutListItemResponse(item)
	}
	return responses
}

// ParseUUIDs parses a list of UUID strings, skipping malformed entries.
func ParseUUIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		if id, err := uuid.Parse(v); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
