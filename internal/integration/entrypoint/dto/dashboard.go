// Package dto defines data transfer objects for API requests and responses.
package dto

// DashboardResponse represents the home overview.
type DashboardResponse struct {
	Balance            string                    `json:"balance"`
	IncomeTotal        string                    `json:"income_total"`
	ExpenseTotal       string                    `json:"expense_total"`
	RecentTransactions []TransactionResponse     `json:"recent_transactions"`
	TotalSaved         string                    `json:"total_saved"`
	SavingsGoals       []SavingsGoalResponse     `json:"savings_goals"`
	ActiveHangouts     []HangoutListItemResponse `json:"active_hangouts"`
}
