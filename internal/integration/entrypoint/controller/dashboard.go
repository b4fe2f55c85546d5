// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kumpul/backend/internal/application/usecase/dashboard"
	"github.com/kumpul/backend/internal/application/usecase/transaction"
	"github.com/kumpul/backend/internal/integration/entrypoint/dto"
	"github.com/kumpul/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the home overview endpoint.
type DashboardController struct {
	overviewUseCase *dashboard.GetOverviewUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(overviewUseCase *dashboard.GetOverviewUseCase) *DashboardController {
	return &DashboardController{
		overviewUseCase: overviewUseCase,
	}
}

// Overview handles GET /dashboard requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		UserID: userID,
		Period: transaction.Period(ctx.Query("period")),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardResponse{
		Balance:            output.Balance.String(),
		IncomeTotal:        output.IncomeTotal.String(),
		ExpenseTotal:       output.ExpenseTotal.String(),
		RecentTransactions: dto.ToTransactionResponses(output.RecentTransactions),
		TotalSaved:         output.TotalSaved.String(),
		SavingsGoals:       dto.ToSavingsGoalResponses(output.SavingsGoals),
		ActiveHangouts:     dto.ToHangoutListItemResponses(output.ActiveHangouts),
	})
}
