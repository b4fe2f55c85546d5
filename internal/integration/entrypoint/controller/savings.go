// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/usecase/savings"
	domainerror "github.com/kumpul/backend/internal/domain/error"
	"github.com/kumpul/backend/internal/integration/entrypoint/dto"
	"github.com/kumpul/backend/internal/integration/entrypoint/middleware"
)

// SavingsController handles savings goal endpoints.
type SavingsController struct {
	createUseCase  *savings.CreateGoalUseCase
	listUseCase    *savings.ListGoalsUseCase
	updateUseCase  *savings.UpdateGoalUseCase
	deleteUseCase  *savings.DeleteGoalUseCase
	depositUseCase *savings.DepositUseCase
}

// NewSavingsController creates a new savings controller instance.
func NewSavingsController(
	createUseCase *savings.CreateGoalUseCase,
	listUseCase *savings.ListGoalsUseCase,
	updateUseCase *savings.UpdateGoalUseCase,
	deleteUseCase *savings.DeleteGoalUseCase,
	depositUseCase *savings.DepositUseCase,
) *SavingsController {
	return &SavingsController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		depositUseCase: depositUseCase,
	}
}

// Create handles POST /savings requests.
func (c *SavingsController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSavingsFields),
		})
		return
	}

	input := savings.CreateGoalInput{
		UserID:     userID,
		GoalName:   req.GoalName,
		GoalAmount: decimal.NewFromFloat(req.GoalAmount),
		Notes:      req.Notes,
	}
	if req.TargetDate != nil {
		targetDate, ok := parseOptionalDate(ctx, *req.TargetDate)
		if !ok {
			return
		}
		if !targetDate.IsZero() {
			input.TargetDate = &targetDate
		}
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSavingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSavingsGoalResponse(output.Goal))
}

// List handles GET /savings requests.
func (c *SavingsController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), savings.ListGoalsInput{UserID: userID})
	if err != nil {
		handleSavingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SavingsGoalListResponse{
		Goals:      dto.ToSavingsGoalResponses(output.Goals),
		TotalSaved: output.TotalSaved.String(),
	})
}

// Update handles PUT /savings/:id requests.
func (c *SavingsController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeSavingsGoalNotFound),
		})
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSavingsFields),
		})
		return
	}

	input := savings.UpdateGoalInput{
		GoalID:   goalID,
		UserID:   userID,
		GoalName: req.GoalName,
		Notes:    req.Notes,
	}
	if req.GoalAmount != nil {
		amount := decimal.NewFromFloat(*req.GoalAmount)
		input.GoalAmount = &amount
	}
	if req.TargetDate != nil {
		targetDate, ok := parseOptionalDate(ctx, *req.TargetDate)
		if !ok {
			return
		}
		input.TargetDate = &targetDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleSavingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalResponse(output.Goal))
}

// Delete handles DELETE /savings/:id requests.
func (c *SavingsController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeSavingsGoalNotFound),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), savings.DeleteGoalInput{
		GoalID: goalID,
		UserID: userID,
	})
	if err != nil {
		handleSavingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// Deposit handles POST /savings/:id/deposit requests.
func (c *SavingsController) Deposit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID",
			Code:  string(domainerror.ErrCodeSavingsGoalNotFound),
		})
		return
	}

	var req dto.DepositRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidDepositAmount),
		})
		return
	}

	output, err := c.depositUseCase.Execute(ctx.Request.Context(), savings.DepositInput{
		GoalID: goalID,
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		handleSavingsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsGoalResponse(output.Goal))
}

// handleSavingsError maps savings errors to HTTP responses.
func handleSavingsError(ctx *gin.Context, err error) {
	var savErr *domainerror.SavingsError
	if errors.As(err, &savErr) {
		ctx.JSON(statusCodeForSavingsError(savErr.Code), dto.ErrorResponse{
			Error: savErr.Message,
			Code:  string(savErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForSavingsError maps savings error codes to HTTP status codes.
func statusCodeForSavingsError(code domainerror.SavingsErrorCode) int {
	switch code {
	case domainerror.ErrCodeSavingsGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalNameRequired,
		domainerror.ErrCodeInvalidGoalAmount,
		domainerror.ErrCodeInvalidDepositAmount,
		domainerror.ErrCodeMissingSavingsFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
