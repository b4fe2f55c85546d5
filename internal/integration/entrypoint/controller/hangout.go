// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kumpul/backend/internal/application/usecase/hangout"
	"github.com/kumpul/backend/internal/domain/entity"
	domainerror "github.com/kumpul/backend/internal/domain/error"
	"github.com/kumpul/backend/internal/integration/entrypoint/dto"
	"github.com/kumpul/backend/internal/integration/entrypoint/middleware"
)

// HangoutController handles shared-expense hangout endpoints.
type HangoutController struct {
	createUseCase        *hangout.CreateHangoutUseCase
	joinUseCase          *hangout.JoinHangoutUseCase
	getUseCase           *hangout.GetHangoutUseCase
	listUseCase          *hangout.ListHangoutsUseCase
	updateUseCase        *hangout.UpdateHangoutUseCase
	deleteUseCase        *hangout.DeleteHangoutUseCase
	settleUseCase        *hangout.SettleHangoutUseCase
	confirmUseCase       *hangout.ConfirmParticipationUseCase
	markPaidUseCase      *hangout.MarkPaidUseCase
	addExpenseUseCase    *hangout.AddExpenseUseCase
	updateExpenseUseCase *hangout.UpdateExpenseUseCase
	deleteExpenseUseCase *hangout.DeleteExpenseUseCase
	inviteUseCase        *hangout.InviteMemberUseCase
}

// NewHangoutController creates a new hangout controller instance.
func NewHangoutController(
	createUseCase *hangout.CreateHangoutUseCase,
	joinUseCase *hangout.JoinHangoutUseCase,
	getUseCase *hangout.GetHangoutUseCase,
	listUseCase *hangout.ListHangoutsUseCase,
	updateUseCase *hangout.UpdateHangoutUseCase,
	deleteUseCase *hangout.DeleteHangoutUseCase,
	settleUseCase *hangout.SettleHangoutUseCase,
	confirmUseCase *hangout.ConfirmParticipationUseCase,
	markPaidUseCase *hangout.MarkPaidUseCase,
	addExpenseUseCase *hangout.AddExpenseUseCase,
	updateExpenseUseCase *hangout.UpdateExpenseUseCase,
	deleteExpenseUseCase *hangout.DeleteExpenseUseCase,
	inviteUseCase *hangout.InviteMemberUseCase,
) *HangoutController {
	return &HangoutController{
		createUseCase:        createUseCase,
		joinUseCase:          joinUseCase,
		getUseCase:           getUseCase,
		listUseCase:          listUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		settleUseCase:        settleUseCase,
		confirmUseCase:       confirmUseCase,
		markPaidUseCase:      markPaidUseCase,
		addExpenseUseCase:    addExpenseUseCase,
		updateExpenseUseCase: updateExpenseUseCase,
		deleteExpenseUseCase: deleteExpenseUseCase,
		inviteUseCase:        inviteUseCase,
	}
}

// Create handles POST /hangouts requests.
func (c *HangoutController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateHangoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHangoutFields),
		})
		return
	}

	date, ok := parseOptionalDate(ctx, req.Date)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), hangout.CreateHangoutInput{
		OwnerID:         userID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Date:            date,
		SplitMethod:     entity.SplitMethod(req.SplitMethod),
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.JoinHangoutResponse{
		Hangout:     dto.ToHangoutResponse(output.Hangout),
		Participant: dto.ToHangoutParticipantResponse(output.Participant),
	})
}

// Join handles POST /hangouts/join requests.
func (c *HangoutController) Join(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.JoinHangoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidJoinCode),
		})
		return
	}

	output, err := c.joinUseCase.Execute(ctx.Request.Context(), hangout.JoinHangoutInput{
		UserID:      userID,
		JoinCode:    req.JoinCode,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JoinHangoutResponse{
		Hangout:     dto.ToHangoutResponse(output.Hangout),
		Participant: dto.ToHangoutParticipantResponse(output.Participant),
	})
}

// Get handles GET /hangouts/:id requests.
func (c *HangoutController) Get(ctx *gin.Context) {
	userID, hangoutID, ok := c.callerAndHangout(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), hangout.GetHangoutInput{
		HangoutID: hangoutID,
		UserID:    userID,
	})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	participants := make([]dto.HangoutParticipantResponse, len(output.Participants))
	for i, p := range output.Participants {
		participants[i] = dto.ToHangoutParticipantResponse(p)
	}
	expenses := make([]dto.HangoutExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = dto.ToHangoutExpenseResponse(e)
	}

	ctx.JSON(http.StatusOK, dto.HangoutDetailResponse{
		Hangout:      dto.ToHangoutResponse(output.Hangout),
		Participants: participants,
		Expenses:     expenses,
		Summary:      dto.ToHangoutSummaryResponse(output.Summary),
	})
}

// List handles GET /hangouts requests.
func (c *HangoutController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), hangout.ListHangoutsInput{UserID: userID})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.HangoutListResponse{
		Owned:   dto.ToHangoutListItemResponses(output.Owned),
		Joined:  dto.ToHangoutListItemResponses(output.Joined),
		Active:  dto.ToHangoutListItemResponses(output.Active),
		Settled: dto.ToHangoutListItemResponses(output.Settled),
	})
}

// Update handles PUT /hangouts/:id requests.
func (c *HangoutController) Update(ctx *gin.Context) {
	userID, hangoutID, ok := c.callerAndHangout(ctx)
	if !ok {
		return
	}

	var req dto.UpdateHangoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHangoutFields),
		})
		return
	}

	input := hangout.UpdateHangoutInput{
		HangoutID:       hangoutID,
		UserID:          userID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
	}
	if req.SplitMethod != nil {
		method := entity.SplitMethod(*req.SplitMethod)
		input.SplitMethod = &method
	}
	if req.Date != nil {
		date, ok := parseOptionalDate(ctx, *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHangoutResponse(output.Hangout))
}

// Delete handles DELETE /hangouts/:id requests.
func (c *HangoutController) Delete(ctx *gin.Context) {
	userID, hangoutID, ok := c.callerAndHangout(ctx)
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), hangout.DeleteHangoutInput{
		HangoutID: hangoutID,
		UserID:    userID,
	})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// Settle handles POST /hangouts/:id/settle requests.
func (c *HangoutController) Settle(ctx *gin.Context) {
	userID, hangoutID, ok := c.callerAndHangout(ctx)
	if !ok {
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), hangout.SettleHangoutInput{
		HangoutID: hangoutID,
		UserID:    userID,
	})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SettleHangoutResponse{
		Hangout: dto.ToHangoutResponse(output.Hangout),
		Summary: dto.ToHangoutSummaryResponse(output.Summary),
	})
}

// Confirm handles POST /hangouts/:id/confirm requests.
func (c *HangoutController) Confirm(ctx *gin.Context) {
	userID, hangoutID, ok := c.callerAndHangout(ctx)
	if !ok {
		return
	}

	var req dto.ConfirmParticipationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHangoutFields),
		})
		return
	}

	input := hangout.ConfirmParticipationInput{
		HangoutID:       hangoutID,
		UserID:          userID,
		SharePercentage: req.SharePercentage,
	}
	if req.FixedAmount != nil {
		fixed := decimal.NewFromFloat(*req.FixedAmount)
		input.FixedAmount = &fixed
	}

	output, err := c.confirmUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHangoutParticipantResponse(output.Participant))
}

// MarkPaid handles POST /hangouts/:id/mark-paid requests.
func (c *HangoutController) MarkPaid(ctx *gin.Context) {
	userID, hangoutID, ok := c.callerAndHangout(ctx)
	if !ok {
		return
	}

	var req dto.MarkPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHangoutFields),
		})
		return
	}

	targetID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID",
			Code:  string(domainerror.ErrCodeParticipantNotFound),
		})
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), hangout.MarkPaidInput{
		HangoutID: hangoutID,
		UserID:    userID,
		TargetID:  targetID,
		HasPaid:   *req.HasPaid,
	})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHangoutParticipantResponse(output.Participant))
}

// Invite handles POST /hangouts/:id/invite requests.
func (c *HangoutController) Invite(ctx *gin.Context) {
	userID, hangoutID, ok := c.callerAndHangout(ctx)
	if !ok {
		return
	}

	var req dto.InviteMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHangoutFields),
		})
		return
	}

	output, err := c.inviteUseCase.Execute(ctx.Request.Context(), hangout.InviteMemberInput{
		HangoutID:   hangoutID,
		UserID:      userID,
		InviteEmail: req.Email,
		InviteName:  req.Name,
	})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// AddExpense handles POST /hangouts/:id/expenses requests.
func (c *HangoutController) AddExpense(ctx *gin.Context) {
	userID, hangoutID, ok := c.callerAndHangout(ctx)
	if !ok {
		return
	}

	var req dto.AddHangoutExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHangoutFields),
		})
		return
	}

	date, ok := parseOptionalDate(ctx, req.Date)
	if !ok {
		return
	}

	output, err := c.addExpenseUseCase.Execute(ctx.Request.Context(), hangout.AddExpenseInput{
		HangoutID:   hangoutID,
		UserID:      userID,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    entity.ExpenseCategory(req.Category),
		Date:        date,
		SplitAmong:  dto.ParseUUIDs(req.SplitAmong),
	})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHangoutExpenseResponse(output.Expense))
}

// UpdateExpense handles PUT /hangouts/:id/expenses/:expenseId requests.
func (c *HangoutController) UpdateExpense(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("expenseId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeHangoutExpenseNotFound),
		})
		return
	}

	var req dto.UpdateHangoutExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingHangoutFields),
		})
		return
	}

	input := hangout.UpdateExpenseInput{
		ExpenseID:   expenseID,
		UserID:      userID,
		Description: req.Description,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Category != nil {
		category := entity.ExpenseCategory(*req.Category)
		input.Category = &category
	}
	if req.Date != nil {
		date, ok := parseOptionalDate(ctx, *req.Date)
		if !ok {
			return
		}
		input.Date = &date
	}
	if req.SplitAmong != nil {
		ids := dto.ParseUUIDs(*req.SplitAmong)
		input.SplitAmong = &ids
	}

	output, err := c.updateExpenseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHangoutExpenseResponse(output.Expense))
}

// DeleteExpense handles DELETE /hangouts/:id/expenses/:expenseId requests.
func (c *HangoutController) DeleteExpense(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("expenseId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID",
			Code:  string(domainerror.ErrCodeHangoutExpenseNotFound),
		})
		return
	}

	output, err := c.deleteExpenseUseCase.Execute(ctx.Request.Context(), hangout.DeleteExpenseInput{
		ExpenseID: expenseID,
		UserID:    userID,
	})
	if err != nil {
		handleHangoutError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// callerAndHangout extracts the authenticated user and the :id path param.
func (c *HangoutController) callerAndHangout(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return uuid.Nil, uuid.Nil, false
	}

	hangoutID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid hangout ID",
			Code:  string(domainerror.ErrCodeHangoutNotFound),
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, hangoutID, true
}

// handleHangoutError maps hangout errors to HTTP responses.
func handleHangoutError(ctx *gin.Context, err error) {
	var hngErr *domainerror.HangoutError
	if errors.As(err, &hngErr) {
		ctx.JSON(statusCodeForHangoutError(hngErr.Code), dto.ErrorResponse{
			Error: hngErr.Message,
			Code:  string(hngErr.Code),
		})
		return
	}

	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error: emailErr.Message,
			Code:  string(emailErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForHangoutError maps hangout error codes to HTTP status codes.
func statusCodeForHangoutError(code domainerror.HangoutErrorCode) int {
	switch code {
	case domainerror.ErrCodeHangoutNotFound,
		domainerror.ErrCodeParticipantNotFound,
		domainerror.ErrCodeHangoutExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeHangoutTitleRequired,
		domainerror.ErrCodeInvalidSplitMethod,
		domainerror.ErrCodeMissingHangoutFields,
		domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidJoinCode:
		return http.StatusBadRequest
	case domainerror.ErrCodeAlreadyParticipant,
		domainerror.ErrCodeHangoutFull,
		domainerror.ErrCodeHangoutSettled:
		return http.StatusConflict
	case domainerror.ErrCodeNotHangoutOwner,
		domainerror.ErrCodeNotHangoutParticipant,
		domainerror.ErrCodeNotExpensePayer:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
