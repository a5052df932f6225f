// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints. All operations run against
// the expense book of the authenticated user's ledger.
type ExpenseController struct {
	listUseCase      *ledger.ListEntriesUseCase
	listMonthUseCase *ledger.ListMonthEntriesUseCase
	getUseCase       *ledger.GetEntryUseCase
	createUseCase    *ledger.CreateEntryUseCase
	updateUseCase    *ledger.UpdateEntryUseCase
	deleteUseCase    *ledger.DeleteEntryUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *ledger.ListEntriesUseCase,
	listMonthUseCase *ledger.ListMonthEntriesUseCase,
	getUseCase *ledger.GetEntryUseCase,
	createUseCase *ledger.CreateEntryUseCase,
	updateUseCase *ledger.UpdateEntryUseCase,
	deleteUseCase *ledger.DeleteEntryUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:      listUseCase,
		listMonthUseCase: listMonthUseCase,
		getUseCase:       getUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// List handles GET /expenses requests. Entries come back across all month
// buckets, newest first.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entries, err := c.listUseCase.Execute(ctx.Request.Context(), ledger.ListEntriesInput{
		UserID: userID,
		Kind:   entity.EntryKindExpense,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(entries))
}

// ListMonth handles GET /expenses/:monthYear requests.
func (c *ExpenseController) ListMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entries, err := c.listMonthUseCase.Execute(ctx.Request.Context(), ledger.ListMonthEntriesInput{
		UserID:   userID,
		Kind:     entity.EntryKindExpense,
		MonthKey: ctx.Param("monthYear"),
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(entries))
}

// Get handles GET /expenses/:monthYear/:expenseId requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, ok := parseEntryID(ctx, "expenseId")
	if !ok {
		return
	}

	entry, err := c.getUseCase.Execute(ctx.Request.Context(), ledger.GetEntryInput{
		UserID:   userID,
		Kind:     entity.EntryKindExpense,
		MonthKey: ctx.Param("monthYear"),
		EntryID:  entryID,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(*entry))
}

// Create handles POST /expenses requests. The expense lands in the bucket
// derived from its date.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "nameExpense, valueExpense and dateExpense are required",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ledger.CreateEntryInput{
		UserID: userID,
		Kind:   entity.EntryKindExpense,
		Name:   req.NameExpense,
		Value:  decimal.NewFromFloat(*req.ValueExpense),
		Date:   req.DateExpense,
		Icon:   req.Icon,
		Color:  req.Color,
		Note:   req.Anotation,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateExpenseResponse{
		Expense:   dto.ToExpenseResponse(output.Entry),
		MonthYear: string(output.MonthKey),
	})
}

// Update handles PUT /expenses/:monthYear/:expenseId requests. When the
// patched date falls in another month the expense relocates; the response's
// monthYear tells the caller where it now lives.
func (c *ExpenseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, ok := parseEntryID(ctx, "expenseId")
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), ledger.UpdateEntryInput{
		UserID:   userID,
		Kind:     entity.EntryKindExpense,
		MonthKey: ctx.Param("monthYear"),
		EntryID:  entryID,
		Patch:    req.ToPatch(),
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateExpenseResponse{
		Expense:   dto.ToExpenseResponse(output.Entry),
		MonthYear: string(output.MonthKey),
		Moved:     output.Moved,
	})
}

// Delete handles DELETE /expenses/:monthYear/:expenseId requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, ok := parseEntryID(ctx, "expenseId")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteEntryInput{
		UserID:   userID,
		Kind:     entity.EntryKindExpense,
		MonthKey: ctx.Param("monthYear"),
		EntryID:  entryID,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted successfully"})
}

// parseEntryID reads an entry id path parameter. A malformed id can never
// address an entry, so it reports not-found like any unknown id.
func parseEntryID(ctx *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "entry not found",
			Code:  string(domainerror.ErrCodeEntryNotFound),
		})
		return uuid.Nil, false
	}
	return id, true
}
