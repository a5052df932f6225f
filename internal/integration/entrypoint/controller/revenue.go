// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/usecase/ledger"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/middleware"
)

// RevenueController handles revenue endpoints. Mirrors ExpenseController
// against the revenue book of the ledger.
type RevenueController struct {
	listUseCase      *ledger.ListEntriesUseCase
	listMonthUseCase *ledger.ListMonthEntriesUseCase
	getUseCase       *ledger.GetEntryUseCase
	createUseCase    *ledger.CreateEntryUseCase
	updateUseCase    *ledger.UpdateEntryUseCase
	deleteUseCase    *ledger.DeleteEntryUseCase
}

// NewRevenueController creates a new revenue controller instance.
func NewRevenueController(
	listUseCase *ledger.ListEntriesUseCase,
	listMonthUseCase *ledger.ListMonthEntriesUseCase,
	getUseCase *ledger.GetEntryUseCase,
	createUseCase *ledger.CreateEntryUseCase,
	updateUseCase *ledger.UpdateEntryUseCase,
	deleteUseCase *ledger.DeleteEntryUseCase,
) *RevenueController {
	return &RevenueController{
		listUseCase:      listUseCase,
		listMonthUseCase: listMonthUseCase,
		getUseCase:       getUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
	}
}

// List handles GET /revenues requests.
func (c *RevenueController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entries, err := c.listUseCase.Execute(ctx.Request.Context(), ledger.ListEntriesInput{
		UserID: userID,
		Kind:   entity.EntryKindRevenue,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueListResponse(entries))
}

// ListMonth handles GET /revenues/:monthYear requests.
func (c *RevenueController) ListMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entries, err := c.listMonthUseCase.Execute(ctx.Request.Context(), ledger.ListMonthEntriesInput{
		UserID:   userID,
		Kind:     entity.EntryKindRevenue,
		MonthKey: ctx.Param("monthYear"),
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueListResponse(entries))
}

// Get handles GET /revenues/:monthYear/:revenueId requests.
func (c *RevenueController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, ok := parseEntryID(ctx, "revenueId")
	if !ok {
		return
	}

	entry, err := c.getUseCase.Execute(ctx.Request.Context(), ledger.GetEntryInput{
		UserID:   userID,
		Kind:     entity.EntryKindRevenue,
		MonthKey: ctx.Param("monthYear"),
		EntryID:  entryID,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRevenueResponse(*entry))
}

// Create handles POST /revenues requests.
func (c *RevenueController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateRevenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "nameRevenue, valueRevenue and dateRevenue are required",
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), ledger.CreateEntryInput{
		UserID: userID,
		Kind:   entity.EntryKindRevenue,
		Name:   req.NameRevenue,
		Value:  decimal.NewFromFloat(*req.ValueRevenue),
		Date:   req.DateRevenue,
		Icon:   req.Icon,
		Color:  req.Color,
		Note:   req.Anotation,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateRevenueResponse{
		Revenue:   dto.ToRevenueResponse(output.Entry),
		MonthYear: string(output.MonthKey),
	})
}

// Update handles PUT /revenues/:monthYear/:revenueId requests.
func (c *RevenueController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, ok := parseEntryID(ctx, "revenueId")
	if !ok {
		return
	}

	var req dto.UpdateRevenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEntryFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), ledger.UpdateEntryInput{
		UserID:   userID,
		Kind:     entity.EntryKindRevenue,
		MonthKey: ctx.Param("monthYear"),
		EntryID:  entryID,
		Patch:    req.ToPatch(),
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateRevenueResponse{
		Revenue:   dto.ToRevenueResponse(output.Entry),
		MonthYear: string(output.MonthKey),
		Moved:     output.Moved,
	})
}

// Delete handles DELETE /revenues/:monthYear/:revenueId requests.
func (c *RevenueController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	entryID, ok := parseEntryID(ctx, "revenueId")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), ledger.DeleteEntryInput{
		UserID:   userID,
		Kind:     entity.EntryKindRevenue,
		MonthKey: ctx.Param("monthYear"),
		EntryID:  entryID,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Revenue deleted successfully"})
}
