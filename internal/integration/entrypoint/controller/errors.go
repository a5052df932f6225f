// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/entrypoint/dto"
)

// respondLedgerError maps ledger and storage failures onto HTTP statuses.
// Validation failures are 400, absences 404, concurrent-write conflicts
// 409, and storage outages 503; anything else stays an opaque 500 so raw
// persistence errors never leak to clients.
func respondLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := http.StatusBadRequest
		if errors.Is(err, domainerror.ErrBucketNotFound) || errors.Is(err, domainerror.ErrEntryNotFound) {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
	case errors.Is(err, domainerror.ErrAggregateConflict):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Ledger was modified by a concurrent request, please retry",
			Code:  string(domainerror.ErrCodeAggregateConflict),
		})
	case errors.Is(err, domainerror.ErrStorageUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Storage temporarily unavailable",
			Code:  string(domainerror.ErrCodeStorageUnavailable),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An unexpected error occurred",
		})
	}
}

// respondUnauthenticated is the shared reply for requests whose context
// lost its authenticated user.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
