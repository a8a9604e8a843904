package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	"github.com/seojun-park/bookkeeper/internal/middleware"
)

// errorBody is the error envelope every failed request returns.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// respondError maps a service error onto the HTTP status and stable error
// code of the response envelope. Unknown errors become a generic 500 so
// internals never leak to clients.
func respondError(c *gin.Context, err error) {
	status, body := classifyError(err)
	if status == http.StatusInternalServerError {
		middleware.GetLoggerFromContext(c).Error("request failed", slog.String("error", err.Error()))
		body.Message = "an internal error occurred"
	}
	c.JSON(status, errorResponse{Error: body})
}

func classifyError(err error) (int, errorBody) {
	var mismatch *apperrors.MismatchError
	if errors.As(err, &mismatch) {
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "DEBIT_CREDIT_MISMATCH",
			Message: mismatch.Error(),
			Details: gin.H{
				"debit_total":  mismatch.DebitTotal,
				"credit_total": mismatch.CreditTotal,
				"difference":   mismatch.Difference(),
			},
		}
	}

	var missing *apperrors.MissingAccountsError
	if errors.As(err, &missing) {
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "ACCOUNT_NOT_FOUND",
			Message: missing.Error(),
			Details: gin.H{"missing_account_ids": missing.AccountIDs},
		}
	}

	var inactive *apperrors.InactiveAccountsError
	if errors.As(err, &inactive) {
		return http.StatusUnprocessableEntity, errorBody{
			Code:    "INACTIVE_ACCOUNT",
			Message: inactive.Error(),
			Details: gin.H{"inactive_accounts": inactive.Accounts},
		}
	}

	var inUse *apperrors.AccountInUseError
	if errors.As(err, &inUse) {
		return http.StatusConflict, errorBody{
			Code:    "ACCOUNT_IN_USE",
			Message: inUse.Error(),
			Details: gin.H{"account_id": inUse.AccountID, "usage_count": inUse.UsageCount},
		}
	}

	switch {
	case errors.Is(err, apperrors.ErrInsufficientLines):
		return http.StatusUnprocessableEntity, errorBody{Code: "INSUFFICIENT_LINES", Message: err.Error()}
	case errors.Is(err, apperrors.ErrInvalidAmount), errors.Is(err, apperrors.ErrSingleSideViolation):
		return http.StatusUnprocessableEntity, errorBody{Code: "INVALID_AMOUNT", Message: err.Error()}
	case errors.Is(err, apperrors.ErrInvalidDateRange):
		return http.StatusUnprocessableEntity, errorBody{Code: "INVALID_DATE_RANGE", Message: err.Error()}
	case errors.Is(err, apperrors.ErrDuplicateAccountCode):
		return http.StatusConflict, errorBody{Code: "DUPLICATE_CODE", Message: err.Error()}
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, errorBody{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, errorBody{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, errorBody{Code: "VALIDATION_ERROR", Message: err.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, errorBody{Code: "RESOURCE_NOT_FOUND", Message: err.Error()}
	default:
		return http.StatusInternalServerError, errorBody{Code: "INTERNAL_ERROR", Message: err.Error()}
	}
}

// respondBindingError renders malformed or invalid request payloads.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: errorBody{
		Code:    "VALIDATION_ERROR",
		Message: "invalid request: " + err.Error(),
	}})
}
