package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
	"github.com/seojun-park/bookkeeper/internal/dto"
)

// reportingHandler handles the trial balance and general ledger endpoints.
type reportingHandler struct {
	trialBalanceService  portssvc.TrialBalanceService
	generalLedgerService portssvc.GeneralLedgerService
}

// registerReportingRoutes registers the report endpoints.
func registerReportingRoutes(rg *gin.RouterGroup, tb portssvc.TrialBalanceService, gl portssvc.GeneralLedgerService) {
	h := &reportingHandler{trialBalanceService: tb, generalLedgerService: gl}

	rg.GET("/trial-balance", h.trialBalance)
	rg.GET("/general-ledger", h.generalLedger)
}

func (h *reportingHandler) trialBalance(c *gin.Context) {
	from, to, err := requireDateRangeQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.trialBalanceService.TrialBalance(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

func (h *reportingHandler) generalLedger(c *gin.Context) {
	accountID := c.Query("accountID")
	if accountID == "" {
		respondError(c, fmt.Errorf("%w: accountID query parameter is required", apperrors.ErrValidation))
		return
	}

	from, to, err := requireDateRangeQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	report, err := h.generalLedgerService.GeneralLedger(c.Request.Context(), accountID, from, to, c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGeneralLedgerResponse(report))
}

// requireDateRangeQuery reads mandatory from/to query parameters in
// YYYY-MM-DD form. Reports always run over an explicit window.
func requireDateRangeQuery(c *gin.Context) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from must be a YYYY-MM-DD date", apperrors.ErrValidation)
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to must be a YYYY-MM-DD date", apperrors.ErrValidation)
	}
	return from, to, nil
}
