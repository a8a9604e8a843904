package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
	"github.com/seojun-park/bookkeeper/internal/dto"
	"github.com/seojun-park/bookkeeper/internal/middleware"
)

// journalHandler handles HTTP requests related to journal entries.
type journalHandler struct {
	journalService portssvc.JournalService
}

// registerJournalRoutes registers routes related to journal entries.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalService) {
	h := &journalHandler{journalService: journalService}

	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/summary", h.summarize)
		entries.GET("/:id", h.getEntry)
		entries.PUT("/:id", h.updateEntry)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		respondBindingError(c, err)
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) getEntry(c *gin.Context) {
	entry, err := h.journalService.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) listEntries(c *gin.Context) {
	from, to, err := parseDateRangeQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, total, err := h.journalService.ListEntries(c.Request.Context(), from, to, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListJournalEntriesResponse{
		Entries: dto.ToJournalEntryResponses(entries),
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
	if resp.Entries == nil {
		resp.Entries = []dto.JournalEntryResponse{}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEntry", slog.String("error", err.Error()))
		respondBindingError(c, err)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		respondBindingError(c, err)
		return
	}

	entry, err := h.journalService.UpdateEntry(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

func (h *journalHandler) deleteEntry(c *gin.Context) {
	if err := h.journalService.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondEntryError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondEntryError narrows the generic not-found code for entry lookups so
// clients can tell a missing entry apart from other missing resources.
func respondEntryError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: errorBody{
			Code:    "JOURNAL_ENTRY_NOT_FOUND",
			Message: "journal entry not found",
		}})
		return
	}
	respondError(c, err)
}

func (h *journalHandler) summarize(c *gin.Context) {
	from, to, err := parseDateRangeQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.journalService.Summarize(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalSummaryResponse(summary))
}

// parseDateRangeQuery reads optional from/to query parameters in YYYY-MM-DD
// form. Either bound may be absent.
func parseDateRangeQuery(c *gin.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, apperrors.ErrInvalidDateRange
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, nil, apperrors.ErrInvalidDateRange
		}
		to = &parsed
	}
	return from, to, nil
}
