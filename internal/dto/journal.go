package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
)

const dateLayout = "2006-01-02"

// JournalLineRequest is one posting in a journal entry payload. Amounts
// default to zero when omitted; deeper rules run in the service layer.
type JournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// CreateJournalEntryRequest defines the payload for creating or replacing a
// journal entry.
type CreateJournalEntryRequest struct {
	Date        string               `json:"date" binding:"required,datetime=2006-01-02"`
	Description string               `json:"description" binding:"max=500"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// ToInput converts the request into the service input. The date was already
// format-checked by binding.
func (r CreateJournalEntryRequest) ToInput() (portssvc.CreateJournalInput, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return portssvc.CreateJournalInput{}, err
	}
	lines := make([]portssvc.JournalLineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = portssvc.JournalLineInput{
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
		}
	}
	return portssvc.CreateJournalInput{
		Date:        date,
		Description: r.Description,
		Lines:       lines,
	}, nil
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	Date        string                `json:"date"`
	Description string                `json:"description,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	Lines       []JournalLineResponse `json:"lines"`
}

// ListJournalEntriesResponse wraps a page of entries with the total count of
// the filtered set.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
	Total   int64                  `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// JournalSummaryResponse defines the aggregate view over a window.
type JournalSummaryResponse struct {
	EntryCount  int64           `json:"entryCount"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineID:      l.LineID,
			AccountID:   l.AccountID,
			AccountName: l.AccountName,
			Debit:       l.Debit,
			Credit:      l.Credit,
		}
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		Date:        e.Date.Format(dateLayout),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		Lines:       lines,
	}
}

// ToJournalEntryResponses converts a slice of entries to DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}

// ToJournalSummaryResponse converts a domain.EntrySummary to its DTO.
func ToJournalSummaryResponse(s *domain.EntrySummary) JournalSummaryResponse {
	return JournalSummaryResponse{
		EntryCount:  s.EntryCount,
		TotalDebit:  s.TotalDebit,
		TotalCredit: s.TotalCredit,
	}
}
