package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is a balanced, immutable-by-replacement accounting document.
// An entry is never hard-deleted; IsDeleted excludes it from every balance
// and report.
type JournalEntry struct {
	EntryID     string        `json:"entryID"`
	Date        time.Time     `json:"date"`
	Description string        `json:"description,omitempty"`
	IsDeleted   bool          `json:"isDeleted"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Lines       []JournalLine `json:"lines,omitempty"`
}

// JournalLine is a single leg of a journal entry. Exactly one of Debit or
// Credit is positive; the other is zero. Amounts are whole numbers.
// LineNumber is the 1-based position within the entry; reads return lines
// ordered by it, so an entry always comes back in the order it was posted.
type JournalLine struct {
	LineID     string          `json:"lineID"`
	EntryID    string          `json:"entryID"`
	LineNumber int             `json:"lineNumber"`
	AccountID  string          `json:"accountID"`
	Debit      decimal.Decimal `json:"debit"`
	Credit     decimal.Decimal `json:"credit"`
	CreatedAt  time.Time       `json:"createdAt"`

	// AccountName is denormalized onto read paths for display. It is never
	// persisted on the line itself.
	AccountName string `json:"accountName,omitempty"`
}

// AccountIDs returns the distinct account IDs referenced by lines, in first
// occurrence order.
func AccountIDs(lines []JournalLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}
	return ids
}

// EntrySummary is the aggregate view over non-deleted entries in a window.
type EntrySummary struct {
	EntryCount  int64           `json:"entryCount"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}
