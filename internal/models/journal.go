package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the database shape of a journal entry row.
type JournalEntry struct {
	EntryID     string    `db:"entry_id"`
	EntryDate   time.Time `db:"entry_date"`
	Description *string   `db:"description"`
	IsDeleted   bool      `db:"is_deleted"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// JournalLine is the database shape of a journal line row. AccountName is
// only populated by queries that join the accounts table.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	LineNumber  int             `db:"line_number"`
	AccountID   string          `db:"account_id"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	CreatedAt   time.Time       `db:"created_at"`
	AccountName string          `db:"account_name"`
}

// AccountBalance is the database shape of a balance snapshot row.
type AccountBalance struct {
	AccountID   string          `db:"account_id"`
	TotalDebit  decimal.Decimal `db:"total_debit"`
	TotalCredit decimal.Decimal `db:"total_credit"`
	Balance     decimal.Decimal `db:"balance"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
