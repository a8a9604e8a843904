package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebitCreditTotals is a plain pair of column sums.
type DebitCreditTotals struct {
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
}

// RecentLine is one of the latest postings touching an account, carried on
// trial balance rows for drill-down context.
type RecentLine struct {
	EntryID     string          `json:"entryID"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// AccountActivity is the raw per-account aggregation over a reporting period.
// TransactionCount is the number of journal lines posted to the account in
// the window, not the number of entries.
type AccountActivity struct {
	AccountID        string          `json:"accountID"`
	PeriodDebit      decimal.Decimal `json:"periodDebit"`
	PeriodCredit     decimal.Decimal `json:"periodCredit"`
	TransactionCount int64           `json:"transactionCount"`
	RecentLines      []RecentLine    `json:"recentLines,omitempty"`
}

// TrialBalanceRow is one account's composed view across a reporting window.
type TrialBalanceRow struct {
	AccountID        string            `json:"accountID"`
	Code             string            `json:"code"`
	Name             string            `json:"name"`
	AccountType      AccountType       `json:"accountType"`
	OpeningBalance   BalanceAmount     `json:"openingBalance"`
	PeriodActivity   DebitCreditTotals `json:"periodActivity"`
	EndingBalance    BalanceAmount     `json:"endingBalance"`
	TransactionCount int64             `json:"transactionCount"`
	RecentLines      []RecentLine      `json:"recentLines"`
}

// TrialBalanceReport is the full trial balance over a window. IsBalanced holds
// exactly when the ending debit and credit column totals agree.
type TrialBalanceReport struct {
	From        time.Time         `json:"from"`
	To          time.Time         `json:"to"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	IsBalanced  bool              `json:"isBalanced"`
}

// LedgerEntry is a single posting within a general ledger statement, carrying
// the running balance after the posting is applied.
type LedgerEntry struct {
	EntryID        string          `json:"entryID"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance BalanceAmount   `json:"runningBalance"`
}

// GeneralLedgerReport is the per-account statement over a window.
type GeneralLedgerReport struct {
	AccountID      string            `json:"accountID"`
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	AccountType    AccountType       `json:"accountType"`
	From           time.Time         `json:"from"`
	To             time.Time         `json:"to"`
	OpeningBalance BalanceAmount     `json:"openingBalance"`
	Entries        []LedgerEntry     `json:"entries"`
	PeriodTotals   DebitCreditTotals `json:"periodTotals"`
	ClosingBalance BalanceAmount     `json:"closingBalance"`
}
