package dto

import (
	"github.com/shopspring/decimal"

	"github.com/seojun-park/bookkeeper/internal/core/domain"
)

// BalanceAmountResponse pairs a magnitude with its ledger side.
type BalanceAmountResponse struct {
	Amount    decimal.Decimal         `json:"amount"`
	Direction domain.BalanceDirection `json:"direction"`
}

// RecentLineResponse is one of the latest postings shown on a trial balance row.
type RecentLineResponse struct {
	EntryID     string          `json:"entryID"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceRowResponse is one account's row in the trial balance.
type TrialBalanceRowResponse struct {
	AccountID        string                `json:"accountID"`
	Code             string                `json:"code"`
	Name             string                `json:"name"`
	AccountType      domain.AccountType    `json:"accountType"`
	OpeningBalance   BalanceAmountResponse `json:"openingBalance"`
	PeriodDebit      decimal.Decimal       `json:"periodDebit"`
	PeriodCredit     decimal.Decimal       `json:"periodCredit"`
	EndingBalance    BalanceAmountResponse `json:"endingBalance"`
	TransactionCount int64                 `json:"transactionCount"`
	RecentLines      []RecentLineResponse  `json:"recentLines"`
}

// TrialBalanceResponse is the full trial balance report.
type TrialBalanceResponse struct {
	From        string                    `json:"from"`
	To          string                    `json:"to"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
	IsBalanced  bool                      `json:"isBalanced"`
}

// LedgerEntryResponse is one posting in a general ledger statement.
type LedgerEntryResponse struct {
	EntryID        string                `json:"entryID"`
	Date           string                `json:"date"`
	Description    string                `json:"description,omitempty"`
	Debit          decimal.Decimal       `json:"debit"`
	Credit         decimal.Decimal       `json:"credit"`
	RunningBalance BalanceAmountResponse `json:"runningBalance"`
}

// GeneralLedgerResponse is the per-account statement.
type GeneralLedgerResponse struct {
	AccountID      string                `json:"accountID"`
	Code           string                `json:"code"`
	Name           string                `json:"name"`
	AccountType    domain.AccountType    `json:"accountType"`
	From           string                `json:"from"`
	To             string                `json:"to"`
	OpeningBalance BalanceAmountResponse `json:"openingBalance"`
	Entries        []LedgerEntryResponse `json:"entries"`
	PeriodDebit    decimal.Decimal       `json:"periodDebit"`
	PeriodCredit   decimal.Decimal       `json:"periodCredit"`
	ClosingBalance BalanceAmountResponse `json:"closingBalance"`
}

func toBalanceAmountResponse(b domain.BalanceAmount) BalanceAmountResponse {
	return BalanceAmountResponse{Amount: b.Amount, Direction: b.Direction}
}

// ToTrialBalanceResponse converts a domain report to its DTO.
func ToTrialBalanceResponse(r *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		recent := make([]RecentLineResponse, len(row.RecentLines))
		for j, line := range row.RecentLines {
			recent[j] = RecentLineResponse{
				EntryID:     line.EntryID,
				Date:        line.Date.Format(dateLayout),
				Description: line.Description,
				Debit:       line.Debit,
				Credit:      line.Credit,
			}
		}
		rows[i] = TrialBalanceRowResponse{
			AccountID:        row.AccountID,
			Code:             row.Code,
			Name:             row.Name,
			AccountType:      row.AccountType,
			OpeningBalance:   toBalanceAmountResponse(row.OpeningBalance),
			PeriodDebit:      row.PeriodActivity.Debit,
			PeriodCredit:     row.PeriodActivity.Credit,
			EndingBalance:    toBalanceAmountResponse(row.EndingBalance),
			TransactionCount: row.TransactionCount,
			RecentLines:      recent,
		}
	}
	return TrialBalanceResponse{
		From:        r.From.Format(dateLayout),
		To:          r.To.Format(dateLayout),
		Rows:        rows,
		TotalDebit:  r.TotalDebit,
		TotalCredit: r.TotalCredit,
		IsBalanced:  r.IsBalanced,
	}
}

// ToGeneralLedgerResponse converts a domain statement to its DTO.
func ToGeneralLedgerResponse(r *domain.GeneralLedgerReport) GeneralLedgerResponse {
	entries := make([]LedgerEntryResponse, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = LedgerEntryResponse{
			EntryID:        e.EntryID,
			Date:           e.Date.Format(dateLayout),
			Description:    e.Description,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: toBalanceAmountResponse(e.RunningBalance),
		}
	}
	return GeneralLedgerResponse{
		AccountID:      r.AccountID,
		Code:           r.Code,
		Name:           r.Name,
		AccountType:    r.AccountType,
		From:           r.From.Format(dateLayout),
		To:             r.To.Format(dateLayout),
		OpeningBalance: toBalanceAmountResponse(r.OpeningBalance),
		Entries:        entries,
		PeriodDebit:    r.PeriodTotals.Debit,
		PeriodCredit:   r.PeriodTotals.Credit,
		ClosingBalance: toBalanceAmountResponse(r.ClosingBalance),
	}
}
