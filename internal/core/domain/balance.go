package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance is the maintained lifetime snapshot for one account. It is
// always a full recomputation over non-deleted journal lines, never an
// incremental delta, so a rebuild from scratch lands on the same numbers.
type AccountBalance struct {
	AccountID   string          `json:"accountID"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	// Balance is the signed net, debits minus credits.
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// BalanceAmount is a non-negative magnitude paired with the ledger side it
// sits on, the presentation form of a signed balance.
type BalanceAmount struct {
	Amount    decimal.Decimal  `json:"amount"`
	Direction BalanceDirection `json:"direction"`
}
