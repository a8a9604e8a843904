package domain

import "time"

// AccountType defines the fundamental accounting classification of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceDirection identifies which side of the ledger a balance sits on.
type BalanceDirection string

const (
	Debit  BalanceDirection = "DEBIT"
	Credit BalanceDirection = "CREDIT"
)

// Account represents a chart-of-accounts entry within the core domain.
type Account struct {
	AccountID       string      `json:"accountID"`
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	Description     string      `json:"description,omitempty"`
	ParentAccountID *string     `json:"parentAccountID,omitempty"` // reserved for account hierarchies
	IsActive        bool        `json:"isActive"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`

	// Balance is the cached snapshot for this account, populated on reads
	// when the caller asks for it. It is owned by the balance maintainer;
	// readers must treat it as read-only.
	Balance *AccountBalance `json:"balance,omitempty"`
}

// NormalDirection returns the side an account of this type normally carries
// its balance on. Asset and expense accounts grow with debits, the rest grow
// with credits.
func (t AccountType) NormalDirection() BalanceDirection {
	switch t {
	case Asset, Expense:
		return Debit
	default:
		return Credit
	}
}

// IsValid reports whether t is one of the five known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}
