package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seojun-park/bookkeeper/internal/core/domain"
)

// ServiceContainer holds all the services consumed by the handler layer.
type ServiceContainer struct {
	Account       AccountService
	Journal       JournalService
	TrialBalance  TrialBalanceService
	GeneralLedger GeneralLedgerService
}

// CreateAccountInput carries the caller-supplied fields for a new account.
type CreateAccountInput struct {
	Code            string
	Name            string
	AccountType     domain.AccountType
	Description     string
	ParentAccountID *string
}

// UpdateAccountInput carries the mutable account fields. Nil pointers leave
// the stored value untouched. Code and type are immutable after creation.
type UpdateAccountInput struct {
	Name        *string
	Description *string
}

// AccountService manages the chart of accounts.
type AccountService interface {
	CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string, withBalance bool) (*domain.Account, error)
	ListAccounts(ctx context.Context, includeInactive, withBalances bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, input UpdateAccountInput) (*domain.Account, error)
	SetAccountStatus(ctx context.Context, accountID string, isActive bool) (*domain.Account, error)
}

// CreateJournalInput carries the fields for a new or replacement entry.
type CreateJournalInput struct {
	Date        time.Time
	Description string
	Lines       []JournalLineInput
}

// JournalLineInput is one caller-supplied posting.
type JournalLineInput struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// JournalService validates and persists journal entries.
type JournalService interface {
	CreateEntry(ctx context.Context, input CreateJournalInput) (*domain.JournalEntry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.JournalEntry, int64, error)
	UpdateEntry(ctx context.Context, entryID string, input CreateJournalInput) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	Summarize(ctx context.Context, from, to *time.Time) (*domain.EntrySummary, error)
}

// TrialBalanceService composes the trial balance report.
type TrialBalanceService interface {
	TrialBalance(ctx context.Context, from, to time.Time) (*domain.TrialBalanceReport, error)
}

// GeneralLedgerService composes per-account ledger statements.
type GeneralLedgerService interface {
	GeneralLedger(ctx context.Context, accountID string, from, to time.Time, search string) (*domain.GeneralLedgerReport, error)
}
