package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/seojun-park/bookkeeper/internal/core/domain"
)

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	JournalRepo   JournalRepository
	BalanceRepo   BalanceRepository
	ReportingRepo ReportingRepository
}

// AccountRepository persists the chart of accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	SetAccountStatus(ctx context.Context, accountID string, isActive bool) error
	// CountLineUsage reports how many journal lines, deleted entries
	// included, reference the account.
	CountLineUsage(ctx context.Context, accountID string) (int64, error)
}

// JournalRepository persists journal entries and their lines. Mutations keep
// the affected account balance snapshots current within the same transaction.
type JournalRepository interface {
	CreateEntry(ctx context.Context, entry domain.JournalEntry) error
	// ReplaceEntryLines swaps the full line set of an existing entry.
	// affectedAccountIDs must cover both the old and the new lines so the
	// balance recomputation reaches accounts dropped by the replacement.
	ReplaceEntryLines(ctx context.Context, entry domain.JournalEntry, affectedAccountIDs []string) error
	SoftDeleteEntry(ctx context.Context, entryID string, affectedAccountIDs []string) error
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.JournalEntry, int64, error)
	SummarizeEntries(ctx context.Context, from, to *time.Time) (*domain.EntrySummary, error)
}

// BalanceRepository maintains the account balance snapshots. Every write is a
// full recomputation from the journal, never an increment.
type BalanceRepository interface {
	// RecomputeBalances refreshes snapshots for the given accounts, or for
	// every account when accountIDs is empty.
	RecomputeBalances(ctx context.Context, accountIDs []string) error
	// RecomputeBalancesInTx is the transactional variant used by journal
	// mutations so snapshot updates commit or roll back with the entry.
	RecomputeBalancesInTx(ctx context.Context, tx pgx.Tx, accountIDs []string) error
	FindBalancesByAccountIDs(ctx context.Context, accountIDs []string) (map[string]domain.AccountBalance, error)
}

// ReportingRepository serves the read-side aggregations behind the trial
// balance and general ledger reports.
type ReportingRepository interface {
	// OpeningTotals sums lines strictly before asOf, per account.
	OpeningTotals(ctx context.Context, asOf time.Time) (map[string]domain.DebitCreditTotals, error)
	// AccountActivity aggregates the inclusive window, with per-account
	// transaction counts and the most recent postings.
	AccountActivity(ctx context.Context, from, to time.Time, recentLimit int) (map[string]domain.AccountActivity, error)
	// AccountLedgerLines lists one account's postings in the window, oldest
	// first. search filters on entry description or entry ID, case
	// insensitively.
	AccountLedgerLines(ctx context.Context, accountID string, from, to time.Time, search string) ([]domain.LedgerEntry, error)
}
