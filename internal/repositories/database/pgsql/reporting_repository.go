package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portsrepo "github.com/seojun-park/bookkeeper/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates the read-side repository behind the
// trial balance and general ledger reports.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// OpeningTotals sums postings strictly before asOf per account. Accounts with
// no prior postings are absent from the map.
func (r *PgxReportingRepository) OpeningTotals(ctx context.Context, asOf time.Time) (map[string]domain.DebitCreditTotals, error) {
	query := `
		SELECT jl.account_id, COALESCE(SUM(jl.debit), 0), COALESCE(SUM(jl.credit), 0)
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		WHERE je.is_deleted = FALSE AND je.entry_date < $1
		GROUP BY jl.account_id;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query opening totals: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.DebitCreditTotals)
	for rows.Next() {
		var accountID string
		var totals domain.DebitCreditTotals
		if err := rows.Scan(&accountID, &totals.Debit, &totals.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan opening totals row: %w", err)
		}
		result[accountID] = totals
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating opening totals rows: %w", err)
	}
	return result, nil
}

// AccountActivity aggregates the inclusive [from, to] window per account,
// counting posted lines and attaching the newest postings up to
// recentLimit each.
func (r *PgxReportingRepository) AccountActivity(ctx context.Context, from, to time.Time, recentLimit int) (map[string]domain.AccountActivity, error) {
	totalsQuery := `
		SELECT jl.account_id, COALESCE(SUM(jl.debit), 0), COALESCE(SUM(jl.credit), 0), COUNT(jl.line_id)
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		WHERE je.is_deleted = FALSE AND je.entry_date >= $1 AND je.entry_date <= $2
		GROUP BY jl.account_id;
	`
	rows, err := r.Pool.Query(ctx, totalsQuery, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query account activity: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.AccountActivity)
	for rows.Next() {
		var a domain.AccountActivity
		if err := rows.Scan(&a.AccountID, &a.PeriodDebit, &a.PeriodCredit, &a.TransactionCount); err != nil {
			return nil, fmt.Errorf("failed to scan account activity row: %w", err)
		}
		result[a.AccountID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account activity rows: %w", err)
	}
	rows.Close()

	if recentLimit <= 0 || len(result) == 0 {
		return result, nil
	}

	recentQuery := `
		SELECT account_id, entry_id, entry_date, description, debit, credit
		FROM (
			SELECT jl.account_id, je.entry_id, je.entry_date, je.description, jl.debit, jl.credit,
				ROW_NUMBER() OVER (
					PARTITION BY jl.account_id
					ORDER BY je.entry_date DESC, je.entry_id DESC, jl.line_number DESC
				) AS rn
			FROM journal_lines jl
			JOIN journal_entries je ON je.entry_id = jl.entry_id
			WHERE je.is_deleted = FALSE AND je.entry_date >= $1 AND je.entry_date <= $2
		) ranked
		WHERE rn <= $3
		ORDER BY account_id, rn;
	`
	recentRows, err := r.Pool.Query(ctx, recentQuery, from, to, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent lines: %w", err)
	}
	defer recentRows.Close()

	for recentRows.Next() {
		var accountID string
		var line domain.RecentLine
		var description *string
		if err := recentRows.Scan(&accountID, &line.EntryID, &line.Date, &description, &line.Debit, &line.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan recent line row: %w", err)
		}
		if description != nil {
			line.Description = *description
		}
		activity := result[accountID]
		activity.RecentLines = append(activity.RecentLines, line)
		result[accountID] = activity
	}
	if err := recentRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent line rows: %w", err)
	}
	return result, nil
}

// AccountLedgerLines lists one account's postings inside the window, oldest
// first, so callers can thread a running balance through them. search matches
// the entry description or the entry ID, case insensitively.
func (r *PgxReportingRepository) AccountLedgerLines(ctx context.Context, accountID string, from, to time.Time, search string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT je.entry_id, je.entry_date, je.description, jl.debit, jl.credit
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		WHERE je.is_deleted = FALSE
			AND jl.account_id = $1
			AND je.entry_date >= $2 AND je.entry_date <= $3
	`
	args := []any{accountID, from, to}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(` AND (je.description ILIKE $%d OR je.entry_id ILIKE $%d)`, len(args), len(args))
	}
	query += ` ORDER BY je.entry_date ASC, je.entry_id ASC, jl.line_number ASC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines for account %s: %w", accountID, err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var description *string
		if err := rows.Scan(&e.EntryID, &e.Date, &description, &e.Debit, &e.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan ledger line row: %w", err)
		}
		if description != nil {
			e.Description = *description
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger line rows: %w", err)
	}
	return entries, nil
}
