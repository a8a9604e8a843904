package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portsrepo "github.com/seojun-park/bookkeeper/internal/core/ports/repositories"
	"github.com/seojun-park/bookkeeper/internal/models"
	"github.com/seojun-park/bookkeeper/internal/utils/mapping"
)

// recomputeBalancesQuery rebuilds snapshots from scratch for the selected
// accounts. Lines of soft-deleted entries contribute nothing, and an account
// with no posting history lands on an all-zero row. When $1 is empty the
// statement covers every account.
const recomputeBalancesQuery = `
	INSERT INTO account_balances (account_id, total_debit, total_credit, balance, updated_at)
	SELECT
		a.account_id,
		COALESCE(t.total_debit, 0),
		COALESCE(t.total_credit, 0),
		COALESCE(t.total_debit, 0) - COALESCE(t.total_credit, 0),
		now()
	FROM accounts a
	LEFT JOIN (
		SELECT jl.account_id, SUM(jl.debit) AS total_debit, SUM(jl.credit) AS total_credit
		FROM journal_lines jl
		JOIN journal_entries je ON je.entry_id = jl.entry_id
		WHERE je.is_deleted = FALSE
		GROUP BY jl.account_id
	) t ON t.account_id = a.account_id
	WHERE cardinality($1::text[]) = 0 OR a.account_id = ANY($1)
	ON CONFLICT (account_id) DO UPDATE
	SET total_debit = EXCLUDED.total_debit,
		total_credit = EXCLUDED.total_credit,
		balance = EXCLUDED.balance,
		updated_at = EXCLUDED.updated_at;
`

type PgxBalanceRepository struct {
	BaseRepository
}

// newPgxBalanceRepository creates a new repository for balance snapshots.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepository {
	return &PgxBalanceRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BalanceRepository = (*PgxBalanceRepository)(nil)

// RecomputeBalances refreshes snapshots outside any caller transaction. An
// empty accountIDs rebuilds every account.
func (r *PgxBalanceRepository) RecomputeBalances(ctx context.Context, accountIDs []string) error {
	if accountIDs == nil {
		accountIDs = []string{}
	}
	if _, err := r.Pool.Exec(ctx, recomputeBalancesQuery, accountIDs); err != nil {
		return fmt.Errorf("failed to recompute balances: %w", err)
	}
	return nil
}

// RecomputeBalancesInTx refreshes snapshots within the caller's transaction
// so they commit or roll back together with the journal mutation.
func (r *PgxBalanceRepository) RecomputeBalancesInTx(ctx context.Context, tx pgx.Tx, accountIDs []string) error {
	if accountIDs == nil {
		accountIDs = []string{}
	}
	if _, err := tx.Exec(ctx, recomputeBalancesQuery, accountIDs); err != nil {
		return fmt.Errorf("failed to recompute balances in tx: %w", err)
	}
	return nil
}

// FindBalancesByAccountIDs returns snapshots keyed by account ID. Accounts
// with no snapshot row yet are absent from the result.
func (r *PgxBalanceRepository) FindBalancesByAccountIDs(ctx context.Context, accountIDs []string) (map[string]domain.AccountBalance, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.AccountBalance{}, nil
	}

	query := `
		SELECT account_id, total_debit, total_credit, balance, updated_at
		FROM account_balances
		WHERE account_id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.AccountBalance, len(accountIDs))
	for rows.Next() {
		var m models.AccountBalance
		if err := rows.Scan(&m.AccountID, &m.TotalDebit, &m.TotalCredit, &m.Balance, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan balance row: %w", err)
		}
		result[m.AccountID] = mapping.ToDomainAccountBalance(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance rows: %w", err)
	}
	return result, nil
}
