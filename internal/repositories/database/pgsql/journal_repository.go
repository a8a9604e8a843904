package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portsrepo "github.com/seojun-park/bookkeeper/internal/core/ports/repositories"
	"github.com/seojun-park/bookkeeper/internal/middleware"
	"github.com/seojun-park/bookkeeper/internal/models"
	"github.com/seojun-park/bookkeeper/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
	balanceRepo portsrepo.BalanceRepository
}

// newPgxJournalRepository creates a new repository for journal data. The
// balance repository is injected so every journal mutation refreshes the
// affected snapshots inside its own transaction.
func newPgxJournalRepository(pool *pgxpool.Pool, balanceRepo portsrepo.BalanceRepository) portsrepo.JournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		balanceRepo:    balanceRepo,
	}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

const insertLineQuery = `
	INSERT INTO journal_lines (line_id, entry_id, line_number, account_id, debit, credit, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

func queueLineInserts(batch *pgx.Batch, lines []domain.JournalLine) {
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(insertLineQuery, m.LineID, m.EntryID, m.LineNumber, m.AccountID, m.Debit, m.Credit, m.CreatedAt)
	}
}

// CreateEntry persists a new entry with its lines and refreshes the affected
// balance snapshots, all in one transaction.
func (r *PgxJournalRepository) CreateEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("rollback failed after create entry", "error", rbErr)
		}
	}()

	m := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (entry_id, entry_date, description, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := tx.Exec(ctx, entryQuery, m.EntryID, m.EntryDate, m.Description, m.IsDeleted, m.CreatedAt, m.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", m.EntryID, err)
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, entry.Lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert journal lines for entry %s: %w", m.EntryID, err)
	}

	if err := r.balanceRepo.RecomputeBalancesInTx(ctx, tx, domain.AccountIDs(entry.Lines)); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReplaceEntryLines rewrites an existing entry's header fields and full line
// set. affectedAccountIDs must span the union of the old and new lines.
func (r *PgxJournalRepository) ReplaceEntryLines(ctx context.Context, entry domain.JournalEntry, affectedAccountIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("rollback failed after replace lines", "error", rbErr)
		}
	}()

	// Lock the entry row so concurrent replacements serialize.
	var locked string
	lockQuery := `SELECT entry_id FROM journal_entries WHERE entry_id = $1 AND is_deleted = FALSE FOR UPDATE;`
	if err := tx.QueryRow(ctx, lockQuery, entry.EntryID).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock journal entry %s: %w", entry.EntryID, err)
	}

	m := mapping.ToModelJournalEntry(entry)
	updateQuery := `
		UPDATE journal_entries
		SET entry_date = $2, description = $3, updated_at = $4
		WHERE entry_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, m.EntryID, m.EntryDate, m.Description, m.UpdatedAt); err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", m.EntryID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, m.EntryID); err != nil {
		return fmt.Errorf("failed to delete old lines of entry %s: %w", m.EntryID, err)
	}

	batch := &pgx.Batch{}
	queueLineInserts(batch, entry.Lines)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert replacement lines for entry %s: %w", m.EntryID, err)
	}

	if err := r.balanceRepo.RecomputeBalancesInTx(ctx, tx, affectedAccountIDs); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SoftDeleteEntry marks an entry deleted and refreshes the snapshots of the
// accounts its lines touched. The lines themselves stay in place.
func (r *PgxJournalRepository) SoftDeleteEntry(ctx context.Context, entryID string, affectedAccountIDs []string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("rollback failed after soft delete", "error", rbErr)
		}
	}()

	query := `
		UPDATE journal_entries
		SET is_deleted = TRUE, updated_at = now()
		WHERE entry_id = $1 AND is_deleted = FALSE;
	`
	tag, err := tx.Exec(ctx, query, entryID)
	if err != nil {
		return fmt.Errorf("failed to soft delete entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := r.balanceRepo.RecomputeBalancesInTx(ctx, tx, affectedAccountIDs); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID loads a non-deleted entry with its lines. Lines carry the
// account name for display and come back in posting order.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entryQuery := `
		SELECT entry_id, entry_date, description, is_deleted, created_at, updated_at
		FROM journal_entries
		WHERE entry_id = $1 AND is_deleted = FALSE;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, entryQuery, entryID).Scan(
		&m.EntryID, &m.EntryDate, &m.Description, &m.IsDeleted, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	lines, err := r.findLinesForEntries(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainJournalEntry(m)
	entry.Lines = lines[entryID]
	return &entry, nil
}

// ListEntries pages through non-deleted entries, newest first, with an
// optional inclusive date window. The total count covers the whole filtered
// set, not just the page.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.JournalEntry, int64, error) {
	where := `WHERE is_deleted = FALSE`
	args := []any{}
	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(` AND entry_date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(` AND entry_date <= $%d`, len(args))
	}

	countQuery := `SELECT COUNT(*) FROM journal_entries ` + where + `;`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count journal entries: %w", err)
	}

	listArgs := append(args, limit, offset)
	listQuery := fmt.Sprintf(`
		SELECT entry_id, entry_date, description, is_deleted, created_at, updated_at
		FROM journal_entries
		%s
		ORDER BY entry_date DESC, entry_id DESC
		LIMIT $%d OFFSET $%d;
	`, where, len(args)+1, len(args)+2)

	rows, err := r.Pool.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	var entryIDs []string
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(&m.EntryID, &m.EntryDate, &m.Description, &m.IsDeleted, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
		entryIDs = append(entryIDs, m.EntryID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	lines, err := r.findLinesForEntries(ctx, entryIDs)
	if err != nil {
		return nil, 0, err
	}
	for i := range entries {
		entries[i].Lines = lines[entries[i].EntryID]
	}
	return entries, total, nil
}

// SummarizeEntries aggregates non-deleted entries in the window.
func (r *PgxJournalRepository) SummarizeEntries(ctx context.Context, from, to *time.Time) (*domain.EntrySummary, error) {
	where := `WHERE je.is_deleted = FALSE`
	args := []any{}
	if from != nil {
		args = append(args, *from)
		where += fmt.Sprintf(` AND je.entry_date >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		where += fmt.Sprintf(` AND je.entry_date <= $%d`, len(args))
	}

	query := `
		SELECT
			COUNT(DISTINCT je.entry_id),
			COALESCE(SUM(jl.debit), 0),
			COALESCE(SUM(jl.credit), 0)
		FROM journal_entries je
		LEFT JOIN journal_lines jl ON jl.entry_id = je.entry_id
		` + where + `;`

	var summary domain.EntrySummary
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&summary.EntryCount, &summary.TotalDebit, &summary.TotalCredit); err != nil {
		return nil, fmt.Errorf("failed to summarize journal entries: %w", err)
	}
	return &summary, nil
}

// findLinesForEntries loads lines for the given entries keyed by entry ID,
// joined with accounts for the display name.
func (r *PgxJournalRepository) findLinesForEntries(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return map[string][]domain.JournalLine{}, nil
	}

	query := `
		SELECT jl.line_id, jl.entry_id, jl.line_number, jl.account_id, jl.debit, jl.credit, jl.created_at, a.name
		FROM journal_lines jl
		JOIN accounts a ON a.account_id = jl.account_id
		WHERE jl.entry_id = ANY($1)
		ORDER BY jl.line_number ASC;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal lines: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.LineNumber, &m.AccountID, &m.Debit, &m.Credit, &m.CreatedAt, &m.AccountName); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		result[m.EntryID] = append(result[m.EntryID], mapping.ToDomainJournalLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}
	return result, nil
}
