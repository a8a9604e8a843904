package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portsrepo "github.com/seojun-park/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
	"github.com/seojun-park/bookkeeper/internal/utils/accounting"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type journalService struct {
	BaseService
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

// NewJournalService creates the journal entry service.
func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) portssvc.JournalService {
	return &journalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.JournalService = (*journalService)(nil)

// CreateEntry validates and persists a new balanced journal entry.
func (s *journalService) CreateEntry(ctx context.Context, input portssvc.CreateJournalInput) (*domain.JournalEntry, error) {
	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:     uuid.NewString(),
		Date:        input.Date,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	entry.Lines = buildLines(entry.EntryID, input.Lines, now)

	accounts, err := s.validateLines(ctx, entry.Lines)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.CreateEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to create journal entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	attachAccountNames(entry.Lines, accounts)
	s.LogInfo(ctx, "journal entry created", slog.String("entry_id", entry.EntryID), slog.Int("lines", len(entry.Lines)))
	return &entry, nil
}

// GetEntryByID loads one non-deleted entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.journalRepo.FindEntryByID(ctx, entryID)
}

// ListEntries pages through non-deleted entries, newest first.
func (s *journalService) ListEntries(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.JournalEntry, int64, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, 0, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.journalRepo.ListEntries(ctx, from, to, limit, offset)
}

// UpdateEntry replaces the full content of an existing entry. The new line
// set passes the same validation as a fresh entry, and balances refresh for
// every account the old or the new lines touch.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, input portssvc.CreateJournalInput) (*domain.JournalEntry, error) {
	existing, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:     entryID,
		Date:        input.Date,
		Description: input.Description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   now,
	}
	entry.Lines = buildLines(entryID, input.Lines, now)

	accounts, err := s.validateLines(ctx, entry.Lines)
	if err != nil {
		return nil, err
	}

	affected := unionAccountIDs(existing.Lines, entry.Lines)
	if err := s.journalRepo.ReplaceEntryLines(ctx, entry, affected); err != nil {
		s.LogError(ctx, err, "failed to replace journal entry lines", slog.String("entry_id", entryID))
		return nil, err
	}

	attachAccountNames(entry.Lines, accounts)
	s.LogInfo(ctx, "journal entry updated", slog.String("entry_id", entryID), slog.Int("affected_accounts", len(affected)))
	return &entry, nil
}

// DeleteEntry soft-deletes an entry and withdraws it from every balance.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string) error {
	existing, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}

	affected := domain.AccountIDs(existing.Lines)
	if err := s.journalRepo.SoftDeleteEntry(ctx, entryID, affected); err != nil {
		s.LogError(ctx, err, "failed to soft delete journal entry", slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// Summarize aggregates non-deleted entries over an optional window.
func (s *journalService) Summarize(ctx context.Context, from, to *time.Time) (*domain.EntrySummary, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}
	return s.journalRepo.SummarizeEntries(ctx, from, to)
}

// validateLines runs the journal validation pipeline and returns the
// referenced accounts for reuse by the caller.
func (s *journalService) validateLines(ctx context.Context, lines []domain.JournalLine) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, domain.AccountIDs(lines))
	if err != nil {
		s.LogError(ctx, err, "failed to load accounts for validation")
		return nil, err
	}
	if err := accounting.ValidateLines(lines, accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// buildLines materializes input lines with fresh IDs and 1-based line
// numbers in input order, so reads reproduce the posting order exactly.
func buildLines(entryID string, inputs []portssvc.JournalLineInput, now time.Time) []domain.JournalLine {
	lines := make([]domain.JournalLine, len(inputs))
	for i, in := range inputs {
		lines[i] = domain.JournalLine{
			LineID:     uuid.NewString(),
			EntryID:    entryID,
			LineNumber: i + 1,
			AccountID:  in.AccountID,
			Debit:      in.Debit,
			Credit:     in.Credit,
			CreatedAt:  now,
		}
	}
	return lines
}

func attachAccountNames(lines []domain.JournalLine, accounts map[string]domain.Account) {
	for i := range lines {
		lines[i].AccountName = accounts[lines[i].AccountID].Name
	}
}

func unionAccountIDs(before, after []domain.JournalLine) []string {
	return domain.AccountIDs(append(append([]domain.JournalLine{}, before...), after...))
}

func validateDateRange(from, to *time.Time) error {
	if from != nil && to != nil && from.After(*to) {
		return apperrors.ErrInvalidDateRange
	}
	return nil
}
