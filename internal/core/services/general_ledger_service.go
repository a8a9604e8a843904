package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portsrepo "github.com/seojun-park/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
	"github.com/seojun-park/bookkeeper/internal/utils/accounting"
)

type generalLedgerService struct {
	BaseService
	accountRepo   portsrepo.AccountRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewGeneralLedgerService creates the per-account ledger statement composer.
func NewGeneralLedgerService(accountRepo portsrepo.AccountRepository, reportingRepo portsrepo.ReportingRepository) portssvc.GeneralLedgerService {
	return &generalLedgerService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.GeneralLedgerService = (*generalLedgerService)(nil)

// GeneralLedger composes one account's statement over the inclusive window.
// The opening balance takes every posting strictly before from, each listed
// posting carries the running balance after it applies, and the closing
// balance equals opening plus the period movement. The search filter narrows
// the listed postings but never shifts the opening balance.
func (s *generalLedgerService) GeneralLedger(ctx context.Context, accountID string, from, to time.Time, search string) (*domain.GeneralLedgerReport, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidDateRange
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	opening, err := s.reportingRepo.OpeningTotals(ctx, from)
	if err != nil {
		s.LogError(ctx, err, "failed to load opening totals", slog.String("account_id", accountID))
		return nil, err
	}

	entries, err := s.reportingRepo.AccountLedgerLines(ctx, accountID, from, to, search)
	if err != nil {
		s.LogError(ctx, err, "failed to load ledger lines", slog.String("account_id", accountID))
		return nil, err
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}

	open := opening[accountID]
	running := open.Debit.Sub(open.Credit)

	periodDebit, periodCredit := decimal.Zero, decimal.Zero
	for i := range entries {
		running = running.Add(entries[i].Debit).Sub(entries[i].Credit)
		entries[i].RunningBalance = accounting.ConvertBalance(running, account.AccountType)
		periodDebit = periodDebit.Add(entries[i].Debit)
		periodCredit = periodCredit.Add(entries[i].Credit)
	}

	openingNet := open.Debit.Sub(open.Credit)
	return &domain.GeneralLedgerReport{
		AccountID:      account.AccountID,
		Code:           account.Code,
		Name:           account.Name,
		AccountType:    account.AccountType,
		From:           from,
		To:             to,
		OpeningBalance: accounting.ConvertBalance(openingNet, account.AccountType),
		Entries:        entries,
		PeriodTotals: domain.DebitCreditTotals{
			Debit:  periodDebit,
			Credit: periodCredit,
		},
		ClosingBalance: accounting.ConvertBalance(running, account.AccountType),
	}, nil
}
