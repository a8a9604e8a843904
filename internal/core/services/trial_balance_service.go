package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portsrepo "github.com/seojun-park/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
	"github.com/seojun-park/bookkeeper/internal/utils/accounting"
)

// recentLinesPerAccount caps the drill-down postings carried on each trial
// balance row.
const recentLinesPerAccount = 5

type trialBalanceService struct {
	BaseService
	accountRepo   portsrepo.AccountRepository
	reportingRepo portsrepo.ReportingRepository
}

// NewTrialBalanceService creates the trial balance report composer.
func NewTrialBalanceService(accountRepo portsrepo.AccountRepository, reportingRepo portsrepo.ReportingRepository) portssvc.TrialBalanceService {
	return &trialBalanceService{
		accountRepo:   accountRepo,
		reportingRepo: reportingRepo,
	}
}

var _ portssvc.TrialBalanceService = (*trialBalanceService)(nil)

// TrialBalance composes the report for the inclusive [from, to] window.
// Opening balances take every posting strictly before from; the window itself
// is inclusive on both ends. Every active account gets a row, ordered by
// account code. Column totals sum the
// ending balances by direction, and the report is balanced exactly when the
// two totals agree.
func (s *trialBalanceService) TrialBalance(ctx context.Context, from, to time.Time) (*domain.TrialBalanceReport, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidDateRange
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, true)
	if err != nil {
		s.LogError(ctx, err, "failed to list accounts for trial balance")
		return nil, err
	}

	opening, err := s.reportingRepo.OpeningTotals(ctx, from)
	if err != nil {
		s.LogError(ctx, err, "failed to load opening totals")
		return nil, err
	}

	activity, err := s.reportingRepo.AccountActivity(ctx, from, to, recentLinesPerAccount)
	if err != nil {
		s.LogError(ctx, err, "failed to load account activity")
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		From:        from,
		To:          to,
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}

	for _, account := range accounts {
		open, hasOpening := opening[account.AccountID]
		act, hasActivity := activity[account.AccountID]
		// Every active account gets a row, dormant or not. Inactive accounts
		// only appear while they still carry an opening balance or activity,
		// which deactivation rules normally prevent.
		if !account.IsActive && !hasOpening && !hasActivity {
			continue
		}

		openingNet := open.Debit.Sub(open.Credit)
		endingNet := openingNet.Add(act.PeriodDebit).Sub(act.PeriodCredit)

		recent := act.RecentLines
		if recent == nil {
			recent = []domain.RecentLine{}
		}

		ending := accounting.ConvertBalance(endingNet, account.AccountType)
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:      account.AccountID,
			Code:           account.Code,
			Name:           account.Name,
			AccountType:    account.AccountType,
			OpeningBalance: accounting.ConvertBalance(openingNet, account.AccountType),
			PeriodActivity: domain.DebitCreditTotals{
				Debit:  act.PeriodDebit,
				Credit: act.PeriodCredit,
			},
			EndingBalance:    ending,
			TransactionCount: act.TransactionCount,
			RecentLines:      recent,
		})

		if ending.Direction == domain.Debit {
			report.TotalDebit = report.TotalDebit.Add(ending.Amount)
		} else {
			report.TotalCredit = report.TotalCredit.Add(ending.Amount)
		}
	}

	report.IsBalanced = report.TotalDebit.Equal(report.TotalCredit)
	return report, nil
}
