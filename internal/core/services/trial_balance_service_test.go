package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/seojun-park/bookkeeper/internal/apperrors"
	"github.com/seojun-park/bookkeeper/internal/core/domain"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
	"github.com/seojun-park/bookkeeper/internal/core/services"
)

type TrialBalanceServiceTestSuite struct {
	suite.Suite
	mockAccountRepo   *MockAccountRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.TrialBalanceService
	ctx               context.Context

	cash    domain.Account
	capital domain.Account
	salary  domain.Account
	from    time.Time
	to      time.Time
}

func (suite *TrialBalanceServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewTrialBalanceService(suite.mockAccountRepo, suite.mockReportingRepo)
	suite.ctx = context.Background()

	suite.cash = domain.Account{AccountID: "acc-101", Code: "101", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	suite.capital = domain.Account{AccountID: "acc-301", Code: "301", Name: "Capital", AccountType: domain.Equity, IsActive: true}
	suite.salary = domain.Account{AccountID: "acc-501", Code: "501", Name: "Salary Expense", AccountType: domain.Expense, IsActive: true}
	suite.from = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
}

// January statement over two entries: capital of 3,000,000 into cash on the
// 2nd, salaries of 800,000 out of cash on the 5th.
func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_JanuaryStatement() {
	suite.mockAccountRepo.On("ListAccounts", suite.ctx, true).
		Return([]domain.Account{suite.cash, suite.capital, suite.salary}, nil).Once()
	suite.mockReportingRepo.On("OpeningTotals", suite.ctx, suite.from).
		Return(map[string]domain.DebitCreditTotals{}, nil).Once()
	suite.mockReportingRepo.On("AccountActivity", suite.ctx, suite.from, suite.to, 5).
		Return(map[string]domain.AccountActivity{
			"acc-101": {
				AccountID:        "acc-101",
				PeriodDebit:      decimal.NewFromInt(3000000),
				PeriodCredit:     decimal.NewFromInt(800000),
				TransactionCount: 2,
			},
			"acc-301": {
				AccountID:        "acc-301",
				PeriodCredit:     decimal.NewFromInt(3000000),
				PeriodDebit:      decimal.Zero,
				TransactionCount: 1,
			},
			"acc-501": {
				AccountID:        "acc-501",
				PeriodDebit:      decimal.NewFromInt(800000),
				PeriodCredit:     decimal.Zero,
				TransactionCount: 1,
			},
		}, nil).Once()

	report, err := suite.service.TrialBalance(suite.ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 3)

	cashRow := report.Rows[0]
	suite.Equal("101", cashRow.Code)
	suite.Equal(domain.Debit, cashRow.EndingBalance.Direction)
	suite.True(cashRow.EndingBalance.Amount.Equal(decimal.NewFromInt(2200000)))
	suite.Equal(int64(2), cashRow.TransactionCount)

	capitalRow := report.Rows[1]
	suite.Equal(domain.Credit, capitalRow.EndingBalance.Direction)
	suite.True(capitalRow.EndingBalance.Amount.Equal(decimal.NewFromInt(3000000)))

	salaryRow := report.Rows[2]
	suite.Equal(domain.Debit, salaryRow.EndingBalance.Direction)
	suite.True(salaryRow.EndingBalance.Amount.Equal(decimal.NewFromInt(800000)))

	suite.True(report.TotalDebit.Equal(decimal.NewFromInt(3000000)))
	suite.True(report.TotalCredit.Equal(decimal.NewFromInt(3000000)))
	suite.True(report.IsBalanced)
}

func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_OpeningCarriesForward() {
	suite.mockAccountRepo.On("ListAccounts", suite.ctx, true).
		Return([]domain.Account{suite.cash}, nil).Once()
	suite.mockReportingRepo.On("OpeningTotals", suite.ctx, suite.from).
		Return(map[string]domain.DebitCreditTotals{
			"acc-101": {Debit: decimal.NewFromInt(500000), Credit: decimal.NewFromInt(100000)},
		}, nil).Once()
	suite.mockReportingRepo.On("AccountActivity", suite.ctx, suite.from, suite.to, 5).
		Return(map[string]domain.AccountActivity{
			"acc-101": {
				AccountID:        "acc-101",
				PeriodDebit:      decimal.NewFromInt(200000),
				PeriodCredit:     decimal.Zero,
				TransactionCount: 1,
			},
		}, nil).Once()

	report, err := suite.service.TrialBalance(suite.ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)

	row := report.Rows[0]
	suite.True(row.OpeningBalance.Amount.Equal(decimal.NewFromInt(400000)))
	suite.Equal(domain.Debit, row.OpeningBalance.Direction)
	suite.True(row.EndingBalance.Amount.Equal(decimal.NewFromInt(600000)))
}

// Active accounts get a row even with no postings in the window; inactive
// accounts without an opening balance or activity are skipped.
func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_RowSelection() {
	dormant := domain.Account{AccountID: "acc-999", Code: "999", Name: "Dormant", AccountType: domain.Asset, IsActive: true}
	retired := domain.Account{AccountID: "acc-888", Code: "888", Name: "Retired", AccountType: domain.Liability, IsActive: false}

	suite.mockAccountRepo.On("ListAccounts", suite.ctx, true).
		Return([]domain.Account{suite.cash, retired, dormant}, nil).Once()
	suite.mockReportingRepo.On("OpeningTotals", suite.ctx, suite.from).
		Return(map[string]domain.DebitCreditTotals{
			"acc-101": {Debit: decimal.NewFromInt(1000), Credit: decimal.Zero},
		}, nil).Once()
	suite.mockReportingRepo.On("AccountActivity", suite.ctx, suite.from, suite.to, 5).
		Return(map[string]domain.AccountActivity{}, nil).Once()

	report, err := suite.service.TrialBalance(suite.ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 2)
	suite.Equal("101", report.Rows[0].Code)
	suite.Empty(report.Rows[0].RecentLines)

	dormantRow := report.Rows[1]
	suite.Equal("999", dormantRow.Code)
	suite.True(dormantRow.EndingBalance.Amount.IsZero())
	suite.Equal(domain.Debit, dormantRow.EndingBalance.Direction)
	suite.Equal(int64(0), dormantRow.TransactionCount)
}

func (suite *TrialBalanceServiceTestSuite) TestTrialBalance_InvalidRange() {
	_, err := suite.service.TrialBalance(suite.ctx, suite.to, suite.from)
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func TestTrialBalanceService(t *testing.T) {
	suite.Run(t, new(TrialBalanceServiceTestSuite))
}
