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

type GeneralLedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo   *MockAccountRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.GeneralLedgerService
	ctx               context.Context

	cash domain.Account
	from time.Time
	to   time.Time
}

func (suite *GeneralLedgerServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewGeneralLedgerService(suite.mockAccountRepo, suite.mockReportingRepo)
	suite.ctx = context.Background()

	suite.cash = domain.Account{AccountID: "acc-101", Code: "101", Name: "Cash", AccountType: domain.Asset, IsActive: true}
	suite.from = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *GeneralLedgerServiceTestSuite) TestGeneralLedger_RunningBalances() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "acc-101").Return(&suite.cash, nil).Once()
	suite.mockReportingRepo.On("OpeningTotals", suite.ctx, suite.from).
		Return(map[string]domain.DebitCreditTotals{
			"acc-101": {Debit: decimal.NewFromInt(1000000), Credit: decimal.NewFromInt(400000)},
		}, nil).Once()
	suite.mockReportingRepo.On("AccountLedgerLines", suite.ctx, "acc-101", suite.from, suite.to, "").
		Return([]domain.LedgerEntry{
			{EntryID: "e1", Date: suite.from.AddDate(0, 0, 1), Debit: decimal.NewFromInt(300000), Credit: decimal.Zero},
			{EntryID: "e2", Date: suite.from.AddDate(0, 0, 4), Debit: decimal.Zero, Credit: decimal.NewFromInt(900000)},
		}, nil).Once()

	report, err := suite.service.GeneralLedger(suite.ctx, "acc-101", suite.from, suite.to, "")

	suite.Require().NoError(err)
	suite.Equal("101", report.Code)

	suite.Equal(domain.Debit, report.OpeningBalance.Direction)
	suite.True(report.OpeningBalance.Amount.Equal(decimal.NewFromInt(600000)))

	suite.Require().Len(report.Entries, 2)
	suite.True(report.Entries[0].RunningBalance.Amount.Equal(decimal.NewFromInt(900000)))
	suite.Equal(domain.Debit, report.Entries[0].RunningBalance.Direction)

	// 900,000 debit minus a 900,000 credit crosses zero exactly; a zero
	// balance reports the account type's normal side.
	suite.True(report.Entries[1].RunningBalance.Amount.IsZero())
	suite.Equal(domain.Debit, report.Entries[1].RunningBalance.Direction)

	suite.True(report.PeriodTotals.Debit.Equal(decimal.NewFromInt(300000)))
	suite.True(report.PeriodTotals.Credit.Equal(decimal.NewFromInt(900000)))
	suite.True(report.ClosingBalance.Amount.IsZero())
	suite.Equal(domain.Debit, report.ClosingBalance.Direction)
}

func (suite *GeneralLedgerServiceTestSuite) TestGeneralLedger_SearchPassedThrough() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "acc-101").Return(&suite.cash, nil).Once()
	suite.mockReportingRepo.On("OpeningTotals", suite.ctx, suite.from).
		Return(map[string]domain.DebitCreditTotals{}, nil).Once()
	suite.mockReportingRepo.On("AccountLedgerLines", suite.ctx, "acc-101", suite.from, suite.to, "rent").
		Return([]domain.LedgerEntry{}, nil).Once()

	report, err := suite.service.GeneralLedger(suite.ctx, "acc-101", suite.from, suite.to, "rent")

	suite.Require().NoError(err)
	suite.Empty(report.Entries)
	suite.True(report.OpeningBalance.Amount.IsZero())
	suite.True(report.ClosingBalance.Amount.IsZero())
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *GeneralLedgerServiceTestSuite) TestGeneralLedger_UnknownAccount() {
	suite.mockAccountRepo.On("FindAccountByID", suite.ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GeneralLedger(suite.ctx, "nope", suite.from, suite.to, "")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GeneralLedgerServiceTestSuite) TestGeneralLedger_InvalidRange() {
	_, err := suite.service.GeneralLedger(suite.ctx, "acc-101", suite.to, suite.from, "")
	suite.ErrorIs(err, apperrors.ErrInvalidDateRange)
}

func TestGeneralLedgerService(t *testing.T) {
	suite.Run(t, new(GeneralLedgerServiceTestSuite))
}
