package pgsql_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/seojun-park/bookkeeper/internal/core/domain"
)

// An entry posting two lines to the same account counts as two transactions
// for that account, matching the number of recent lines it produces.
func (suite *BalanceRepositoryIntegrationSuite) TestAccountActivity_CountsLines() {
	cash := suite.createAccount("101", domain.Asset)
	sales := suite.createAccount("401", domain.Revenue)

	suite.createEntry(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), []domain.JournalLine{
		{AccountID: cash.AccountID, Debit: decimal.NewFromInt(40000)},
		{AccountID: cash.AccountID, Debit: decimal.NewFromInt(20000)},
		{AccountID: sales.AccountID, Credit: decimal.NewFromInt(60000)},
	})

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	activity, err := suite.repos.ReportingRepo.AccountActivity(suite.ctx, from, to, 5)
	suite.Require().NoError(err)

	cashActivity := activity[cash.AccountID]
	suite.Equal(int64(2), cashActivity.TransactionCount)
	suite.Len(cashActivity.RecentLines, 2)
	suite.True(cashActivity.PeriodDebit.Equal(decimal.NewFromInt(60000)))

	suite.Equal(int64(1), activity[sales.AccountID].TransactionCount)
}
