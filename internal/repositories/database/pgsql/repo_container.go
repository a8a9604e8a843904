package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/seojun-park/bookkeeper/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	balanceRepo := newPgxBalanceRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool, balanceRepo)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:   accountRepo,
		JournalRepo:   journalRepo,
		BalanceRepo:   balanceRepo,
		ReportingRepo: reportingRepo,
	}
}
