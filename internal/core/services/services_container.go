package services

import (
	portsrepo "github.com/seojun-park/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/seojun-park/bookkeeper/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:       NewAccountService(repos.AccountRepo, repos.BalanceRepo),
		Journal:       NewJournalService(repos.JournalRepo, repos.AccountRepo),
		TrialBalance:  NewTrialBalanceService(repos.AccountRepo, repos.ReportingRepo),
		GeneralLedger: NewGeneralLedgerService(repos.AccountRepo, repos.ReportingRepo),
	}
}
