package services

import (
	portsrepo "github.com/SergioDaniel16/mipymes/internal/core/ports/repositories"
	portssvc "github.com/SergioDaniel16/mipymes/internal/core/ports/services"
	"github.com/SergioDaniel16/mipymes/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(repos.AccountRepo, cfg.CompanyName, cfg.CostOfSalesPrefix)
	container.Bank = NewBankService(repos.BankRepo, cfg.CompanyName)
	container.Inventory = NewInventoryService(repos.InventoryRepo, cfg.CompanyName)
	container.Party = NewPartyService(repos.PartyRepo, cfg.CompanyName)

	return container
}
