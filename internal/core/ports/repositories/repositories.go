package repositories

// RepositoryProvider bundles every repository facade for dependency
// injection at startup.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	BankRepo      BankRepositoryFacade
	InventoryRepo InventoryRepositoryFacade
	PartyRepo     PartyRepositoryFacade
}
