package services

// ServiceContainer holds all the services that are used by the handlers
type ServiceContainer struct {
	Ledger    LedgerService
	EntryView EntryViewService
	Account   AccountService
	Reporting ReportingService
}
