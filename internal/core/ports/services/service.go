package services

// ServiceContainer holds instances of all the application services.
// It is built once at startup and handed to every presentation layer.
type ServiceContainer struct {
	Ledger LedgerSvcFacade
	ATM    ATMSvcFacade
}
