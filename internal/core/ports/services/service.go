package services

// ServiceContainer holds instances of all the application services. It is the
// main entry point for accessing service functionality and is what the
// handlers receive.
type ServiceContainer struct {
	Auth        AuthSvcFacade
	User        UserSvcFacade
	Space       SpaceSvcFacade
	Category    CategorySvcFacade
	Transaction TransactionSvcFacade
	Reporting   ReportingSvcFacade
}
