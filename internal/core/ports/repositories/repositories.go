package repositories

// RepositoryContainer holds instances of all repository facades. It is built
// by the storage adapter and handed to the service layer.
type RepositoryContainer struct {
	User        UserRepositoryFacade
	Space       SpaceRepositoryFacade
	Category    CategoryRepositoryFacade
	Transaction TransactionRepositoryFacade
	Preference  PreferenceRepository
}
