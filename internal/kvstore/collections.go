package kvstore

// Collection names used by the repositories. The store itself treats them as
// opaque strings.
const (
	CollectionUsers        = "users"
	CollectionSpaces       = "spaces"
	CollectionCategories   = "categories"
	CollectionTransactions = "transactions"
	CollectionPreferences  = "preferences"
)
