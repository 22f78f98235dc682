package kvsqlite

import (
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	"github.com/cwsbrian/mone-mori-app/internal/kvstore"
)

// NewRepositoryContainer builds every repository over one shared store.
func NewRepositoryContainer(store *kvstore.Store) *portsrepo.RepositoryContainer {
	return &portsrepo.RepositoryContainer{
		User:        newKVUserRepository(store),
		Space:       newKVSpaceRepository(store),
		Category:    newKVCategoryRepository(store),
		Transaction: newKVTransactionRepository(store),
		Preference:  newKVPreferenceRepository(store),
	}
}
