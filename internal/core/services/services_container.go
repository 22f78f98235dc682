package services

import (
	portsrepo "github.com/cwsbrian/mone-mori-app/internal/core/ports/repositories"
	portssvc "github.com/cwsbrian/mone-mori-app/internal/core/ports/services"
	"github.com/cwsbrian/mone-mori-app/internal/platform/config"
)

// NewServiceContainer wires every service over the repository container. The
// space service comes first since the others use it as membership authorizer.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryContainer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Space = NewSpaceService(repos.Space, repos.Preference)
	authorizer := portssvc.SpaceAuthorizerSvc(container.Space)

	container.Auth = NewAuthService(repos.User, container.Space, cfg)
	container.User = NewUserService(repos.User)
	container.Category = NewCategoryService(repos.Category, authorizer)
	container.Transaction = NewTransactionService(repos.Transaction, repos.Category, repos.User, authorizer)
	container.Reporting = NewReportingService(repos.Transaction, repos.Category, authorizer)

	return container
}
