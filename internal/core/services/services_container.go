package services

import (
	portsrepo "github.com/owna-app/owna_backend/internal/core/ports/repositories"
	portssvc "github.com/owna-app/owna_backend/internal/core/ports/services"
	"github.com/owna-app/owna_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Wallet = NewWalletService(repos.WalletRepo)
	container.Savings = NewSavingsService(repos.SavingsRepo)
	container.Product = NewProductService(repos.ProductRepo)

	// The coordinator sits on top of the three services above
	container.GoalFunding = NewGoalFundingService(container.Wallet, container.Savings, container.Product)

	container.Favorites = NewFavoritesService(repos.FavoritesRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, repos.UserRepo)

	return container
}
