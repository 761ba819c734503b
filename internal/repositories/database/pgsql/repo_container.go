package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/owna-app/owna_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	walletRepo := newPgxWalletRepository(dbPool)
	savingsRepo := newPgxSavingsRepository(dbPool)
	productRepo := newPgxProductRepository(dbPool)
	favoritesRepo := newPgxFavoritesRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		WalletRepo:    walletRepo,
		SavingsRepo:   savingsRepo,
		ProductRepo:   productRepo,
		FavoritesRepo: favoritesRepo,
		UserRepo:      userRepo,
	}
}
