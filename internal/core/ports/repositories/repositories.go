package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	WalletRepo    WalletRepository
	SavingsRepo   SavingsRepository
	ProductRepo   ProductRepository
	FavoritesRepo FavoritesRepository
	UserRepo      UserRepository
}
