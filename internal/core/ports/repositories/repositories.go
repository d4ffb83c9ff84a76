package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	UserRepo    UserRepositoryFacade
	SessionRepo SessionRepository
	NoteRepo    NoteRepository
	CoffeeRepo  CoffeeRepository
	CafeRepo    CafeRepository
}
