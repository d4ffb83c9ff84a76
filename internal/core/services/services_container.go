package services

import (
	portsrepo "github.com/brewnotes/brewnotes_app/internal/core/ports/repositories"
	portssvc "github.com/brewnotes/brewnotes_app/internal/core/ports/services"
	"github.com/brewnotes/brewnotes_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Session = NewSessionService(repos.SessionRepo, cfg.SessionTTL)
	container.GithubOAuth = NewGithubOAuthService(cfg)
	container.Cafe = NewCafeService(repos.CafeRepo)
	container.Coffee = NewCoffeeService(repos.CoffeeRepo, repos.CafeRepo)
	container.Note = NewNoteService(repos.NoteRepo, repos.CoffeeRepo)

	return container
}
