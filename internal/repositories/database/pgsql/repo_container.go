package pgsql

import (
	portsrepo "github.com/brewnotes/brewnotes_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    newPgxUserRepository(dbPool),
		SessionRepo: newPgxSessionRepository(dbPool),
		NoteRepo:    newPgxNoteRepository(dbPool),
		CoffeeRepo:  newPgxCoffeeRepository(dbPool),
		CafeRepo:    newPgxCafeRepository(dbPool),
	}
}
