package router

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/rumenji/messagely/internal/application"
	pginfra "github.com/rumenji/messagely/internal/infrastructure/postgres"
	handlers "github.com/rumenji/messagely/internal/interface/http"
	"github.com/rumenji/messagely/internal/router/modules"
	"github.com/rumenji/messagely/pkg/helpers"
)

// Deps carries the process-wide singletons the modules are built from.
// Everything is injected explicitly so tests can substitute fakes.
type Deps struct {
	Pool       *pgxpool.Pool
	Tokens     *helpers.TokenManager
	Logger     *logrus.Logger
	BcryptCost int
}

// InitModules builds repositories, services, and handlers, and registers all
// feature modules with the router registry. Called once during startup.
func InitModules(r *Registry, d Deps) {
	users := pginfra.NewUserRepository(d.Pool)
	messages := pginfra.NewMessageRepository(d.Pool)

	userSvc := application.NewUserService(users, messages, d.BcryptCost, d.Logger)
	messageSvc := application.NewMessageService(messages, d.Logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, d.Tokens, d.Logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, d.Logger), d.Tokens))
	r.Add(modules.NewMessageModule(handlers.NewMessageHandler(messageSvc, d.Logger), d.Tokens))
}
