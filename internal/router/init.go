package router

import (
	"github.com/adrianhuber/accounts-api/internal/application"
	"github.com/adrianhuber/accounts-api/internal/container"
	pginfra "github.com/adrianhuber/accounts-api/internal/infrastructure/postgres"
	handlers "github.com/adrianhuber/accounts-api/internal/interface/http"
	"github.com/adrianhuber/accounts-api/internal/router/modules"
	"github.com/adrianhuber/accounts-api/pkg/helpers"
)

// InitModules builds the application modules from container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	hasher := helpers.NewBcryptHasher(cfg.BcryptCost)

	register := application.NewRegisterUser(repo, hasher, logger)
	authenticate := application.NewAuthenticateUser(repo, hasher, container.GetJWT(), logger)

	authHandler := handlers.NewAuthHandler(register, authenticate, logger, cfg, container.GetRabbitPub())
	userHandler := handlers.NewUserHandler(repo, logger)

	r.Add(modules.NewAuthModule(authHandler, userHandler, container.GetJWT()))
}
