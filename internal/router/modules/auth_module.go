package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/adrianhuber/accounts-api/internal/interface/http"
	"github.com/adrianhuber/accounts-api/internal/interface/middleware"
	"github.com/adrianhuber/accounts-api/pkg/helpers"
)

// AuthModule wires the account/session handlers into routes.
// Public: POST /accounts, POST /sessions
// Protected: GET /me
type AuthModule struct {
	Auth *handlers.AuthHandler
	User *handlers.UserHandler
	JWT  *helpers.JWTManager
}

func NewAuthModule(auth *handlers.AuthHandler, user *handlers.UserHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Auth: auth, User: user, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/accounts", m.Auth.CreateAccount)
	rg.POST("/sessions", m.Auth.CreateSession)

	protected := rg.Group("/")
	protected.Use(middleware.Auth(m.JWT))
	{
		protected.GET("/me", m.User.Me)
	}
}
