package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adrianhuber/accounts-api/config"
	"github.com/adrianhuber/accounts-api/internal/application"
	"github.com/adrianhuber/accounts-api/pkg/helpers"
	"github.com/adrianhuber/accounts-api/pkg/mailer"
	"github.com/adrianhuber/accounts-api/pkg/response"
	"github.com/adrianhuber/accounts-api/pkg/validation"
)

// AuthHandler exposes account creation and session issuing.
type AuthHandler struct {
	Register     *application.RegisterUser
	Authenticate *application.AuthenticateUser
	Logger       *logrus.Logger
	Cfg          *config.Config
	Pub          *helpers.RabbitPublisher
}

func NewAuthHandler(register *application.RegisterUser, authenticate *application.AuthenticateUser, logger *logrus.Logger, cfg *config.Config, pub *helpers.RabbitPublisher) *AuthHandler {
	return &AuthHandler{Register: register, Authenticate: authenticate, Logger: logger, Cfg: cfg, Pub: pub}
}

// CreateAccount handles POST /accounts.
// 201 empty body on success; 400 on validation failure or taken email.
func (h *AuthHandler) CreateAccount(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	result, err := h.Register.Execute(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.Logger.WithError(err).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	if result.IsLeft() {
		response.Error(c, http.StatusBadRequest, result.Left().Error(), nil)
		return
	}

	h.enqueueWelcome(c, result.Right().User.Name, result.Right().User.Email)
	c.Status(http.StatusCreated)
}

// CreateSession handles POST /sessions.
// 201 {access_token} on success; 400 with one shared message for both
// unknown email and wrong password.
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	result, err := h.Authenticate.Execute(c.Request.Context(), application.AuthenticateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.Logger.WithError(err).Error("authenticate failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	if result.IsLeft() {
		response.Error(c, http.StatusBadRequest, result.Left().Error(), nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"access_token": result.Right().AccessToken})
}

// enqueueWelcome fires the welcome email job; failures are logged and
// never surface to the registration response.
func (h *AuthHandler) enqueueWelcome(c *gin.Context, name, email string) {
	if h.Pub == nil || h.Cfg == nil || !h.Cfg.MailSendEnabled {
		return
	}
	job := mailer.NewWelcomeJob(h.Cfg.AppName, name, email)
	if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil {
		h.Logger.WithError(err).Warn("enqueue welcome email failed")
	}
}
