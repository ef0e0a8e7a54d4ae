package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adrianhuber/accounts-api/internal/domain/repository"
	"github.com/adrianhuber/accounts-api/pkg/response"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserHandler(repo repository.UserRepository, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Repo: repo, Logger: logger}
}

type profileResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Me handles GET /me; userID is set by the auth middleware.
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString("userID")
	if uid == "" {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	u, err := h.Repo.FindByID(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "user not found", nil)
			return
		}
		h.Logger.WithError(err).Error("profile lookup failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	})
}
