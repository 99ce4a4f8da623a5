// Package auth handles registration, login, and logout of the single local
// identity.
package auth

import (
	"context"
	"errors"
	"net/http"

	"homegnome/app/service/session"
	"homegnome/domain/account"

	"github.com/labstack/echo/v4"
)

type (
	Sessions interface {
		Register(ctx context.Context, name, phone, password string) (*account.User, error)
		Login(ctx context.Context, phone, password string) (*account.User, error)
		Logout(ctx context.Context) error
	}

	Handler struct {
		sessions Sessions
	}

	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required,min=4"`
	}

	LoginRequest struct {
		Phone    string `json:"phone" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	// UserResponse deliberately omits the password hash.
	UserResponse struct {
		ID               string   `json:"id"`
		Name             string   `json:"name"`
		Phone            string   `json:"phone"`
		CompletedTasks   int      `json:"completed_tasks"`
		CompletedTaskIDs []string `json:"completed_task_ids,omitempty"`
		Token            string   `json:"token,omitempty"`
	}
)

func NewHandler(sessions Sessions) *Handler {
	return &Handler{sessions: sessions}
}

func (h Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	u, err := h.sessions.Register(c.Request().Context(), req.Name, req.Phone, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to register: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, ToUserResponse(u))
}

func (h Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	u, err := h.sessions.Login(c.Request().Context(), req.Phone, req.Password)
	if errors.Is(err, session.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to log in: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, ToUserResponse(u))
}

func (h Handler) Logout(c echo.Context) error {
	if err := h.sessions.Logout(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to log out: " + err.Error(),
		})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RegisterRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout, auth)
}

func ToUserResponse(u *account.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Phone:            u.Phone,
		CompletedTasks:   u.CompletedTasks,
		CompletedTaskIDs: u.CompletedTaskIDs,
		Token:            u.Token,
	}
}
