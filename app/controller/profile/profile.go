// Package profile exposes the current user's record and profile edits.
package profile

import (
	"context"
	"errors"
	"net/http"

	"homegnome/app/controller/auth"
	"homegnome/app/middleware/sessionauth"
	"homegnome/app/service/session"
	"homegnome/domain/account"

	"github.com/labstack/echo/v4"
)

type (
	Profiles interface {
		UpdateProfile(ctx context.Context, name, phone string) (*account.User, error)
	}

	Handler struct {
		profiles Profiles
	}

	UpdateRequest struct {
		Name  string `json:"name" validate:"required"`
		Phone string `json:"phone" validate:"required"`
	}
)

func NewHandler(profiles Profiles) *Handler {
	return &Handler{profiles: profiles}
}

func (h Handler) Show(c echo.Context) error {
	u := sessionauth.CurrentUser(c)
	if u == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	resp := auth.ToUserResponse(u)
	resp.Token = ""
	return c.JSON(http.StatusOK, resp)
}

func (h Handler) Update(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	u, err := h.profiles.UpdateProfile(c.Request().Context(), req.Name, req.Phone)
	if errors.Is(err, session.ErrNotAuthenticated) {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update profile: " + err.Error(),
		})
	}

	resp := auth.ToUserResponse(u)
	resp.Token = ""
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Show)
	g.PUT("", h.Update)
}
