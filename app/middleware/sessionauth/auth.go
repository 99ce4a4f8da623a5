package sessionauth

import (
	"context"
	"net/http"

	"homegnome/domain/account"

	"github.com/labstack/echo/v4"
)

const (
	HeaderToken    = "X-Session-Token"
	userContextKey = "sessionauth.user"
)

type Sessions interface {
	Current(ctx context.Context, token string) (*account.User, error)
}

// Middleware resolves the session token header to the current user and
// stashes it in the request context for handlers.
func Middleware(sessions Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderToken)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			u, err := sessions.Current(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
			}

			SetCurrentUser(c, u)
			return next(c)
		}
	}
}

// SetCurrentUser stashes the resolved user on the request context.
func SetCurrentUser(c echo.Context, u *account.User) {
	c.Set(userContextKey, u)
}

// CurrentUser returns the user resolved by Middleware, or nil outside an
// authenticated route.
func CurrentUser(c echo.Context) *account.User {
	u, _ := c.Get(userContextKey).(*account.User)
	return u
}
