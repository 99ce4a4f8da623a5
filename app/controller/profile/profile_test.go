package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homegnome/app/middleware/sessionauth"
	"homegnome/app/service/session"
	"homegnome/domain/account"
	"homegnome/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProfiles struct {
	updateFunc func(ctx context.Context, name, phone string) (*account.User, error)
}

func (m *mockProfiles) UpdateProfile(ctx context.Context, name, phone string) (*account.User, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, name, phone)
	}
	return nil, session.ErrNotAuthenticated
}

func newContext(t *testing.T, method string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, "/", bytes.NewReader(data))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Show(t *testing.T) {
	t.Run("should return the session user without the token", func(t *testing.T) {
		handler := NewHandler(&mockProfiles{})

		c, rec := newContext(t, http.MethodGet, nil)
		sessionauth.SetCurrentUser(c, &account.User{
			ID:             "usr_123",
			Name:           "Vladimir",
			Phone:          "111",
			CompletedTasks: 2,
			Token:          "tok-1",
		})

		err := handler.Show(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "usr_123", resp["id"])
		assert.Equal(t, "Vladimir", resp["name"])
		assert.Equal(t, float64(2), resp["completed_tasks"])
		assert.NotContains(t, rec.Body.String(), "tok-1")
		assert.NotContains(t, rec.Body.String(), "password_hash")
	})

	t.Run("should return 401 without a session user", func(t *testing.T) {
		handler := NewHandler(&mockProfiles{})

		c, _ := newContext(t, http.MethodGet, nil)

		err := handler.Show(c)
		require.Error(t, err)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("should pass the new fields to the service", func(t *testing.T) {
		profiles := &mockProfiles{
			updateFunc: func(ctx context.Context, name, phone string) (*account.User, error) {
				return &account.User{ID: "usr_123", Name: name, Phone: phone}, nil
			},
		}
		handler := NewHandler(profiles)

		c, rec := newContext(t, http.MethodPut, UpdateRequest{Name: "Volodya", Phone: "222"})

		err := handler.Update(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "Volodya", resp["name"])
		assert.Equal(t, "222", resp["phone"])
	})

	t.Run("should return 400 when a field is missing", func(t *testing.T) {
		handler := NewHandler(&mockProfiles{})

		c, _ := newContext(t, http.MethodPut, UpdateRequest{Name: "Volodya"})

		err := handler.Update(c)
		require.Error(t, err)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("should return 401 when no identity is stored", func(t *testing.T) {
		handler := NewHandler(&mockProfiles{})

		c, _ := newContext(t, http.MethodPut, UpdateRequest{Name: "Volodya", Phone: "222"})

		err := handler.Update(c)
		require.Error(t, err)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})
}
