package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"homegnome/app/service/session"
	"homegnome/domain/account"
	"homegnome/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSessions struct {
	registerFunc func(ctx context.Context, name, phone, password string) (*account.User, error)
	loginFunc    func(ctx context.Context, phone, password string) (*account.User, error)
	logoutFunc   func(ctx context.Context) error
}

func (m *mockSessions) Register(ctx context.Context, name, phone, password string) (*account.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, name, phone, password)
	}
	return &account.User{}, nil
}

func (m *mockSessions) Login(ctx context.Context, phone, password string) (*account.User, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, phone, password)
	}
	return nil, session.ErrInvalidCredentials
}

func (m *mockSessions) Logout(ctx context.Context) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx)
	}
	return nil
}

func newContext(t *testing.T, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Register(t *testing.T) {
	t.Run("should create the identity and return a token", func(t *testing.T) {
		sessions := &mockSessions{
			registerFunc: func(ctx context.Context, name, phone, password string) (*account.User, error) {
				return &account.User{
					ID:           "usr_123",
					Name:         name,
					Phone:        phone,
					PasswordHash: "$2a$10$hash",
					Token:        "tok-1",
				}, nil
			},
		}
		handler := NewHandler(sessions)

		c, rec := newContext(t, RegisterRequest{Name: "Vladimir", Phone: "111", Password: "secret"})

		err := handler.Register(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp UserResponse
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "usr_123", resp.ID)
		assert.Equal(t, "tok-1", resp.Token)
		assert.NotContains(t, rec.Body.String(), "password_hash")
	})

	t.Run("should return 400 when a field is missing", func(t *testing.T) {
		handler := NewHandler(&mockSessions{})

		c, _ := newContext(t, RegisterRequest{Name: "Vladimir", Phone: "111"})

		err := handler.Register(c)
		require.Error(t, err)

		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestHandler_Login(t *testing.T) {
	t.Run("should return the user on matching credentials", func(t *testing.T) {
		sessions := &mockSessions{
			loginFunc: func(ctx context.Context, phone, password string) (*account.User, error) {
				return &account.User{ID: "usr_123", Phone: phone, Token: "tok-2"}, nil
			},
		}
		handler := NewHandler(sessions)

		c, rec := newContext(t, LoginRequest{Phone: "111", Password: "secret"})

		err := handler.Login(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp UserResponse
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "tok-2", resp.Token)
	})

	t.Run("should return 401 on credential mismatch", func(t *testing.T) {
		handler := NewHandler(&mockSessions{})

		c, rec := newContext(t, LoginRequest{Phone: "111", Password: "wrong"})

		err := handler.Login(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Run("should clear the session", func(t *testing.T) {
		cleared := false
		sessions := &mockSessions{
			logoutFunc: func(ctx context.Context) error {
				cleared = true
				return nil
			},
		}
		handler := NewHandler(sessions)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Logout(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, cleared)
	})
}
