package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"homegnome/app"
	"homegnome/config"
	"homegnome/internal/validator"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	container := app.NewContainer(db)
	require.NoError(t, container.Migrate())

	e := echo.New()
	e.Validator = validator.New()
	config.AddRoutes(e, container)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, e *echo.Echo, name, phone string) (id, token string) {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name":     name,
		"phone":    phone,
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	return user.ID, user.Token
}

func TestPostFilterScenario(t *testing.T) {
	e := newServer(t)

	_, token := register(t, e, "Vladimir", "111")

	rec := doJSON(t, e, http.MethodPost, "/api/v1/listings", token, map[string]string{
		"role":  "customer",
		"title": "Стрижка газона",
		"price": "1500",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/listings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listings []struct {
		ID           string `json:"id"`
		NumericPrice int64  `json:"numeric_price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, int64(1500), listings[0].NumericPrice)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/listings?role=customer&min_price=1000", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	assert.Len(t, listings, 1)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/listings?role=performer", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	assert.Empty(t, listings)
}

func TestAuthorOnlyCompletionScenario(t *testing.T) {
	e := newServer(t)

	_, tokenA := register(t, e, "A", "111")

	rec := doJSON(t, e, http.MethodPost, "/api/v1/listings", tokenA, map[string]string{
		"role":  "performer",
		"title": "Уборка",
		"price": "2000",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var posted struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posted))

	// B replaces the local identity; the listing's author phone stays 111.
	_, tokenB := register(t, e, "B", "222")

	rec = doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/v1/listings/%s/complete", posted.ID), tokenB, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/listings/"+posted.ID, "", nil)
	var l struct {
		Completed bool `json:"completed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &l))
	assert.False(t, l.Completed, "rejected completion must not flag the listing")
}

func TestCompleteExactlyOnceScenario(t *testing.T) {
	e := newServer(t)

	userID, token := register(t, e, "Vladimir", "111")

	rec := doJSON(t, e, http.MethodPost, "/api/v1/listings", token, map[string]string{
		"role":  "performer",
		"title": "Химчистка",
		"price": "2000-8000 ₽",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var posted struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posted))

	completePath := fmt.Sprintf("/api/v1/listings/%s/complete", posted.ID)

	rec = doJSON(t, e, http.MethodPost, completePath, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var completed struct {
		Completed   bool   `json:"completed"`
		CompletedBy string `json:"completed_by"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	assert.True(t, completed.Completed)
	assert.Equal(t, userID, completed.CompletedBy)

	rec = doJSON(t, e, http.MethodPost, completePath, token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		CompletedTasks   int      `json:"completed_tasks"`
		CompletedTaskIDs []string `json:"completed_task_ids"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, 1, profile.CompletedTasks, "second attempt must not credit the user again")
	assert.Equal(t, []string{posted.ID}, profile.CompletedTaskIDs)
}

func TestLoginLogoutScenario(t *testing.T) {
	e := newServer(t)

	register(t, e, "Vladimir", "111")

	rec := doJSON(t, e, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"phone":    "111",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"phone":    "111",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var user struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	require.NotEmpty(t, user.Token)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/auth/logout", user.Token, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/profile", user.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
