package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zdzdigital/booky-backend/internal/api"
)

func TestAuthFlow(t *testing.T) {
	clearTables()

	t.Run("Register", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/register", api.RegisterRequest{
			Email:       "garage@auth.com",
			Password:    "correct-horse",
			DisplayName: "Garage",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var resp api.RegisterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "garage@auth.com", resp.User.Email)
		assert.False(t, resp.User.IsStaff)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/register", api.RegisterRequest{
			Email:    "garage@auth.com",
			Password: "correct-horse",
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	var token string
	t.Run("Login", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/login", api.LoginRequest{
			Email:    "garage@auth.com",
			Password: "correct-horse",
		}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp api.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.AccessToken)
		token = resp.AccessToken
	})

	t.Run("Login wrong password", func(t *testing.T) {
		w := executeRequest("POST", "/v1/auth/login", api.LoginRequest{
			Email:    "garage@auth.com",
			Password: "wrong",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Me", func(t *testing.T) {
		w := executeRequest("GET", "/v1/me", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp api.MeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "garage@auth.com", resp.User.Email)
	})

	t.Run("Me without token", func(t *testing.T) {
		w := executeRequest("GET", "/v1/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Non staff blocked from staff routes", func(t *testing.T) {
		w := executeRequest("POST", "/v1/business-hours", map[string]any{
			"weekday": 0, "open_time": "08:00", "close_time": "17:00",
		}, token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Staff flag travels in the token", func(t *testing.T) {
		// Promoting the user does not upgrade tokens issued before; the
		// flag is only re-read at login.
		_, err := testPool.Exec(context.Background(),
			"UPDATE public.users SET is_staff = true WHERE email = $1", "garage@auth.com")
		require.NoError(t, err)

		w := executeRequest("POST", "/v1/business-hours", map[string]any{
			"weekday": 0, "open_time": "08:00", "close_time": "17:00",
		}, token)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = executeRequest("POST", "/v1/auth/login", api.LoginRequest{
			Email:    "garage@auth.com",
			Password: "correct-horse",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp api.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		w = executeRequest("POST", "/v1/business-hours", map[string]any{
			"weekday": 0, "open_time": "08:00", "close_time": "17:00",
		}, resp.AccessToken)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}
