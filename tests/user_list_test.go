package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zdzdigital/booky-backend/internal/api"
	"github.com/zdzdigital/booky-backend/internal/pkg/response"
)

func TestUserListPagination(t *testing.T) {
	clearTables()

	staff := createTestUser(t, "staff@users.com", "pass", true)
	staffToken := generateToken(staff)
	createTestUser(t, "alpha@users.com", "pass", false)
	createTestUser(t, "beta@users.com", "pass", false)

	t.Run("Paged listing", func(t *testing.T) {
		w := executeRequest("GET", "/v1/users?page=1&page_size=2", nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page response.PageResponse[api.UserResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 3, page.Total)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 1, page.Page)
	})

	t.Run("Email filter", func(t *testing.T) {
		w := executeRequest("GET", "/v1/users?email=alpha", nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[api.UserResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, "alpha@users.com", page.Items[0].Email)
	})

	t.Run("Staff filter", func(t *testing.T) {
		w := executeRequest("GET", "/v1/users?is_staff=true", nil, staffToken)
		require.Equal(t, http.StatusOK, w.Code)

		var page response.PageResponse[api.UserResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page.Items, 1)
		assert.True(t, page.Items[0].IsStaff)
	})

	t.Run("Requires staff", func(t *testing.T) {
		member := createTestUser(t, "member@users.com", "pass", false)
		memberToken := generateToken(member)

		w := executeRequest("GET", "/v1/users", nil, memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
