package server

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/models"
)

func TestGetAllUsers_AdminOnly(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, "admin", "admin123")
	user := login(t, app, "user", "user123")

	// Non-admin is refused
	resp := doJSON(t, app, fiber.MethodGet, "/api/admin/users", user, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Unauthenticated is refused earlier
	resp = doJSON(t, app, fiber.MethodGet, "/api/admin/users", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/admin/users", admin, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	users := decodeBody[[]models.UserResponse](t, resp)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Contains(t, users[0].Roles, "admin")
	assert.Equal(t, "user", users[1].Username)
}

func TestLockUnlockUser_NoOpPlaceholders(t *testing.T) {
	app, _ := newTestApp(t)
	admin := login(t, app, "admin", "admin123")
	user := login(t, app, "user", "user123")

	users := func() []models.UserResponse {
		resp := doJSON(t, app, fiber.MethodGet, "/api/admin/users", admin, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		return decodeBody[[]models.UserResponse](t, resp)
	}()
	target := users[1].ID

	resp := doJSON(t, app, fiber.MethodPost, "/api/admin/users/"+target+"/lock", admin, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Locking is a placeholder; the account still authenticates
	_ = login(t, app, "user", "user123")

	resp = doJSON(t, app, fiber.MethodPost, "/api/admin/users/"+target+"/unlock", admin, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Role gate applies to lock/unlock as well
	resp = doJSON(t, app, fiber.MethodPost, "/api/admin/users/"+target+"/lock", user, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
