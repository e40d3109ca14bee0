package server

import (
	"github.com/gofiber/fiber/v2"

	"postboard/internal/models"
)

// GetAllUsers handles GET /api/admin/users
// @Summary List all users
// @Description Retrieves all registered users (admin only)
// @Tags admin
// @Produce json
// @Success 200 {array} models.UserResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	users := s.store.ListUsers()
	response := make([]models.UserResponse, 0, len(users))
	for i := range users {
		response = append(response, users[i].ToResponse())
	}
	return c.JSON(response)
}

// LockUser handles POST /api/admin/users/:id/lock
// @Summary Lock a user account
// @Tags admin
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/lock [post]
func (s *Server) LockUser(c *fiber.Ctx) error {
	// TODO: implement account locking once the store tracks a locked flag.
	return c.SendStatus(fiber.StatusNoContent)
}

// UnlockUser handles POST /api/admin/users/:id/unlock
// @Summary Unlock a user account
// @Tags admin
// @Param id path string true "User ID"
// @Success 204
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/users/{id}/unlock [post]
func (s *Server) UnlockUser(c *fiber.Ctx) error {
	// TODO: implement account unlocking once the store tracks a locked flag.
	return c.SendStatus(fiber.StatusNoContent)
}
