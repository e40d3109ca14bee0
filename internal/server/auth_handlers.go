package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"postboard/internal/auth"
	"postboard/internal/models"
)

// TokenRequest is the body for POST /api/auth/token (ROPC grant).
type TokenRequest struct {
	GrantType string `json:"grant_type"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// IssueToken handles POST /api/auth/token
// @Summary Get access token
// @Description Authenticates user and returns an access token using the password grant
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Token request"
// @Success 200 {object} auth.TokenResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/token [post]
func (s *Server) IssueToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	token, err := s.issuer.IssueToken(req.GrantType, req.Username, req.Password)
	if err != nil {
		// The token endpoint speaks OAuth error literals, not AppError codes.
		switch {
		case errors.Is(err, auth.ErrUnsupportedGrant):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unsupported_grant_type",
			})
		case errors.Is(err, auth.ErrInvalidCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid_grant",
			})
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(token)
}
