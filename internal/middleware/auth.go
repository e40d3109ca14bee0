package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"postboard/internal/auth"
	"postboard/internal/config"
	"postboard/internal/models"
)

// AuthRequired returns middleware that enforces bearer authentication.
// It validates the signature, issuer and audience against configuration
// and stores userID, username and roles in request locals.
func AuthRequired(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid authorization header format"))
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithIssuer(cfg.JWTIssuer), jwt.WithAudience(cfg.JWTAudience))

		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token structure - missing subject"))
		}

		username, _ := claims[auth.ClaimUsername].(string)

		c.Locals("userID", sub)
		c.Locals("username", username)
		c.Locals("roles", roleClaims(claims))

		// Sync to UserContext for the context-aware logger
		ctx := context.WithValue(c.UserContext(), UserIDKey, sub)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// RoleRequired returns middleware that rejects callers lacking the given
// role with 403. Must be placed after AuthRequired so roles are in locals.
func RoleRequired(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, _ := c.Locals("roles").([]string)
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Insufficient role"))
	}
}

// roleClaims extracts the role claim, which serializes as a plain string
// for a single role and as an array for several.
func roleClaims(claims jwt.MapClaims) []string {
	switch v := claims[auth.ClaimRole].(type) {
	case string:
		return []string{v}
	case []any:
		roles := make([]string, 0, len(v))
		for _, r := range v {
			if s, ok := r.(string); ok {
				roles = append(roles, s)
			}
		}
		return roles
	}
	return nil
}
