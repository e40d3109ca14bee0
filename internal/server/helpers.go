package server

import "github.com/gofiber/fiber/v2"

// caller holds the authenticated caller's identity extracted from locals.
type caller struct {
	ID       string
	Username string
	Roles    []string
}

// currentCaller reads the identity the auth middleware stored in locals.
// Only valid on routes behind AuthRequired.
func currentCaller(c *fiber.Ctx) caller {
	id, _ := c.Locals("userID").(string)
	username, _ := c.Locals("username").(string)
	roles, _ := c.Locals("roles").([]string)
	return caller{ID: id, Username: username, Roles: roles}
}
