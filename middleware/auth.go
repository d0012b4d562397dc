package middleware

import (
	"strings"

	"samaj-backend/types"
	"samaj-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RequireRoles verifies the bearer token and gates the route on the
// embedded role claim. Missing or bad credentials are 401; a valid
// credential with the wrong role is 403.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Authorization token missing",
				Status:  fiber.StatusUnauthorized,
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid authorization header format",
				Status:  fiber.StatusUnauthorized,
			})
		}

		claims, err := utils.ParseToken(tokenParts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ErrorResponse{
				Message: "Invalid or expired token",
				Status:  fiber.StatusUnauthorized,
			})
		}

		role, _ := claims["role"].(string)
		if role == "" {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "No role found in token",
				Status:  fiber.StatusForbidden,
			})
		}
		if !allowed[role] {
			return c.Status(fiber.StatusForbidden).JSON(types.ErrorResponse{
				Message: "Access denied. Insufficient privileges.",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// UserID extracts the authenticated account id from the request context
func UserID(c *fiber.Ctx) (uint, bool) {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// Role extracts the authenticated role from the request context
func Role(c *fiber.Ctx) string {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}
