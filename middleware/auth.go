package middleware

import (
	"strings"

	"pooja-booking/constants"
	"pooja-booking/logger"
	"pooja-booking/types"
	"pooja-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// IsAuthenticated checks for a valid JWT token in the Authorization header
// or the access cookie. When requiredRoles is non-empty the token's role
// claim must match one of them. Verified claims are attached to the request
// as Locals("user").
func IsAuthenticated(requiredRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		var token string

		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
					Message: "Invalid authorization header format",
					Status:  fiber.StatusUnauthorized,
				})
			}
			token = tokenParts[1]
		} else {
			// Fall back to the access cookie set at login
			token = c.Cookies("access")
			if token == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
					Message: "Authorization token missing",
					Status:  fiber.StatusUnauthorized,
				})
			}
		}

		claims, err := utils.VerifyAccessToken(token)
		if err != nil {
			logger.Error("JWT verification failed", err)
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Session expired. Login again.",
				Status:  fiber.StatusUnauthorized,
			})
		}

		role, _ := claims["role"].(string)
		if len(requiredRoles) > 0 && !hasRole(role, requiredRoles) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Message: "Insufficient permissions",
				Status:  fiber.StatusForbidden,
			})
		}

		c.Locals("user", map[string]interface{}(claims))

		return c.Next()
	}
}

// RequireAuthentication accepts any valid session regardless of role
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated()
}

// RequireAdmin restricts a route to the shared admin credential
func RequireAdmin() fiber.Handler {
	return IsAuthenticated(constants.RoleAdmin)
}

func hasRole(role string, required []string) bool {
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}
