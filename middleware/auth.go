package middleware

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"Gudang/Models"
)

// SecretKey returns the JWT signing key from the environment.
func SecretKey() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "secret"
	}
	return []byte(secret)
}

// Verify checks the jwt cookie, loads the user and stores it in locals.
// requiredPermission of 0 only checks that the user is logged in.
func Verify(requiredPermission int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Get JWT from cookies
		cookie := c.Cookies("jwt")
		if cookie == "" {
			return redirectOrUnauthorized(c, "Not Logged In.")
		}

		// Parse and validate the token
		token, err := jwt.ParseWithClaims(cookie, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return SecretKey(), nil
		})
		if err != nil {
			return redirectOrUnauthorized(c, "Invalid or expired token")
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			return redirectOrUnauthorized(c, "Invalid token claims")
		}

		// Get user from database
		var user Models.User
		result := Models.DB.Where("id = ?", claims.Issuer).First(&user)
		if result.Error != nil {
			return redirectOrUnauthorized(c, "User not found")
		}

		// Store user in context for later use in handlers
		c.Locals("user", user)

		if user.Permission >= requiredPermission {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Insufficient permissions to access this resource",
		})
	}
}

// redirectOrUnauthorized sends browsers to the login page and API callers a
// 401 JSON body.
func redirectOrUnauthorized(c *fiber.Ctx, message string) error {
	if c.Accepts("html", "json") == "html" {
		return c.Redirect("/login")
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": message,
	})
}
