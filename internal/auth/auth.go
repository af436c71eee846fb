package auth

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Claims is the identity carried by a bearer token.
type Claims struct {
	UserID     int      `json:"userId"`
	EmployeeID string   `json:"employeeId"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
}

// ClaimsFromCtx extracts the token claims stored in `c.Locals("user")` by the
// JWT middleware. Several handlers need the caller identity, so the helper
// lives here for reuse.
func ClaimsFromCtx(c *fiber.Ctx) (Claims, error) {
	u := c.Locals("user")
	if u == nil {
		return Claims{}, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return Claims{}, fiber.ErrUnauthorized
	}
	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, fiber.ErrUnauthorized
	}

	claims := Claims{}

	switch v := mapClaims["userId"].(type) {
	case float64:
		claims.UserID = int(v)
	case int:
		claims.UserID = v
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return Claims{}, fiber.ErrUnauthorized
		}
		claims.UserID = id
	default:
		return Claims{}, fiber.ErrUnauthorized
	}

	if v, ok := mapClaims["employeeId"].(string); ok {
		claims.EmployeeID = v
	} else {
		return Claims{}, fiber.ErrUnauthorized
	}
	if v, ok := mapClaims["email"].(string); ok {
		claims.Email = v
	}
	if raw, ok := mapClaims["roles"].([]interface{}); ok {
		for _, r := range raw {
			if name, ok := r.(string); ok {
				claims.Roles = append(claims.Roles, name)
			}
		}
	}

	return claims, nil
}
