package middleware

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// CurrentClaims extracts the JWT claims placed in context by JWTProtected.
func CurrentClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// CurrentUserID extracts the authenticated user's id from the sub claim.
func CurrentUserID(c *fiber.Ctx) (uint, error) {
	claims, err := CurrentClaims(c)
	if err != nil {
		return 0, err
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("missing sub claim")
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, errors.New("malformed sub claim")
	}
	return uint(id), nil
}

// IsAdminClaim reports whether the token carries is_admin. Admin routes
// still verify against the DB; this is only a fast path for read handlers.
func IsAdminClaim(c *fiber.Ctx) bool {
	claims, err := CurrentClaims(c)
	if err != nil {
		return false
	}
	isAdmin, _ := claims["is_admin"].(bool)
	return isAdmin
}
