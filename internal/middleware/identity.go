package middleware

// identity.go attaches a best-effort identity to requests.  No route in
// this service requires authentication, but a client holding the session
// token issued at login may present it; when valid, the subject claim is
// stored in the context and picked up by the rate limiter's key builder.

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// BearerIdentity returns middleware that parses an optional Bearer token
// signed with secret and, when valid, sets "user_id" in the Echo context.
// Invalid or absent tokens never reject the request.
func BearerIdentity(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return next(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return next(c)
			}
			if claims, ok := tok.Claims.(jwt.MapClaims); ok {
				if sub, ok := claims["sub"].(string); ok && sub != "" {
					c.Set("user_id", sub)
				}
			}
			return next(c)
		}
	}
}
