package middleware

import (
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	"gestao_servicos/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var warnOnce sync.Once

// Session validates the Bearer token on every request. The books are a
// single-operator system; the token only proves the caller logged in, there
// are no roles. With JWT_SECRET unset the server runs open, which is the
// local development mode.
func Session() gin.HandlerFunc {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		warnOnce.Do(func() {
			log.Printf("[session][middleware] JWT_SECRET not set, running without authentication")
		})
		return func(c *gin.Context) { c.Next() }
	}

	unauthorized := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid session token", http.StatusUnauthorized)

	return func(c *gin.Context) {
		authz := c.GetHeader("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if sub, ok := claims["sub"].(string); ok {
				c.Set("session_subject", sub)
			}
		}
		c.Next()
	}
}
