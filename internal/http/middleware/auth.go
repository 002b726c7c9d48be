package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey    = "userID"
	userRoleKey  = "userRole"
	authTokenKey = "authToken"
)

// Authenticate reads an optional bearer token issued by the auth service.
// Requests without a token pass through. With a secret configured, a bad token is rejected
// and the role/user claims are placed on the context; without one the token is only forwarded.
func Authenticate(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.Next()
			return
		}
		c.Set(authTokenKey, raw)
		if len(key) == 0 {
			c.Next()
			return
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "unauthorized: invalid token",
				"request_id": GetRequestID(c),
			})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if role, ok := claims["role"].(string); ok {
				c.Set(userRoleKey, role)
			}
			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				c.Set(userIDKey, sub)
			} else if id, ok := claims["user_id"]; ok && id != nil {
				c.Set(userIDKey, fmt.Sprint(id))
			}
		}
		c.Next()
	}
}

// RequireCaller rejects requests that carry no bearer token, so upstream calls always act for a caller.
func RequireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetAuthToken(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "unauthorized: bearer token required",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Next()
	}
}

func GetAuthToken(c *gin.Context) string {
	return c.GetString(authTokenKey)
}

func GetUserRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}

func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
