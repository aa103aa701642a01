package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comments/internal/rest/response"
)

// UserIDKey is the gin context key holding the caller's user id (int64).
const UserIDKey = "user_id"

// Identify resolves the caller from a bearer token issued by the auth service.
// Requests without an Authorization header pass through anonymously; handlers
// decide whether an identity is required. A malformed or invalid token is rejected.
func Identify(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authz := strings.TrimSpace(c.GetHeader("Authorization"))
		if authz == "" {
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(authz, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("invalid authorization header"))
			return
		}

		uid, err := ParseUserID(secret, strings.TrimSpace(token))
		if err != nil {
			logrus.Debugf("rejecting token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("invalid token"))
			return
		}

		c.Set(UserIDKey, uid)
		c.Next()
	}
}

// ParseUserID verifies an HS256 token and returns its subject as a user id.
func ParseUserID(secret []byte, tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, err
	}
	if !parsed.Valid {
		return 0, errors.New("invalid token")
	}

	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || uid <= 0 {
		return 0, errors.New("token subject is not a user id")
	}
	return uid, nil
}
