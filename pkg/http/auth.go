package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"barnsight.xyz/pigsty-monitor-service/pkg/models"
)

const ctxKeyViewer = "viewer"

type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
}

type SessionClaims struct {
	UserID int64       `json:"uid"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

func (ti *TokenIssuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.TTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.Secret)
}

func (ti *TokenIssuer) Parse(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) { return ti.Secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	return claims, nil
}

// RequireSession verifies the bearer token and puts the viewer identity into
// the request context. Association scoping downstream depends on this running
// first.
func (rs *RestfulServer) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := rs.Tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ctxKeyViewer, models.User{
			ID:       claims.UserID,
			Username: claims.Subject,
			Role:     claims.Role,
		})
		c.Next()
	}
}

func (rs *RestfulServer) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if viewer(c).Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}
		c.Next()
	}
}

// RateLimit throttles per authenticated user, defaults from env, overridable
// through the admin limits endpoint.
func (rs *RestfulServer) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rs.RateLimiterStore != nil && !rs.RateLimiterStore.GetLimiter(viewer(c).Username).Allow() {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func viewer(c *gin.Context) models.User {
	if v, ok := c.Get(ctxKeyViewer); ok {
		if u, ok := v.(models.User); ok {
			return u
		}
	}
	return models.User{}
}
