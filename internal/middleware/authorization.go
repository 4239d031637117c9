package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/core"
	"educonnect-backend/internal/models"
)

// Decision is the outcome of one authorization check.
type Decision struct {
	Allow  bool
	Status int
	Reason string
}

// Allow lets the request continue to the next check.
func Allow() Decision {
	return Decision{Allow: true}
}

// Deny stops the request with status.
func Deny(status int, reason string) Decision {
	return Decision{Status: status, Reason: reason}
}

// Check inspects a request and returns the context later checks and the
// handler should see, plus its decision.
type Check func(c *gin.Context) (context.Context, Decision)

// Policy is an ordered list of checks. The first denial wins.
type Policy []Check

// Require builds a policy from checks and returns it as gin middleware.
func Require(checks ...Check) gin.HandlerFunc {
	return Policy(checks).Handler()
}

// Handler runs the checks in order. Only the policy replaces the request
// context; checks and handlers never write to the gin context.
func (p Policy) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, check := range p {
			ctx, decision := check(c)
			if !decision.Allow {
				c.AbortWithStatusJSON(decision.Status, models.ErrorResponse{Message: decision.Reason})
				return
			}
			if ctx != nil && ctx != c.Request.Context() {
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

type claimsKey struct{}

// WithClaims returns ctx carrying verified token claims.
func WithClaims(ctx context.Context, claims *core.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFrom returns the claims placed by Authenticated.
func ClaimsFrom(ctx context.Context) (*core.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*core.Claims)
	return claims, ok && claims != nil
}

// Authenticated requires a valid "Bearer <token>" Authorization header.
func Authenticated(tokens core.TokenService) Check {
	return func(c *gin.Context) (context.Context, Decision) {
		ctx := c.Request.Context()
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return ctx, Deny(http.StatusUnauthorized, "unauthorized access")
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return ctx, Deny(http.StatusUnauthorized, "authorization header format must be 'Bearer {token}'")
		}

		claims, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			return ctx, Deny(http.StatusUnauthorized, "unauthorized access")
		}
		return WithClaims(ctx, claims), Allow()
	}
}

// AdminChecker reports whether the user with email holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// AdminOnly loads the caller's stored role. It must follow Authenticated.
func AdminOnly(admins AdminChecker) Check {
	return func(c *gin.Context) (context.Context, Decision) {
		ctx := c.Request.Context()
		claims, ok := ClaimsFrom(ctx)
		if !ok {
			return ctx, Deny(http.StatusUnauthorized, "unauthorized access")
		}
		isAdmin, err := admins.IsAdmin(ctx, claims.Email)
		if err != nil {
			zap.L().Error("AdminOnly: role lookup failed", zap.String("email", claims.Email), zap.Error(err))
			return ctx, Deny(http.StatusInternalServerError, "failed to verify role")
		}
		if !isAdmin {
			return ctx, Deny(http.StatusForbidden, "forbidden access")
		}
		return ctx, Allow()
	}
}

// SelfOnly requires the path parameter param to equal the token email.
// It must follow Authenticated.
func SelfOnly(param string) Check {
	return func(c *gin.Context) (context.Context, Decision) {
		ctx := c.Request.Context()
		claims, ok := ClaimsFrom(ctx)
		if !ok {
			return ctx, Deny(http.StatusUnauthorized, "unauthorized access")
		}
		if c.Param(param) != claims.Email {
			return ctx, Deny(http.StatusForbidden, "forbidden access")
		}
		return ctx, Allow()
	}
}
