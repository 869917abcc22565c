package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"jelantah/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// actorContextKey is where the middleware stores the authenticated actor.
const actorContextKey = "actor"

// ActorClaims carries the actor identity and role inside the JWT issued
// by the identity provider. The subject is the actor's UUID.
type ActorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 token for the actor, valid for the given TTL.
func IssueToken(secret []byte, actor kernel.Actor, ttl time.Duration) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := ActorClaims{
		Role: actor.Role().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseActor validates the token signature and expiry and reconstructs
// the actor from its claims.
func ParseActor(secret []byte, tokenString string) (kernel.Actor, error) {
	var claims ActorClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("parse actor token: %w", err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("parse actor token: %w", err)
	}

	role, err := kernel.RoleFromString(claims.Role)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("parse actor token: %w", err)
	}

	return kernel.NewActor(id, role)
}

// ActorMiddleware authenticates requests via a Bearer token and stores
// the resulting actor in the request context.
func ActorMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			actor, err := ParseActor(secret, tokenString)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid bearer token",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFromContext retrieves the actor stored by ActorMiddleware.
func actorFromContext(ctx echo.Context) (kernel.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}
