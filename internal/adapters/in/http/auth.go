package http

import (
	"context"
	"net/http"
	"strings"

	"gestion/internal/core/application/authz"
	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// PrincipalResolver turns a verified session into a principal.
type PrincipalResolver interface {
	Resolve(ctx context.Context, s authz.Session) (access.Principal, error)
}

// Claims are the claims of a session token. Subject is the user id and ID
// (jti) identifies the session.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticate verifies the HS256 bearer token and stores the resolved
// principal in the echo context. Requests whose path does not start with
// prefix pass through untouched.
func Authenticate(secret []byte, resolver PrincipalResolver, prefix string) echo.MiddlewareFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	keyFunc := func(*jwt.Token) (any, error) { return secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, prefix) {
				return next(c)
			}

			raw, ok := bearerToken(c.Request())
			if !ok {
				return unauthorized(c, "missing bearer token")
			}

			var claims Claims
			if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
				return unauthorized(c, "invalid token")
			}

			userID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil || claims.ID == "" {
				return unauthorized(c, "invalid token subject")
			}

			principal, err := resolver.Resolve(c.Request().Context(), authz.Session{
				ID:        claims.ID,
				UserID:    userID,
				Email:     claims.Email,
				ExpiresAt: claims.ExpiresAt.Time,
			})
			if err != nil {
				return err
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalOf returns the principal stored by Authenticate, or the zero
// Principal for unauthenticated requests.
func PrincipalOf(c echo.Context) access.Principal {
	p, _ := c.Get(principalKey).(access.Principal)
	return p
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get(echo.HeaderAuthorization)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, msg, nil))
}
