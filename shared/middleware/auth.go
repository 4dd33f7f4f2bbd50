package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/equipbook/equipbook/shared/domain"
	jwt_internal "github.com/equipbook/equipbook/shared/jwt"
	"github.com/equipbook/equipbook/shared/logger"
	"github.com/equipbook/equipbook/shared/utils"
	"github.com/golang-jwt/jwt/v5"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// SessionCookie is the cookie the backend sets at login. The frontend reads
// it for the current user and forwards it on every backend call.
const SessionCookie = "accessToken"

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires a valid session
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return a.auth(false)
}

// AdminOnly returns middleware that requires an admin session
func (a *Auth) AdminOnly() func(http.Handler) http.Handler {
	return a.auth(true)
}

// OptionalAuth populates the user when the token is valid but lets anonymous
// requests through.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, _ := a.extractUser(r); user != nil {
				r = r.WithContext(context.WithValue(r.Context(), UserClaimsKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	var tokenString string
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		tokenString = cookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}
	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}
	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return nil, errInvalidClaims
	}
	// email and admin are optional: older backends only put uid into the token
	email, _ := claims["email"].(string)
	isAdmin, _ := claims["admin"].(bool)

	return &domain.User{Id: int64(uidFloat), Email: email, Admin: isAdmin}, nil
}

var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

func (a *Auth) auth(adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				switch err {
				case errNoToken:
					http.Error(w, "Please sign-in", http.StatusUnauthorized)
				case errInvalidClaims:
					logger.Log.Error("invalid jwt claims")
					http.Error(w, "Invalid token", http.StatusUnauthorized)
				default:
					utils.WriteErrorAndStatusCode(w, err)
				}
				return
			}

			if adminOnly && !user.Admin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
