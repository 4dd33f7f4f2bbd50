package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/equipbook/equipbook/shared/domain"
	jwt_internal "github.com/equipbook/equipbook/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	jwtService := jwt_internal.New("test_secret", time.Hour)
	admin := &domain.User{Id: 1, Email: "test@example.com", Admin: true}
	tokenAdmin, _ := jwtService.NewToken(*admin)
	user := &domain.User{Id: 2, Email: "student@example.com", Admin: false}
	token, _ := jwtService.NewToken(*user)

	tests := []struct {
		name           string
		adminOnly      bool
		cookie         *http.Cookie
		bearer         string
		expectedStatus int
		expectedUser   *domain.User
	}{
		{
			name:           "Valid token - Admin",
			adminOnly:      true,
			cookie:         &http.Cookie{Name: SessionCookie, Value: tokenAdmin},
			expectedStatus: http.StatusOK,
			expectedUser:   admin,
		},
		{
			name:           "Valid token - Non-admin",
			cookie:         &http.Cookie{Name: SessionCookie, Value: token},
			expectedStatus: http.StatusOK,
			expectedUser:   user,
		},
		{
			name:           "Bearer header",
			bearer:         token,
			expectedStatus: http.StatusOK,
			expectedUser:   user,
		},
		{
			name:           "No token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid token",
			cookie:         &http.Cookie{Name: SessionCookie, Value: "invalid_token"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Non-admin accessing admin route",
			adminOnly:      true,
			cookie:         &http.Cookie{Name: SessionCookie, Value: token},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "http://example.com", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			rr := httptest.NewRecorder()
			authMw := NewAuth(jwtService)
			middleware := authMw.NeedAuth()
			if tt.adminOnly {
				middleware = authMw.AdminOnly()
			}
			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got := GetUserFromContext(r)
				require.NotNil(t, got, "Auth should always propagate user thru context")
				assert.Equal(t, tt.expectedUser, got)
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code, "handler returned wrong status code")
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	jwtService := jwt_internal.New("test_secret", time.Hour)
	token, _ := jwtService.NewToken(domain.User{Id: 7})

	var seen *domain.User
	handler := NewAuth(jwtService).OptionalAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserFromContext(r)
	}))

	t.Run("anonymous passes through", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Nil(t, seen)
	})

	t.Run("valid session populates user", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
		handler.ServeHTTP(httptest.NewRecorder(), req)
		require.NotNil(t, seen)
		assert.Equal(t, int64(7), seen.Id)
	})
}

func TestGetUserFromContext(t *testing.T) {
	t.Run("no user in context", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		assert.Nil(t, GetUserFromContext(req))
	})

	t.Run("user in context", func(t *testing.T) {
		user := &domain.User{Id: 1, Email: "test@example.com", Admin: true}
		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), UserClaimsKey, user))

		assert.Equal(t, user, GetUserFromContext(req))
	})
}
