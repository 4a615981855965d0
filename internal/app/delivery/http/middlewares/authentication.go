package middlewares

import (
	"context"
	"fmt"
	"heallink-service/internal/app/models"
	"heallink-service/internal/pkg/constvars"
	"heallink-service/internal/pkg/exceptions"
	"heallink-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate resolves the session token from the session cookie or
// the Authorization bearer header, unwraps the session ID from the JWT
// and loads the session from the store into the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.extractToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("no session token on request")))
			return
		}

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route group to a single role. It must run after
// Authenticate.
func (m *Middlewares) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(nil))
				return
			}
			if session.Role != role {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %s cannot access %s routes", session.Role, role)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
