package httpapi

import (
	"context"
	"net/http"
	"strings"

	"amur-backend/internal/domain"
	"amur-backend/internal/service"
)

type contextKey string

const claimsKey contextKey = "claims"

func claimsFrom(r *http.Request) *domain.Claims {
	claims, _ := r.Context().Value(claimsKey).(*domain.Claims)
	return claims
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// auth requires a valid bearer token and stores the claims in the request
// context.
func (h *Handler) auth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, service.ErrInvalidToken, requestLanguage(r))
			return
		}
		claims, err := h.Auth.ParseToken(token)
		if err != nil {
			writeError(w, err, requestLanguage(r))
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

// admin requires a valid token with the admin role.
func (h *Handler) admin(next http.HandlerFunc) http.HandlerFunc {
	return h.auth(func(w http.ResponseWriter, r *http.Request) {
		if !claimsFrom(r).IsAdmin() {
			writeError(w, service.ErrForbidden, requestLanguage(r))
			return
		}
		next(w, r)
	})
}

// optionalAuth attaches claims when a valid token is present, but lets
// anonymous requests through.
func (h *Handler) optionalAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if claims, err := h.Auth.ParseToken(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
			}
		}
		next(w, r)
	}
}
