// Package auth carries the access gate and the JWT token manager. The gate
// is a two-layer decision: first whether authentication is required at all
// for the request (public allow-list, jwt.enable flag), then, when it is,
// whether the presented credential is valid.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gestionpme/api-gestion/internal/utils"
)

type ctxKey string

const (
	// CtxUserID carries the authenticated user id; zero for the anonymous
	// principal used when JWT is disabled.
	CtxUserID ctxKey = "userID"
	CtxEmail  ctxKey = "email"
)

// Gate decides per request whether a valid token must be presented. The
// jwtEnabled flag is injected at construction; the gate never reads
// configuration at request time. Changing the flag requires a restart.
type Gate struct {
	jwtEnabled bool
	tokens     *TokenManager
}

func NewGate(jwtEnabled bool, tokens *TokenManager) *Gate {
	return &Gate{jwtEnabled: jwtEnabled, tokens: tokens}
}

// isPublic lists the endpoints that never require authentication, whatever
// the jwt.enable flag says: login, user self-registration, the two liveness
// pings, the JWT discovery endpoint and the API documentation.
func isPublic(r *http.Request) bool {
	path := r.URL.Path
	switch {
	case path == "/api/login":
		return true
	case path == "/api/utilisateur" && r.Method == http.MethodPost:
		return true
	case path == "/api/utilisateur/ping", path == "/api/material/ping":
		return true
	case path == "/api/config/jwt":
		return true
	case path == "/api/doc", path == "/api/doc.json":
		return true
	}
	return false
}

// Middleware enforces the access decision for every request.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions || isPublic(r) {
			next.ServeHTTP(w, r)
			return
		}

		if !g.jwtEnabled {
			if strings.HasPrefix(r.URL.Path, "/api") {
				ctx := context.WithValue(r.Context(), CtxUserID, uint(0))
				ctx = context.WithValue(ctx, CtxEmail, "anonyme")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			utils.RespondError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		claims, err := g.tokens.Validate(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			utils.RespondError(w, http.StatusUnauthorized, "Token invalide")
			return
		}
		ctx := context.WithValue(r.Context(), CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, CtxEmail, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ConfigHandler exposes the jwt.enable flag so the web client can discover
// whether it has to log in before calling the API.
func ConfigHandler(jwtEnabled bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]bool{"jwt_enabled": jwtEnabled})
	}
}
