package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsdesk/internal/auth"
	"newsdesk/internal/model"
	"newsdesk/internal/repository"
)

type contextKey struct{}

var userContextKey = contextKey{}

// AuthMiddleware is the authorization gate every protected route passes
// through. The chain is linear and fail-fast: each check either advances the
// request one step or terminates it with the mapped status.
type AuthMiddleware struct {
	jwtAuth  auth.JWTAuthenticator
	userRepo repository.UserRepository
	logger   *zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(
	jwtAuth auth.JWTAuthenticator,
	userRepo repository.UserRepository,
	logger *zerolog.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtAuth:  jwtAuth,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate resolves the bearer token to a live user record and attaches
// it to the request context. Missing token yields 401, failed verification
// 403, and a token for a deleted user 404.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r)
		if !ok {
			respondMessage(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		claims, err := m.jwtAuth.ValidateToken(tokenString)
		if err != nil {
			respondMessage(w, http.StatusForbidden, "invalid or expired token")
			return
		}

		user, err := m.userRepo.GetUser(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				respondMessage(w, http.StatusNotFound, "user not found")
				return
			}

			m.logger.Error().Err(err).Msg("failed to resolve token user")
			respondMessage(w, http.StatusInternalServerError, "something went wrong")
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser passes requests from any authenticated account.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return m.requireRole(next, model.RoleUser, model.RoleAdmin)
}

// RequireAdmin passes requests from admin accounts only.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return m.requireRole(next, model.RoleAdmin)
}

func (m *AuthMiddleware) requireRole(next http.Handler, roles ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			respondMessage(w, http.StatusUnauthorized, "missing authorization header")
			return
		}

		for _, role := range roles {
			if user.Role == role {
				next.ServeHTTP(w, r)
				return
			}
		}

		respondMessage(w, http.StatusForbidden, "access denied")
	})
}

// UserFromContext returns the authenticated user attached by Authenticate.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	return user, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}
