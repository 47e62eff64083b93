package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"newsdesk/internal/auth"
	"newsdesk/internal/model"
	"newsdesk/internal/query"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) SetUserVerified(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, q query.Query) ([]*model.User, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*model.User), args.Get(1).(int64), args.Error(2)
}

func testMiddleware(userRepo *MockUserRepository) (*AuthMiddleware, auth.JWTAuthenticator) {
	jwtAuth := auth.NewJWTAuthenticator("test-secret", "newsdesk-test", time.Hour)
	logger := zerolog.Nop()
	return NewAuthMiddleware(jwtAuth, userRepo, &logger), jwtAuth
}

func nextRecorder(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		mw, _ := testMiddleware(new(MockUserRepository))

		var called bool
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		mw.Authenticate(nextRecorder(&called)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("malformed header is treated as no token", func(t *testing.T) {
		mw, _ := testMiddleware(new(MockUserRepository))

		for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "token-without-scheme"} {
			var called bool
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", header)

			mw.Authenticate(nextRecorder(&called)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
			assert.False(t, called, header)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		mw, _ := testMiddleware(new(MockUserRepository))

		var called bool
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		mw.Authenticate(nextRecorder(&called)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		mw, _ := testMiddleware(new(MockUserRepository))

		other := auth.NewJWTAuthenticator("other-secret", "newsdesk-test", time.Hour)
		token, err := other.GenerateToken(bson.NewObjectID().Hex())
		assert.NoError(t, err)

		var called bool
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		mw.Authenticate(nextRecorder(&called)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})

	t.Run("token for a deleted user", func(t *testing.T) {
		userID := bson.NewObjectID().Hex()

		userRepo := new(MockUserRepository)
		userRepo.On("GetUser", mock.Anything, userID).Return(nil, mongo.ErrNoDocuments)

		mw, jwtAuth := testMiddleware(userRepo)
		token, err := jwtAuth.GenerateToken(userID)
		assert.NoError(t, err)

		var called bool
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		mw.Authenticate(nextRecorder(&called)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.False(t, called)
	})

	t.Run("valid token attaches the user to the context", func(t *testing.T) {
		user := &model.User{ID: bson.NewObjectID(), Username: "jane", Role: model.RoleUser}

		userRepo := new(MockUserRepository)
		userRepo.On("GetUser", mock.Anything, user.ID.Hex()).Return(user, nil)

		mw, jwtAuth := testMiddleware(userRepo)
		token, err := jwtAuth.GenerateToken(user.ID.Hex())
		assert.NoError(t, err)

		var got *model.User
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = UserFromContext(r.Context())
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		mw.Authenticate(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user, got)
	})
}

func TestRequireRoles(t *testing.T) {
	withUser := func(req *http.Request, user *model.User) *http.Request {
		return req.WithContext(context.WithValue(req.Context(), userContextKey, user))
	}

	t.Run("regular accounts pass the user gate but not the admin gate", func(t *testing.T) {
		mw, _ := testMiddleware(new(MockUserRepository))
		user := &model.User{Role: model.RoleUser}

		var called bool
		rec := httptest.NewRecorder()
		mw.RequireUser(nextRecorder(&called)).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), user))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)

		called = false
		rec = httptest.NewRecorder()
		mw.RequireAdmin(nextRecorder(&called)).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), user))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, called)
	})

	t.Run("admin accounts pass both gates", func(t *testing.T) {
		mw, _ := testMiddleware(new(MockUserRepository))
		admin := &model.User{Role: model.RoleAdmin}

		for _, gate := range []func(http.Handler) http.Handler{mw.RequireUser, mw.RequireAdmin} {
			var called bool
			rec := httptest.NewRecorder()
			gate(nextRecorder(&called)).ServeHTTP(rec, withUser(httptest.NewRequest(http.MethodGet, "/", nil), admin))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, called)
		}
	})

	t.Run("gate without prior authentication", func(t *testing.T) {
		mw, _ := testMiddleware(new(MockUserRepository))

		var called bool
		rec := httptest.NewRecorder()
		mw.RequireUser(nextRecorder(&called)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})
}
