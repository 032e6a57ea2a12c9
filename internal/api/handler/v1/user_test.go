package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themeweek/showcase-api/internal/api/middleware"
	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/pkg/jwthelper"
	"github.com/themeweek/showcase-api/internal/repository"
	"github.com/themeweek/showcase-api/internal/service"
)

type fakeUserService struct {
	updateFn func(ctx context.Context, id string, update service.UserUpdate) (domain.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeUserService) ListUsers(context.Context) ([]domain.User, error) {
	return []domain.User{{ID: "user-1", Username: "alice", IsAdmin: true}}, nil
}

func (f *fakeUserService) GetUser(_ context.Context, id string) (domain.User, error) {
	if id != "user-1" {
		return domain.User{}, service.ErrUserNotFound
	}

	return domain.User{ID: "user-1", Username: "alice", IsAdmin: true}, nil
}

func (f *fakeUserService) CreateUser(_ context.Context, username, _ string, isAdmin bool) (domain.User, error) {
	return domain.User{ID: "user-2", Username: username, IsAdmin: isAdmin}, nil
}

func (f *fakeUserService) UpdateUser(ctx context.Context, id string, update service.UserUpdate) (domain.User, error) {
	return f.updateFn(ctx, id, update)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func setupUserRouter(svc UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewUserHandler(svc)
	authenticator := middleware.NewAuthenticator(testSigningKey)

	router := gin.New()
	admin := router.Group("/api/admin", authenticator.VerifyJWT(), authenticator.RequireAdmin())
	admin.GET("/users", handler.HandleListUsers)
	admin.POST("/users", handler.HandleCreateUser)
	admin.GET("/users/:userID", handler.HandleGetUser)
	admin.PUT("/users/:userID", handler.HandleUpdateUser)
	admin.DELETE("/users/:userID", handler.HandleDeleteUser)

	return router
}

func adminToken(t *testing.T, userID string) string {
	t.Helper()

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), domain.User{
		ID:       userID,
		Username: "root",
		IsAdmin:  true,
	})
	require.NoError(t, err)

	return token
}

func TestUserAdminRoutes_RequireAdmin(t *testing.T) {
	router := setupUserRouter(&fakeUserService{})

	t.Run("no token", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/admin/users", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("member token", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/admin/users", nil, map[string]string{
			"Authorization": "Bearer " + memberToken(t, "user-1"),
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandleUpdateUser_SelfDemotionBlocked(t *testing.T) {
	svc := &fakeUserService{
		updateFn: func(_ context.Context, id string, update service.UserUpdate) (domain.User, error) {
			user := domain.User{ID: id, Username: "root", IsAdmin: true}
			if update.IsAdmin != nil {
				user.IsAdmin = *update.IsAdmin
			}

			return user, nil
		},
	}
	router := setupUserRouter(svc)
	token := adminToken(t, "admin-1")

	t.Run("own admin flag cannot be revoked", func(t *testing.T) {
		w := performRequest(router, http.MethodPut, "/api/admin/users/admin-1", gin.H{"is_admin": false}, map[string]string{
			"Authorization": "Bearer " + token,
		})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "cannot revoke your own admin access")
	})

	t.Run("demoting another admin is fine", func(t *testing.T) {
		w := performRequest(router, http.MethodPut, "/api/admin/users/admin-2", gin.H{"is_admin": false}, map[string]string{
			"Authorization": "Bearer " + token,
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("setting own flag to true is a no-op, not an error", func(t *testing.T) {
		w := performRequest(router, http.MethodPut, "/api/admin/users/admin-1", gin.H{"is_admin": true}, map[string]string{
			"Authorization": "Bearer " + token,
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		deleteFn   func(ctx context.Context, id string) error
		wantStatus int
	}{
		{
			name:       "deleted",
			deleteFn:   func(context.Context, string) error { return nil },
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			deleteFn: func(context.Context, string) error {
				return service.ErrUserNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "still referenced by videos",
			deleteFn: func(context.Context, string) error {
				return &repository.ReferencedError{Entity: "user", ReferencedBy: "videos"}
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupUserRouter(&fakeUserService{deleteFn: tt.deleteFn})

			w := performRequest(router, http.MethodDelete, "/api/admin/users/user-9", nil, map[string]string{
				"Authorization": "Bearer " + adminToken(t, "admin-1"),
			})

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
