package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themeweek/showcase-api/internal/api/middleware"
	"github.com/themeweek/showcase-api/internal/config"
	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/pkg/jwthelper"
	"github.com/themeweek/showcase-api/internal/service"
)

const testSigningKey = "test-signing-key"

func testAPIConfig() *config.APIConfig {
	return &config.APIConfig{JWTSigningKey: testSigningKey}
}

type fakeAuthService struct {
	registerFn func(ctx context.Context, username, password string) (domain.User, error)
	loginFn    func(ctx context.Context, username, password string) (domain.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	return f.registerFn(ctx, username, password)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	return f.loginFn(ctx, username, password)
}

func performRequest(router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func setupAuthRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(testAPIConfig(), svc)
	authenticator := middleware.NewAuthenticator(testSigningKey)

	router := gin.New()
	router.POST("/api/auth/register", handler.HandleRegister)
	router.POST("/api/auth/login", handler.HandleLogin)
	router.GET("/api/auth/me", authenticator.VerifyJWT(), handler.HandleGetMe)

	return router
}

func TestHandleRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		registerFn func(ctx context.Context, username, password string) (domain.User, error)
		wantStatus int
	}{
		{
			name: "created",
			body: gin.H{"username": "alice", "password": "pw1"},
			registerFn: func(_ context.Context, username, _ string) (domain.User, error) {
				return domain.User{ID: "user-1", Username: username}, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate username",
			body: gin.H{"username": "alice", "password": "pw1"},
			registerFn: func(context.Context, string, string) (domain.User, error) {
				return domain.User{}, service.ErrUsernameExists
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "missing password",
			body:       gin.H{"username": "alice"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       "not-json",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(&fakeAuthService{registerFn: tt.registerFn})

			w := performRequest(router, http.MethodPost, "/api/auth/register", tt.body, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleLogin(t *testing.T) {
	svc := &fakeAuthService{
		loginFn: func(_ context.Context, username, password string) (domain.User, error) {
			if username == "alice" && password == "pw1" {
				return domain.User{ID: "user-1", Username: "alice", IsAdmin: true}, nil
			}

			return domain.User{}, service.ErrWrongPassword
		},
	}
	router := setupAuthRouter(svc)

	t.Run("success returns a usable token", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/auth/login", gin.H{"username": "alice", "password": "pw1"}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token    string `json:"token"`
			Username string `json:"username"`
			IsAdmin  bool   `json:"is_admin"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp.Username)
		assert.True(t, resp.IsAdmin)

		claims, err := jwthelper.ParseToken([]byte(testSigningKey), resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
	})

	t.Run("wrong password never leaks which part failed", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/auth/login", gin.H{"username": "alice", "password": "nope"}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid credentials")
	})
}

func TestHandleGetMe(t *testing.T) {
	router := setupAuthRouter(&fakeAuthService{})

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), domain.User{
		ID:       "user-1",
		Username: "alice",
		IsAdmin:  true,
	})
	require.NoError(t, err)

	w := performRequest(router, http.MethodGet, "/api/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-1","username":"alice","is_admin":true}`, w.Body.String())
}
