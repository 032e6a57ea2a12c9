package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/themeweek/showcase-api/internal/api/handler/v1/response"
	"github.com/themeweek/showcase-api/internal/pkg/jwthelper"
)

// Context keys populated by VerifyJWT for downstream handlers.
const (
	CtxKeyUserID   = "userID"
	CtxKeyUsername = "username"
	CtxKeyIsAdmin  = "isAdmin"
)

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT authenticates the request from the Authorization header. The
// "Bearer " prefix is optional.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("token is missing"))
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			if errors.Is(err, jwthelper.ErrTokenExpired) {
				response.RenderErr(ctx, response.ErrUnauthorized("token has expired"))
				return
			}

			response.RenderErr(ctx, response.ErrUnauthorized("invalid token"))
			return
		}

		ctx.Set(CtxKeyUserID, claims.UserID)
		ctx.Set(CtxKeyUsername, claims.Username)
		ctx.Set(CtxKeyIsAdmin, claims.IsAdmin)

		ctx.Next()
	}
}

// RequireAdmin gates admin routes. It must run after VerifyJWT.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool(CtxKeyIsAdmin) {
			response.RenderErr(ctx, response.ErrPermissionDenied("admin access required"))
			return
		}

		ctx.Next()
	}
}
