package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themeweek/showcase-api/internal/api/handler/v1/request"
	"github.com/themeweek/showcase-api/internal/api/handler/v1/response"
	"github.com/themeweek/showcase-api/internal/api/middleware"
	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/service"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	CreateUser(ctx context.Context, username, password string, isAdmin bool) (domain.User, error)
	UpdateUser(ctx context.Context, id string, update service.UserUpdate) (domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserHandler serves the admin user CRUD.
type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleListUsers godoc
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleCreateUser godoc
// @Summary      Create a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateUserRequest true "request body"
// @Success      201      {object}   response.Created
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /admin/users [post]
// @Security     BearerAuth
func (h *UserHandler) HandleCreateUser(ctx *gin.Context) {
	var req request.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.CreateUser(ctx.Request.Context(), req.Username, req.Password, req.IsAdmin)
	if err != nil {
		if errors.Is(err, service.ErrUsernameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUsernameExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateUser -> h.svc.CreateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created{ID: user.ID, Message: "user created"})
}

// HandleGetUser godoc
// @Summary      Get one user
// @Tags         admin
// @Produce      json
// @Param        userID   path       string true "user ID"
// @Success      200      {object}   domain.User
// @Failure      404      {object}   response.Err
// @Router       /admin/users/{userID} [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	id := ctx.Param("userID")

	user, err := h.svc.GetUser(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateUser godoc
// @Summary      Update a user (partial)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        userID   path       string true "user ID"
// @Param        request  body       request.UpdateUserRequest true "request body"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /admin/users/{userID} [put]
// @Security     BearerAuth
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	id := ctx.Param("userID")

	var req request.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// An admin cannot revoke their own admin flag, so there is always at
	// least one admin left standing.
	if req.IsAdmin != nil && !*req.IsAdmin && id == ctx.GetString(middleware.CtxKeyUserID) {
		response.RenderErr(ctx, response.ErrPermissionDenied("cannot revoke your own admin access"))
		return
	}

	user, err := h.svc.UpdateUser(ctx.Request.Context(), id, service.UserUpdate{
		Username: req.Username,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", id))
			return
		}
		if errors.Is(err, service.ErrUsernameExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUsernameExists))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleDeleteUser godoc
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Param        userID   path       string true "user ID"
// @Success      200      {object}   map[string]string
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /admin/users/{userID} [delete]
// @Security     BearerAuth
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	id := ctx.Param("userID")

	if err := h.svc.DeleteUser(ctx.Request.Context(), id); err != nil {
		var refErr *service.ReferencedError
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "ID", id))
		case errors.As(err, &refErr):
			response.RenderErr(ctx, response.ErrConflict(refErr))
		default:
			err = fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
