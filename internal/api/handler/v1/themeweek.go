package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/themeweek/showcase-api/internal/api/handler/v1/request"
	"github.com/themeweek/showcase-api/internal/api/handler/v1/response"
	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/service"
)

type ThemeWeekService interface {
	ListThemeWeeks(ctx context.Context) ([]domain.ThemeWeek, error)
	ListThemeWeeksWithCounts(ctx context.Context) ([]domain.ThemeWeek, error)
	GetThemeWeek(ctx context.Context, id string) (domain.ThemeWeek, error)
	GetThemeWeekWithVideos(ctx context.Context, id string) (domain.ThemeWeek, []domain.Video, error)
	CreateThemeWeek(ctx context.Context, week domain.ThemeWeek) (domain.ThemeWeek, error)
	UpdateThemeWeek(ctx context.Context, id string, update service.ThemeWeekUpdate) (domain.ThemeWeek, error)
	DeleteThemeWeek(ctx context.Context, id string) error
}

type MaterialLister interface {
	ListMaterials(ctx context.Context) ([]domain.Material, error)
}

type ThemeWeekHandler struct {
	svc         ThemeWeekService
	materialSvc MaterialLister
}

func NewThemeWeekHandler(svc ThemeWeekService, materialSvc MaterialLister) *ThemeWeekHandler {
	return &ThemeWeekHandler{
		svc:         svc,
		materialSvc: materialSvc,
	}
}

// HandleListThemeWeeks godoc
// @Summary      List theme weeks with video counts
// @Tags         theme-weeks
// @Produce      json
// @Success      200  {array}   response.ThemeWeek
// @Failure      500  {object}  response.Err
// @Router       /theme-weeks [get]
func (h *ThemeWeekHandler) HandleListThemeWeeks(ctx *gin.Context) {
	weeks, err := h.svc.ListThemeWeeksWithCounts(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListThemeWeeks -> h.svc.ListThemeWeeksWithCounts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewThemeWeeks(weeks))
}

// HandleGetThemeWeek godoc
// @Summary      Get one theme week with its videos
// @Tags         theme-weeks
// @Produce      json
// @Param        weekID   path       string true "theme week ID"
// @Success      200      {object}   response.ThemeWeekDetail
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /theme-weeks/{weekID} [get]
func (h *ThemeWeekHandler) HandleGetThemeWeek(ctx *gin.Context) {
	id := ctx.Param("weekID")

	week, videos, err := h.svc.GetThemeWeekWithVideos(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrThemeWeekNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theme week", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetThemeWeek -> h.svc.GetThemeWeekWithVideos -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewThemeWeekDetail(week, videos))
}

// HandleListPublicMaterials godoc
// @Summary      List all materials across theme weeks
// @Tags         theme-weeks
// @Produce      json
// @Success      200  {array}   domain.Material
// @Failure      500  {object}  response.Err
// @Router       /theme-weeks/materials [get]
func (h *ThemeWeekHandler) HandleListPublicMaterials(ctx *gin.Context) {
	materials, err := h.materialSvc.ListMaterials(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListPublicMaterials -> h.materialSvc.ListMaterials -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, materials)
}

// HandleAdminListThemeWeeks godoc
// @Summary      List all theme weeks
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.ThemeWeek
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Router       /admin/theme-weeks [get]
// @Security     BearerAuth
func (h *ThemeWeekHandler) HandleAdminListThemeWeeks(ctx *gin.Context) {
	weeks, err := h.svc.ListThemeWeeks(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleAdminListThemeWeeks -> h.svc.ListThemeWeeks -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, weeks)
}

// HandleCreateThemeWeek godoc
// @Summary      Create a theme week
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateThemeWeekRequest true "request body"
// @Success      201      {object}   response.Created
// @Failure      400      {object}   response.Err
// @Router       /admin/theme-weeks [post]
// @Security     BearerAuth
func (h *ThemeWeekHandler) HandleCreateThemeWeek(ctx *gin.Context) {
	var req request.CreateThemeWeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	week, err := h.svc.CreateThemeWeek(ctx.Request.Context(), domain.ThemeWeek{
		Title:       req.Title,
		Description: req.Description,
		ResultURL:   req.ResultURL,
		ImageURL:    req.ImageURL,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateThemeWeek -> h.svc.CreateThemeWeek -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created{ID: week.ID, Message: "theme week created"})
}

// HandleAdminGetThemeWeek godoc
// @Summary      Get one theme week
// @Tags         admin
// @Produce      json
// @Param        weekID   path       string true "theme week ID"
// @Success      200      {object}   domain.ThemeWeek
// @Failure      404      {object}   response.Err
// @Router       /admin/theme-weeks/{weekID} [get]
// @Security     BearerAuth
func (h *ThemeWeekHandler) HandleAdminGetThemeWeek(ctx *gin.Context) {
	id := ctx.Param("weekID")

	week, err := h.svc.GetThemeWeek(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrThemeWeekNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theme week", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleAdminGetThemeWeek -> h.svc.GetThemeWeek -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, week)
}

// HandleUpdateThemeWeek godoc
// @Summary      Update a theme week (partial)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        weekID   path       string true "theme week ID"
// @Param        request  body       request.UpdateThemeWeekRequest true "request body"
// @Success      200      {object}   domain.ThemeWeek
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /admin/theme-weeks/{weekID} [put]
// @Security     BearerAuth
func (h *ThemeWeekHandler) HandleUpdateThemeWeek(ctx *gin.Context) {
	id := ctx.Param("weekID")

	var req request.UpdateThemeWeekRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	week, err := h.svc.UpdateThemeWeek(ctx.Request.Context(), id, service.ThemeWeekUpdate{
		Title:       req.Title,
		Description: req.Description,
		ResultURL:   req.ResultURL,
		ImageURL:    req.ImageURL,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		if errors.Is(err, service.ErrThemeWeekNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theme week", "ID", id))
			return
		}
		if errors.Is(err, service.ErrInvalidDateRange) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidDateRange))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateThemeWeek -> h.svc.UpdateThemeWeek -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, week)
}

// HandleDeleteThemeWeek godoc
// @Summary      Delete a theme week
// @Tags         admin
// @Produce      json
// @Param        weekID   path       string true "theme week ID"
// @Success      200      {object}   map[string]string
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /admin/theme-weeks/{weekID} [delete]
// @Security     BearerAuth
func (h *ThemeWeekHandler) HandleDeleteThemeWeek(ctx *gin.Context) {
	id := ctx.Param("weekID")

	if err := h.svc.DeleteThemeWeek(ctx.Request.Context(), id); err != nil {
		var refErr *service.ReferencedError
		switch {
		case errors.Is(err, service.ErrThemeWeekNotFound):
			response.RenderErr(ctx, response.ErrNotFound("theme week", "ID", id))
		case errors.As(err, &refErr):
			response.RenderErr(ctx, response.ErrConflict(refErr))
		default:
			err = fmt.Errorf("v1.HandleDeleteThemeWeek -> h.svc.DeleteThemeWeek -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "theme week deleted"})
}
