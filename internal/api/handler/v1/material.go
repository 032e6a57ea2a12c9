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

type MaterialService interface {
	ListMaterials(ctx context.Context) ([]domain.Material, error)
	GetMaterial(ctx context.Context, id string) (domain.Material, error)
	CreateMaterial(ctx context.Context, material domain.Material) (domain.Material, error)
	UpdateMaterial(ctx context.Context, id string, update service.MaterialUpdate) (domain.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
}

// MaterialHandler serves the admin material CRUD. The public material list is
// mounted under theme-weeks and served by ThemeWeekHandler.
type MaterialHandler struct {
	svc MaterialService
}

func NewMaterialHandler(svc MaterialService) *MaterialHandler {
	return &MaterialHandler{
		svc: svc,
	}
}

// HandleListMaterials godoc
// @Summary      List all materials
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Material
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Router       /admin/materials [get]
// @Security     BearerAuth
func (h *MaterialHandler) HandleListMaterials(ctx *gin.Context) {
	materials, err := h.svc.ListMaterials(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListMaterials -> h.svc.ListMaterials -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, materials)
}

// HandleCreateMaterial godoc
// @Summary      Create a material
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateMaterialRequest true "request body"
// @Success      201      {object}   response.Created
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /admin/materials [post]
// @Security     BearerAuth
func (h *MaterialHandler) HandleCreateMaterial(ctx *gin.Context) {
	var req request.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	material, err := h.svc.CreateMaterial(ctx.Request.Context(), domain.Material{
		Title:        req.Title,
		Description:  req.Description,
		StudentName:  req.StudentName,
		MaterialType: req.MaterialType,
		URL:          req.URL,
		IsWinner:     req.IsWinner,
		ThemeWeekID:  req.ThemeWeekID,
	})
	if err != nil {
		if errors.Is(err, service.ErrThemeWeekNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theme week", "ID", req.ThemeWeekID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateMaterial -> h.svc.CreateMaterial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created{ID: material.ID, Message: "material created"})
}

// HandleGetMaterial godoc
// @Summary      Get one material
// @Tags         admin
// @Produce      json
// @Param        materialID   path       string true "material ID"
// @Success      200      {object}   domain.Material
// @Failure      404      {object}   response.Err
// @Router       /admin/materials/{materialID} [get]
// @Security     BearerAuth
func (h *MaterialHandler) HandleGetMaterial(ctx *gin.Context) {
	id := ctx.Param("materialID")

	material, err := h.svc.GetMaterial(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("material", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetMaterial -> h.svc.GetMaterial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, material)
}

// HandleUpdateMaterial godoc
// @Summary      Update a material (partial)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        materialID   path       string true "material ID"
// @Param        request      body       request.UpdateMaterialRequest true "request body"
// @Success      200      {object}   domain.Material
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /admin/materials/{materialID} [put]
// @Security     BearerAuth
func (h *MaterialHandler) HandleUpdateMaterial(ctx *gin.Context) {
	id := ctx.Param("materialID")

	var req request.UpdateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	material, err := h.svc.UpdateMaterial(ctx.Request.Context(), id, service.MaterialUpdate{
		Title:        req.Title,
		Description:  req.Description,
		StudentName:  req.StudentName,
		MaterialType: req.MaterialType,
		URL:          req.URL,
		IsWinner:     req.IsWinner,
		ThemeWeekID:  req.ThemeWeekID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMaterialNotFound):
			response.RenderErr(ctx, response.ErrNotFound("material", "ID", id))
		case errors.Is(err, service.ErrThemeWeekNotFound) && req.ThemeWeekID != nil:
			response.RenderErr(ctx, response.ErrNotFound("theme week", "ID", *req.ThemeWeekID))
		default:
			err = fmt.Errorf("v1.HandleUpdateMaterial -> h.svc.UpdateMaterial -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, material)
}

// HandleDeleteMaterial godoc
// @Summary      Delete a material
// @Tags         admin
// @Produce      json
// @Param        materialID   path       string true "material ID"
// @Success      200      {object}   map[string]string
// @Failure      404      {object}   response.Err
// @Router       /admin/materials/{materialID} [delete]
// @Security     BearerAuth
func (h *MaterialHandler) HandleDeleteMaterial(ctx *gin.Context) {
	id := ctx.Param("materialID")

	if err := h.svc.DeleteMaterial(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMaterialNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("material", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteMaterial -> h.svc.DeleteMaterial -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "material deleted"})
}
