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

type VideoService interface {
	ListVideos(ctx context.Context, themeWeekID string) ([]domain.Video, error)
	ListAllVideos(ctx context.Context) ([]domain.Video, error)
	GetVideo(ctx context.Context, id string) (domain.Video, error)
	SubmitVideo(ctx context.Context, video domain.Video, userID string) (domain.Video, error)
	CreateVideo(ctx context.Context, video domain.Video) (domain.Video, error)
	CastVote(ctx context.Context, userID, videoID string) (domain.Vote, error)
	UpdateVideo(ctx context.Context, id string, update service.VideoUpdate) (domain.Video, error)
	DeleteVideo(ctx context.Context, id string) error
}

type VideoHandler struct {
	svc VideoService
}

func NewVideoHandler(svc VideoService) *VideoHandler {
	return &VideoHandler{
		svc: svc,
	}
}

// HandleListVideos godoc
// @Summary      List videos with author and vote count
// @Tags         videos
// @Produce      json
// @Param        theme_week_id   query     string false "filter by theme week"
// @Success      200  {array}   response.Video
// @Failure      500  {object}  response.Err
// @Router       /videos [get]
func (h *VideoHandler) HandleListVideos(ctx *gin.Context) {
	themeWeekID := ctx.Query("theme_week_id")

	videos, err := h.svc.ListVideos(ctx.Request.Context(), themeWeekID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListVideos -> h.svc.ListVideos -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewVideos(videos))
}

// HandleSubmitVideo godoc
// @Summary      Submit a video as the authenticated member
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request   body      request.SubmitVideoRequest true "request body"
// @Success      201      {object}   domain.Video
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /videos [post]
// @Security     BearerAuth
func (h *VideoHandler) HandleSubmitVideo(ctx *gin.Context) {
	var req request.SubmitVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	userID := ctx.GetString(middleware.CtxKeyUserID)

	video, err := h.svc.SubmitVideo(ctx.Request.Context(), domain.Video{
		Title:       req.Title,
		YoutubeURL:  req.YoutubeURL,
		Description: req.Description,
		ThemeWeekID: req.ThemeWeekID,
	}, userID)
	if err != nil {
		if errors.Is(err, service.ErrThemeWeekNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theme week", "ID", req.ThemeWeekID))
			return
		}

		err = fmt.Errorf("v1.HandleSubmitVideo -> h.svc.SubmitVideo -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, video)
}

// HandleVote godoc
// @Summary      Cast one vote for a video
// @Tags         videos
// @Produce      json
// @Param        videoID   path       string true "video ID"
// @Success      201      {object}   domain.Vote
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /videos/{videoID}/vote [post]
// @Security     BearerAuth
func (h *VideoHandler) HandleVote(ctx *gin.Context) {
	videoID := ctx.Param("videoID")
	userID := ctx.GetString(middleware.CtxKeyUserID)

	vote, err := h.svc.CastVote(ctx.Request.Context(), userID, videoID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVideoNotFound):
			response.RenderErr(ctx, response.ErrNotFound("video", "ID", videoID))
		case errors.Is(err, service.ErrAlreadyVoted):
			response.RenderErr(ctx, response.ErrConflict(service.ErrAlreadyVoted))
		default:
			err = fmt.Errorf("v1.HandleVote -> h.svc.CastVote -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, vote)
}

// HandleAdminListVideos godoc
// @Summary      List all videos
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Video
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Router       /admin/videos [get]
// @Security     BearerAuth
func (h *VideoHandler) HandleAdminListVideos(ctx *gin.Context) {
	videos, err := h.svc.ListAllVideos(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleAdminListVideos -> h.svc.ListAllVideos -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, videos)
}

// HandleCreateVideo godoc
// @Summary      Create a video attributed to a student name
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateVideoRequest true "request body"
// @Success      201      {object}   response.Created
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /admin/videos [post]
// @Security     BearerAuth
func (h *VideoHandler) HandleCreateVideo(ctx *gin.Context) {
	var req request.CreateVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	video, err := h.svc.CreateVideo(ctx.Request.Context(), domain.Video{
		Title:       req.Title,
		YoutubeURL:  req.YoutubeURL,
		Description: req.Description,
		StudentName: req.StudentName,
		ThemeWeekID: req.ThemeWeekID,
	})
	if err != nil {
		if errors.Is(err, service.ErrThemeWeekNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("theme week", "ID", req.ThemeWeekID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateVideo -> h.svc.CreateVideo -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created{ID: video.ID, Message: "video created"})
}

// HandleAdminGetVideo godoc
// @Summary      Get one video
// @Tags         admin
// @Produce      json
// @Param        videoID   path       string true "video ID"
// @Success      200      {object}   domain.Video
// @Failure      404      {object}   response.Err
// @Router       /admin/videos/{videoID} [get]
// @Security     BearerAuth
func (h *VideoHandler) HandleAdminGetVideo(ctx *gin.Context) {
	id := ctx.Param("videoID")

	video, err := h.svc.GetVideo(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("video", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleAdminGetVideo -> h.svc.GetVideo -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, video)
}

// HandleUpdateVideo godoc
// @Summary      Update a video (partial)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        videoID   path       string true "video ID"
// @Param        request   body       request.UpdateVideoRequest true "request body"
// @Success      200      {object}   domain.Video
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /admin/videos/{videoID} [put]
// @Security     BearerAuth
func (h *VideoHandler) HandleUpdateVideo(ctx *gin.Context) {
	id := ctx.Param("videoID")

	var req request.UpdateVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	video, err := h.svc.UpdateVideo(ctx.Request.Context(), id, service.VideoUpdate{
		Title:       req.Title,
		YoutubeURL:  req.YoutubeURL,
		Description: req.Description,
		StudentName: req.StudentName,
		ThemeWeekID: req.ThemeWeekID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVideoNotFound):
			response.RenderErr(ctx, response.ErrNotFound("video", "ID", id))
		case errors.Is(err, service.ErrThemeWeekNotFound) && req.ThemeWeekID != nil:
			response.RenderErr(ctx, response.ErrNotFound("theme week", "ID", *req.ThemeWeekID))
		default:
			err = fmt.Errorf("v1.HandleUpdateVideo -> h.svc.UpdateVideo -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, video)
}

// HandleDeleteVideo godoc
// @Summary      Delete a video and its votes
// @Tags         admin
// @Produce      json
// @Param        videoID   path       string true "video ID"
// @Success      200      {object}   map[string]string
// @Failure      404      {object}   response.Err
// @Router       /admin/videos/{videoID} [delete]
// @Security     BearerAuth
func (h *VideoHandler) HandleDeleteVideo(ctx *gin.Context) {
	id := ctx.Param("videoID")

	if err := h.svc.DeleteVideo(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("video", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteVideo -> h.svc.DeleteVideo -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "video deleted"})
}
