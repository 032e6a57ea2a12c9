package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/repository"
	"github.com/themeweek/showcase-api/internal/service"
)

type fakeThemeWeekService struct {
	listCountsFn func(ctx context.Context) ([]domain.ThemeWeek, error)
	getDetailFn  func(ctx context.Context, id string) (domain.ThemeWeek, []domain.Video, error)
	updateFn     func(ctx context.Context, id string, update service.ThemeWeekUpdate) (domain.ThemeWeek, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeThemeWeekService) ListThemeWeeks(context.Context) ([]domain.ThemeWeek, error) {
	return nil, nil
}

func (f *fakeThemeWeekService) ListThemeWeeksWithCounts(ctx context.Context) ([]domain.ThemeWeek, error) {
	return f.listCountsFn(ctx)
}

func (f *fakeThemeWeekService) GetThemeWeek(context.Context, string) (domain.ThemeWeek, error) {
	return domain.ThemeWeek{}, nil
}

func (f *fakeThemeWeekService) GetThemeWeekWithVideos(ctx context.Context, id string) (domain.ThemeWeek, []domain.Video, error) {
	return f.getDetailFn(ctx, id)
}

func (f *fakeThemeWeekService) CreateThemeWeek(_ context.Context, week domain.ThemeWeek) (domain.ThemeWeek, error) {
	week.ID = "week-1"

	return week, nil
}

func (f *fakeThemeWeekService) UpdateThemeWeek(ctx context.Context, id string, update service.ThemeWeekUpdate) (domain.ThemeWeek, error) {
	if f.updateFn == nil {
		return domain.ThemeWeek{}, nil
	}

	return f.updateFn(ctx, id, update)
}

func (f *fakeThemeWeekService) DeleteThemeWeek(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeMaterialLister struct {
	materials []domain.Material
}

func (f *fakeMaterialLister) ListMaterials(context.Context) ([]domain.Material, error) {
	return f.materials, nil
}

func setupThemeWeekRouter(svc ThemeWeekService, materials MaterialLister) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewThemeWeekHandler(svc, materials)

	router := gin.New()
	router.GET("/api/theme-weeks/", handler.HandleListThemeWeeks)
	router.PUT("/api/admin/theme-weeks/:weekID", handler.HandleUpdateThemeWeek)
	router.GET("/api/theme-weeks/:weekID", func(ctx *gin.Context) {
		if ctx.Param("weekID") == "materials" {
			handler.HandleListPublicMaterials(ctx)
			return
		}

		handler.HandleGetThemeWeek(ctx)
	})
	router.DELETE("/api/admin/theme-weeks/:weekID", handler.HandleDeleteThemeWeek)

	return router
}

func TestHandleListThemeWeeks(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	svc := &fakeThemeWeekService{
		listCountsFn: func(context.Context) ([]domain.ThemeWeek, error) {
			return []domain.ThemeWeek{
				{ID: "week-1", Title: "Animation Week", StartDate: start, EndDate: start.AddDate(0, 0, 4), VideosCount: 3},
				{ID: "week-2", Title: "Fresh Week", StartDate: start, EndDate: start.AddDate(0, 0, 4)},
			}, nil
		},
	}
	router := setupThemeWeekRouter(svc, &fakeMaterialLister{})

	w := performRequest(router, http.MethodGet, "/api/theme-weeks/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)

	// A week with no videos still serializes its zero count.
	assert.Equal(t, float64(3), resp[0]["videos_count"])
	assert.Equal(t, float64(0), resp[1]["videos_count"])
}

func TestHandleGetThemeWeek(t *testing.T) {
	svc := &fakeThemeWeekService{
		getDetailFn: func(_ context.Context, id string) (domain.ThemeWeek, []domain.Video, error) {
			if id != "week-1" {
				return domain.ThemeWeek{}, nil, service.ErrThemeWeekNotFound
			}

			week := domain.ThemeWeek{ID: "week-1", Title: "Animation Week"}
			videos := []domain.Video{
				{ID: "v1", Title: "Entry", AuthorUsername: "alice", VotesCount: 1},
			}

			return week, videos, nil
		},
	}
	router := setupThemeWeekRouter(svc, &fakeMaterialLister{})

	t.Run("found", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/theme-weeks/week-1", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			ID     string `json:"id"`
			Videos []struct {
				Author string `json:"author"`
			} `json:"videos"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "week-1", resp.ID)
		require.Len(t, resp.Videos, 1)
		assert.Equal(t, "alice", resp.Videos[0].Author)
	})

	t.Run("not found", func(t *testing.T) {
		w := performRequest(router, http.MethodGet, "/api/theme-weeks/missing", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleListPublicMaterials(t *testing.T) {
	materials := &fakeMaterialLister{materials: []domain.Material{
		{ID: "m1", Title: "Sketchbook", StudentName: "Dana", MaterialType: "pdf", ThemeWeekID: "week-1"},
	}}
	router := setupThemeWeekRouter(&fakeThemeWeekService{}, materials)

	// The materials listing shares the :weekID route segment.
	w := performRequest(router, http.MethodGet, "/api/theme-weeks/materials", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Sketchbook", resp[0]["title"])
}

func TestHandleUpdateThemeWeek_InvertedDates(t *testing.T) {
	svc := &fakeThemeWeekService{
		updateFn: func(context.Context, string, service.ThemeWeekUpdate) (domain.ThemeWeek, error) {
			return domain.ThemeWeek{}, service.ErrInvalidDateRange
		},
	}
	router := setupThemeWeekRouter(svc, &fakeMaterialLister{})

	w := performRequest(router, http.MethodPut, "/api/admin/theme-weeks/week-1", gin.H{
		"end_date": "2025-03-01T00:00:00Z",
	}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "end_date must not be before start_date")
}

func TestHandleDeleteThemeWeek(t *testing.T) {
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
				return service.ErrThemeWeekNotFound
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "still referenced by videos",
			deleteFn: func(context.Context, string) error {
				return &repository.ReferencedError{Entity: "theme week", ReferencedBy: "videos"}
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupThemeWeekRouter(&fakeThemeWeekService{deleteFn: tt.deleteFn}, &fakeMaterialLister{})

			w := performRequest(router, http.MethodDelete, "/api/admin/theme-weeks/week-9", nil, nil)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
