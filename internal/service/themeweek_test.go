package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/repository"
)

type fakeThemeWeekRepo struct {
	weeks      map[string]domain.ThemeWeek
	videoCount map[string]int
	nextID     int
}

func newFakeThemeWeekRepo() *fakeThemeWeekRepo {
	return &fakeThemeWeekRepo{
		weeks:      make(map[string]domain.ThemeWeek),
		videoCount: make(map[string]int),
	}
}

func (f *fakeThemeWeekRepo) Create(_ context.Context, week domain.ThemeWeek) (domain.ThemeWeek, error) {
	f.nextID++
	week.ID = fmt.Sprintf("week-%d", f.nextID)
	f.weeks[week.ID] = week

	return week, nil
}

func (f *fakeThemeWeekRepo) FindAll(_ context.Context) ([]domain.ThemeWeek, error) {
	weeks := make([]domain.ThemeWeek, 0, len(f.weeks))
	for _, week := range f.weeks {
		weeks = append(weeks, week)
	}

	return weeks, nil
}

func (f *fakeThemeWeekRepo) FindAllWithVideoCounts(ctx context.Context) ([]domain.ThemeWeek, error) {
	weeks, _ := f.FindAll(ctx)
	for i := range weeks {
		weeks[i].VideosCount = f.videoCount[weeks[i].ID]
	}

	return weeks, nil
}

func (f *fakeThemeWeekRepo) FindByID(_ context.Context, id string) (domain.ThemeWeek, error) {
	week, ok := f.weeks[id]
	if !ok {
		return domain.ThemeWeek{}, repository.ErrThemeWeekNotFound
	}

	return week, nil
}

func (f *fakeThemeWeekRepo) Update(_ context.Context, week domain.ThemeWeek) (domain.ThemeWeek, error) {
	if _, ok := f.weeks[week.ID]; !ok {
		return domain.ThemeWeek{}, repository.ErrThemeWeekNotFound
	}

	f.weeks[week.ID] = week

	return week, nil
}

func (f *fakeThemeWeekRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.weeks[id]; !ok {
		return repository.ErrThemeWeekNotFound
	}
	if f.videoCount[id] > 0 {
		return &repository.ReferencedError{Entity: "theme week", ReferencedBy: "videos"}
	}

	delete(f.weeks, id)

	return nil
}

type fakeWeekVideoRepo struct {
	byWeek map[string][]domain.Video
}

func (f *fakeWeekVideoRepo) FindByThemeWeekID(_ context.Context, themeWeekID string) ([]domain.Video, error) {
	return f.byWeek[themeWeekID], nil
}

func TestThemeWeekService_GetThemeWeekWithVideos(t *testing.T) {
	repo := newFakeThemeWeekRepo()
	created, err := repo.Create(context.Background(), domain.ThemeWeek{Title: "Animation Week"})
	require.NoError(t, err)

	videoRepo := &fakeWeekVideoRepo{byWeek: map[string][]domain.Video{
		created.ID: {{Title: "a"}, {Title: "b"}},
	}}
	svc := NewThemeWeekService(repo, videoRepo)

	week, videos, err := svc.GetThemeWeekWithVideos(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Animation Week", week.Title)
	assert.Len(t, videos, 2)

	_, _, err = svc.GetThemeWeekWithVideos(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrThemeWeekNotFound)
}

func TestThemeWeekService_ListThemeWeeksWithCounts(t *testing.T) {
	repo := newFakeThemeWeekRepo()
	created, err := repo.Create(context.Background(), domain.ThemeWeek{Title: "Animation Week"})
	require.NoError(t, err)
	repo.videoCount[created.ID] = 3

	svc := NewThemeWeekService(repo, &fakeWeekVideoRepo{})

	weeks, err := svc.ListThemeWeeksWithCounts(context.Background())
	require.NoError(t, err)
	require.Len(t, weeks, 1)
	assert.Equal(t, 3, weeks[0].VideosCount)
}

func TestThemeWeekService_UpdateThemeWeek_PartialPatch(t *testing.T) {
	repo := newFakeThemeWeekRepo()
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(context.Background(), domain.ThemeWeek{
		Title:     "Animation Week",
		ResultURL: "https://example.com/results",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
	})
	require.NoError(t, err)

	svc := NewThemeWeekService(repo, &fakeWeekVideoRepo{})

	newTitle := "Stop Motion Week"
	updated, err := svc.UpdateThemeWeek(context.Background(), created.ID, ThemeWeekUpdate{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Stop Motion Week", updated.Title)
	assert.Equal(t, "https://example.com/results", updated.ResultURL)
	assert.Equal(t, start, updated.StartDate)
}

func TestThemeWeekService_UpdateThemeWeek_RejectsInvertedDates(t *testing.T) {
	repo := newFakeThemeWeekRepo()
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(context.Background(), domain.ThemeWeek{
		Title:     "Animation Week",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 4),
	})
	require.NoError(t, err)

	svc := NewThemeWeekService(repo, &fakeWeekVideoRepo{})

	badEnd := start.AddDate(0, 0, -1)
	_, err = svc.UpdateThemeWeek(context.Background(), created.ID, ThemeWeekUpdate{EndDate: &badEnd})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	badStart := start.AddDate(0, 0, 10)
	_, err = svc.UpdateThemeWeek(context.Background(), created.ID, ThemeWeekUpdate{StartDate: &badStart})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// The stored week keeps its original range after the rejected updates.
	week, err := svc.GetThemeWeek(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, start, week.StartDate)
	assert.Equal(t, start.AddDate(0, 0, 4), week.EndDate)
}

func TestThemeWeekService_DeleteThemeWeek_Referenced(t *testing.T) {
	repo := newFakeThemeWeekRepo()
	created, err := repo.Create(context.Background(), domain.ThemeWeek{Title: "Animation Week"})
	require.NoError(t, err)
	repo.videoCount[created.ID] = 1

	svc := NewThemeWeekService(repo, &fakeWeekVideoRepo{})

	err = svc.DeleteThemeWeek(context.Background(), created.ID)
	require.Error(t, err)

	var refErr *ReferencedError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "videos", refErr.ReferencedBy)
}
