package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/repository"
)

type fakeVideoRepo struct {
	videos map[string]domain.Video
	votes  map[string]bool
	nextID int
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{
		videos: make(map[string]domain.Video),
		votes:  make(map[string]bool),
	}
}

func voteKey(userID, videoID string) string {
	return userID + "/" + videoID
}

func (f *fakeVideoRepo) Create(_ context.Context, video domain.Video) (domain.Video, error) {
	f.nextID++
	video.ID = fmt.Sprintf("video-%d", f.nextID)
	f.videos[video.ID] = video

	return video, nil
}

func (f *fakeVideoRepo) FindAll(_ context.Context) ([]domain.Video, error) {
	videos := make([]domain.Video, 0, len(f.videos))
	for _, video := range f.videos {
		videos = append(videos, video)
	}

	return videos, nil
}

func (f *fakeVideoRepo) FindAllWithMeta(ctx context.Context, themeWeekID string) ([]domain.Video, error) {
	videos := make([]domain.Video, 0, len(f.videos))
	for _, video := range f.videos {
		if themeWeekID != "" && video.ThemeWeekID != themeWeekID {
			continue
		}
		videos = append(videos, video)
	}

	return videos, nil
}

func (f *fakeVideoRepo) FindByID(_ context.Context, id string) (domain.Video, error) {
	video, ok := f.videos[id]
	if !ok {
		return domain.Video{}, repository.ErrVideoNotFound
	}

	return video, nil
}

func (f *fakeVideoRepo) Update(_ context.Context, video domain.Video) (domain.Video, error) {
	if _, ok := f.videos[video.ID]; !ok {
		return domain.Video{}, repository.ErrVideoNotFound
	}

	f.videos[video.ID] = video

	return video, nil
}

func (f *fakeVideoRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.videos[id]; !ok {
		return repository.ErrVideoNotFound
	}

	delete(f.videos, id)

	return nil
}

func (f *fakeVideoRepo) CreateVote(_ context.Context, userID, videoID string) (domain.Vote, error) {
	if _, ok := f.videos[videoID]; !ok {
		return domain.Vote{}, repository.ErrVideoNotFound
	}

	key := voteKey(userID, videoID)
	if f.votes[key] {
		return domain.Vote{}, repository.ErrAlreadyVoted
	}
	f.votes[key] = true

	return domain.Vote{ID: "vote-" + key, UserID: userID, VideoID: videoID}, nil
}

func (f *fakeVideoRepo) HasVoted(_ context.Context, userID, videoID string) (bool, error) {
	return f.votes[voteKey(userID, videoID)], nil
}

func TestVideoService_SubmitVideo(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo)

	created, err := svc.SubmitVideo(context.Background(), domain.Video{
		Title:       "My Entry",
		YoutubeURL:  "https://youtube.com/watch?v=abc",
		ThemeWeekID: "week-1",
		StudentName: "should be ignored",
	}, "user-1")
	require.NoError(t, err)

	// Ownership always comes from the token.
	assert.Equal(t, "user-1", created.UserID)
	assert.Empty(t, created.StudentName)
}

func TestVideoService_CreateVideo(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo)

	created, err := svc.CreateVideo(context.Background(), domain.Video{
		Title:       "Archive Entry",
		StudentName: "Charlie",
		ThemeWeekID: "week-1",
		UserID:      "should be ignored",
	})
	require.NoError(t, err)

	assert.Empty(t, created.UserID)
	assert.Equal(t, "Charlie", created.StudentName)
}

func TestVideoService_ListVideos_FilterByThemeWeek(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo)

	_, err := svc.CreateVideo(context.Background(), domain.Video{Title: "a", StudentName: "A", ThemeWeekID: "week-1"})
	require.NoError(t, err)
	_, err = svc.CreateVideo(context.Background(), domain.Video{Title: "b", StudentName: "B", ThemeWeekID: "week-2"})
	require.NoError(t, err)

	all, err := svc.ListVideos(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.ListVideos(context.Background(), "week-1")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].Title)
}

func TestVideoService_CastVote(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo)

	video, err := svc.CreateVideo(context.Background(), domain.Video{Title: "a", StudentName: "A", ThemeWeekID: "week-1"})
	require.NoError(t, err)

	vote, err := svc.CastVote(context.Background(), "user-1", video.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", vote.UserID)
	assert.Equal(t, video.ID, vote.VideoID)

	t.Run("second vote is rejected", func(t *testing.T) {
		_, err := svc.CastVote(context.Background(), "user-1", video.ID)
		assert.ErrorIs(t, err, ErrAlreadyVoted)
	})

	t.Run("another user may vote", func(t *testing.T) {
		_, err := svc.CastVote(context.Background(), "user-2", video.ID)
		assert.NoError(t, err)
	})

	t.Run("unknown video", func(t *testing.T) {
		_, err := svc.CastVote(context.Background(), "user-1", "missing")
		assert.ErrorIs(t, err, ErrVideoNotFound)
	})
}

func TestVideoService_UpdateVideo_PartialPatch(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo)

	video, err := svc.CreateVideo(context.Background(), domain.Video{
		Title:       "Old Title",
		YoutubeURL:  "https://youtube.com/watch?v=abc",
		StudentName: "Charlie",
		ThemeWeekID: "week-1",
	})
	require.NoError(t, err)

	newTitle := "New Title"
	updated, err := svc.UpdateVideo(context.Background(), video.ID, VideoUpdate{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "https://youtube.com/watch?v=abc", updated.YoutubeURL)
	assert.Equal(t, "Charlie", updated.StudentName)
}

func TestVideoService_DeleteVideo(t *testing.T) {
	repo := newFakeVideoRepo()
	svc := NewVideoService(repo)

	video, err := svc.CreateVideo(context.Background(), domain.Video{Title: "a", StudentName: "A", ThemeWeekID: "week-1"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVideo(context.Background(), video.ID))
	assert.ErrorIs(t, svc.DeleteVideo(context.Background(), video.ID), ErrVideoNotFound)
}
