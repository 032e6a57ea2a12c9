package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/metrics"
	"github.com/themeweek/showcase-api/internal/repository"
)

var (
	ErrVideoNotFound = repository.ErrVideoNotFound
	ErrAlreadyVoted  = repository.ErrAlreadyVoted
)

type VideoRepository interface {
	Create(ctx context.Context, video domain.Video) (domain.Video, error)
	FindAll(ctx context.Context) ([]domain.Video, error)
	FindAllWithMeta(ctx context.Context, themeWeekID string) ([]domain.Video, error)
	FindByID(ctx context.Context, id string) (domain.Video, error)
	Update(ctx context.Context, video domain.Video) (domain.Video, error)
	Delete(ctx context.Context, id string) error
	CreateVote(ctx context.Context, userID, videoID string) (domain.Vote, error)
	HasVoted(ctx context.Context, userID, videoID string) (bool, error)
}

// VideoUpdate is a partial update: nil fields keep their stored values.
type VideoUpdate struct {
	Title       *string
	YoutubeURL  *string
	Description *string
	StudentName *string
	ThemeWeekID *string
}

type VideoService struct {
	repo VideoRepository
}

func NewVideoService(repo VideoRepository) *VideoService {
	return &VideoService{
		repo: repo,
	}
}

// ListVideos returns videos with resolved author and vote count, optionally
// restricted to one theme week.
func (s *VideoService) ListVideos(ctx context.Context, themeWeekID string) ([]domain.Video, error) {
	videos, err := s.repo.FindAllWithMeta(ctx, themeWeekID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllWithMeta -> %w", err)
	}

	return videos, nil
}

func (s *VideoService) ListAllVideos(ctx context.Context) ([]domain.Video, error) {
	videos, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return videos, nil
}

func (s *VideoService) GetVideo(ctx context.Context, id string) (domain.Video, error) {
	video, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Video{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return video, nil
}

// SubmitVideo creates a member-submitted video. The owner always comes from
// the authenticated token, never from the request body.
func (s *VideoService) SubmitVideo(ctx context.Context, video domain.Video, userID string) (domain.Video, error) {
	video.UserID = userID
	video.StudentName = ""

	created, err := s.repo.Create(ctx, video)
	if err != nil {
		return domain.Video{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	metrics.VideosSubmitted.Inc()

	return created, nil
}

// CreateVideo creates an admin-entered video attributed via StudentName.
func (s *VideoService) CreateVideo(ctx context.Context, video domain.Video) (domain.Video, error) {
	video.UserID = ""

	created, err := s.repo.Create(ctx, video)
	if err != nil {
		return domain.Video{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// CastVote records one vote per (user, video). The HasVoted pre-check is an
// early exit only; the unique index in the store settles concurrent races.
func (s *VideoService) CastVote(ctx context.Context, userID, videoID string) (domain.Vote, error) {
	if _, err := s.repo.FindByID(ctx, videoID); err != nil {
		return domain.Vote{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	voted, err := s.repo.HasVoted(ctx, userID, videoID)
	if err != nil {
		return domain.Vote{}, fmt.Errorf("s.repo.HasVoted -> %w", err)
	}
	if voted {
		return domain.Vote{}, ErrAlreadyVoted
	}

	vote, err := s.repo.CreateVote(ctx, userID, videoID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyVoted) {
			return domain.Vote{}, ErrAlreadyVoted
		}

		return domain.Vote{}, fmt.Errorf("s.repo.CreateVote -> %w", err)
	}

	metrics.VotesCast.Inc()

	return vote, nil
}

func (s *VideoService) UpdateVideo(ctx context.Context, id string, update VideoUpdate) (domain.Video, error) {
	video, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Video{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if update.Title != nil {
		video.Title = *update.Title
	}
	if update.YoutubeURL != nil {
		video.YoutubeURL = *update.YoutubeURL
	}
	if update.Description != nil {
		video.Description = *update.Description
	}
	if update.StudentName != nil {
		video.StudentName = *update.StudentName
	}
	if update.ThemeWeekID != nil {
		video.ThemeWeekID = *update.ThemeWeekID
	}

	updated, err := s.repo.Update(ctx, video)
	if err != nil {
		return domain.Video{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
