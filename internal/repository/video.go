package repository

import (
	"context"
	"fmt"

	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/repository/dao"
)

var (
	ErrVideoNotFound = dao.ErrVideoNotFound
	ErrAlreadyVoted  = dao.ErrAlreadyVoted
)

type VideoDAO interface {
	Insert(ctx context.Context, video dao.Video) (dao.Video, error)
	FindAll(ctx context.Context) ([]dao.Video, error)
	FindAllWithMeta(ctx context.Context, themeWeekID string) ([]dao.VideoWithMeta, error)
	FindByThemeWeekID(ctx context.Context, themeWeekID string) ([]dao.Video, error)
	FindByID(ctx context.Context, id string) (dao.Video, error)
	Update(ctx context.Context, video dao.Video) (dao.Video, error)
	Delete(ctx context.Context, id string) error
}

type VoteDAO interface {
	Insert(ctx context.Context, vote dao.Vote) (dao.Vote, error)
	Exists(ctx context.Context, userID, videoID string) (bool, error)
}

type VideoRepository struct {
	videoDAO VideoDAO
	voteDAO  VoteDAO
}

func NewVideoRepository(videoDAO VideoDAO, voteDAO VoteDAO) *VideoRepository {
	return &VideoRepository{
		videoDAO: videoDAO,
		voteDAO:  voteDAO,
	}
}

func (r *VideoRepository) Create(ctx context.Context, video domain.Video) (domain.Video, error) {
	created, err := r.videoDAO.Insert(ctx, r.domainToDAO(video))
	if err != nil {
		return domain.Video{}, fmt.Errorf("r.videoDAO.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VideoRepository) FindAll(ctx context.Context) ([]domain.Video, error) {
	found, err := r.videoDAO.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.videoDAO.FindAll -> %w", err)
	}

	videos := make([]domain.Video, 0, len(found))
	for _, v := range found {
		videos = append(videos, r.daoToDomain(v))
	}

	return videos, nil
}

func (r *VideoRepository) FindAllWithMeta(ctx context.Context, themeWeekID string) ([]domain.Video, error) {
	found, err := r.videoDAO.FindAllWithMeta(ctx, themeWeekID)
	if err != nil {
		return nil, fmt.Errorf("r.videoDAO.FindAllWithMeta -> %w", err)
	}

	videos := make([]domain.Video, 0, len(found))
	for _, v := range found {
		video := r.daoToDomain(v.Video)
		video.AuthorUsername = v.AuthorUsername
		video.VotesCount = v.VotesCount
		videos = append(videos, video)
	}

	return videos, nil
}

func (r *VideoRepository) FindByThemeWeekID(ctx context.Context, themeWeekID string) ([]domain.Video, error) {
	found, err := r.videoDAO.FindByThemeWeekID(ctx, themeWeekID)
	if err != nil {
		return nil, fmt.Errorf("r.videoDAO.FindByThemeWeekID -> %w", err)
	}

	videos := make([]domain.Video, 0, len(found))
	for _, v := range found {
		videos = append(videos, r.daoToDomain(v))
	}

	return videos, nil
}

func (r *VideoRepository) FindByID(ctx context.Context, id string) (domain.Video, error) {
	found, err := r.videoDAO.FindByID(ctx, id)
	if err != nil {
		return domain.Video{}, fmt.Errorf("r.videoDAO.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *VideoRepository) Update(ctx context.Context, video domain.Video) (domain.Video, error) {
	updated, err := r.videoDAO.Update(ctx, r.domainToDAO(video))
	if err != nil {
		return domain.Video{}, fmt.Errorf("r.videoDAO.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	if err := r.videoDAO.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.videoDAO.Delete -> %w", err)
	}

	return nil
}

func (r *VideoRepository) CreateVote(ctx context.Context, userID, videoID string) (domain.Vote, error) {
	created, err := r.voteDAO.Insert(ctx, dao.Vote{
		UserID:  userID,
		VideoID: videoID,
	})
	if err != nil {
		return domain.Vote{}, fmt.Errorf("r.voteDAO.Insert -> %w", err)
	}

	return domain.Vote{
		ID:        created.ID,
		UserID:    created.UserID,
		VideoID:   created.VideoID,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *VideoRepository) HasVoted(ctx context.Context, userID, videoID string) (bool, error) {
	voted, err := r.voteDAO.Exists(ctx, userID, videoID)
	if err != nil {
		return false, fmt.Errorf("r.voteDAO.Exists -> %w", err)
	}

	return voted, nil
}

func (r *VideoRepository) domainToDAO(v domain.Video) dao.Video {
	var userID *string
	if v.UserID != "" {
		id := v.UserID
		userID = &id
	}

	return dao.Video{
		ID:          v.ID,
		Title:       v.Title,
		YoutubeURL:  v.YoutubeURL,
		Description: v.Description,
		StudentName: v.StudentName,
		UserID:      userID,
		ThemeWeekID: v.ThemeWeekID,
		CreatedAt:   v.CreatedAt,
	}
}

func (r *VideoRepository) daoToDomain(v dao.Video) domain.Video {
	var userID string
	if v.UserID != nil {
		userID = *v.UserID
	}

	return domain.Video{
		ID:          v.ID,
		Title:       v.Title,
		YoutubeURL:  v.YoutubeURL,
		Description: v.Description,
		StudentName: v.StudentName,
		UserID:      userID,
		ThemeWeekID: v.ThemeWeekID,
		CreatedAt:   v.CreatedAt,
	}
}
