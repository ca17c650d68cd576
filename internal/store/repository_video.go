package store

import (
	"context"
	"fmt"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/models"
)

// videoRepository is the PostgreSQL-backed implementation of
// [VideoRepository].
type videoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVideoRepository constructs a [VideoRepository] backed by the provided
// database connection and logger.
func NewVideoRepository(db *DB, logger *logger.Logger) VideoRepository {
	logger.Debug().Msg("creating video repository")
	return &videoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVideo persists a new video and returns it with its ID assigned.
// The referenced course is validated at the service layer, not here.
func (r *videoRepository) CreateVideo(ctx context.Context, video models.Video) (models.Video, error) {
	log := logger.FromContext(ctx)

	var created models.Video
	row := r.db.QueryRowContext(ctx, createVideo, video.Title, video.Description, video.URL, video.CourseTitle)
	if err := row.Scan(&created.ID, &created.Title, &created.Description, &created.URL, &created.CourseTitle); err != nil {
		log.Err(err).Str("func", "*videoRepository.CreateVideo").Msg("error: inserting video")
		return models.Video{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindVideosByCourseTitle returns the videos of the given course ordered by
// ID. Returns [ErrNoVideosFound] when the result set is empty.
func (r *videoRepository) FindVideosByCourseTitle(ctx context.Context, courseTitle string) ([]models.Video, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findVideosByCourseTitle, courseTitle)
	if err != nil {
		log.Err(err).Str("func", "*videoRepository.FindVideosByCourseTitle").Msg("error: executing video query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	videos := make([]models.Video, 0)
	for rows.Next() {
		var video models.Video
		if err := rows.Scan(&video.ID, &video.Title, &video.Description, &video.URL, &video.CourseTitle); err != nil {
			log.Err(err).Str("func", "*videoRepository.FindVideosByCourseTitle").Msg("error: scanning video rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(videos) == 0 {
		return nil, ErrNoVideosFound
	}

	return videos, nil
}
