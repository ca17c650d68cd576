package service

import (
	"context"
	"fmt"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/store"
	"github.com/JegankarthiMCA/i/models"
)

// catalogService implements CatalogService over the course and video
// repositories.
type catalogService struct {
	courseRepository store.CourseRepository
	videoRepository  store.VideoRepository
	logger           *logger.Logger
}

// NewCatalogService constructs a CatalogService backed by the given
// repositories.
func NewCatalogService(courseRepository store.CourseRepository, videoRepository store.VideoRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		courseRepository: courseRepository,
		videoRepository:  videoRepository,
		logger:           logger,
	}
}

// AddCourse creates a new course.
func (s *catalogService) AddCourse(ctx context.Context, course models.Course) (models.Course, error) {
	log := logger.FromContext(ctx)

	if course.Name == "" {
		return models.Course{}, ErrInvalidDataProvided
	}

	created, err := s.courseRepository.CreateCourse(ctx, course)
	if err != nil {
		log.Err(err).Str("name", course.Name).Msg("course creation failed")
		return models.Course{}, fmt.Errorf("course creation failed: %w", err)
	}

	return created, nil
}

// ListCourses returns all courses.
func (s *catalogService) ListCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepository.FindAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("course listing failed: %w", err)
	}

	return courses, nil
}

// AddVideo creates a new video. The referenced course must exist; a dangling
// course title surfaces as store.ErrCourseNotFound for the handler to map to
// 404.
func (s *catalogService) AddVideo(ctx context.Context, video models.Video) (models.Video, error) {
	log := logger.FromContext(ctx)

	if video.Title == "" || video.CourseTitle == "" {
		return models.Video{}, ErrInvalidDataProvided
	}

	if _, err := s.courseRepository.FindCourseByName(ctx, video.CourseTitle); err != nil {
		log.Err(err).Str("courseTitle", video.CourseTitle).Msg("course lookup for video failed")
		return models.Video{}, fmt.Errorf("course lookup for video failed: %w", err)
	}

	created, err := s.videoRepository.CreateVideo(ctx, video)
	if err != nil {
		log.Err(err).Str("title", video.Title).Msg("video creation failed")
		return models.Video{}, fmt.Errorf("video creation failed: %w", err)
	}

	return created, nil
}

// ListVideosByCourse returns the videos of the given course.
func (s *catalogService) ListVideosByCourse(ctx context.Context, courseTitle string) ([]models.Video, error) {
	if courseTitle == "" {
		return nil, ErrInvalidDataProvided
	}

	videos, err := s.videoRepository.FindVideosByCourseTitle(ctx, courseTitle)
	if err != nil {
		return nil, fmt.Errorf("video search by course failed: %w", err)
	}

	return videos, nil
}
