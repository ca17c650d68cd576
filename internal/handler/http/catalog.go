package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JegankarthiMCA/i/internal/logger"
	"github.com/JegankarthiMCA/i/internal/store"
	"github.com/JegankarthiMCA/i/internal/utils"
	"github.com/JegankarthiMCA/i/models"
)

// addCourse stores a new course and echoes the stored record back with 201.
func (h *Handler) addCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var course models.Course
	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorMessage(msgFailedToAddCourse), http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.AddCourse(ctx, course)
	if err != nil {
		log.Err(err).Msg("error occurred during course creation")
		utils.WriteJSON(w, models.ErrorMessage(msgFailedToAddCourse), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listCourses returns every course in the catalog.
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	courses, err := h.services.CatalogService.ListCourses(ctx)
	if err != nil {
		log.Err(err).Msg("error occurred during courses retrieval")
		utils.WriteJSON(w, models.ErrorMessage(msgFailedToFetchCourses), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, courses, http.StatusOK)
}

// addVideo stores a new video after verifying that the course it references
// exists. The course is referenced by title, not id, so a missing course is
// reported as 404 rather than a constraint violation.
func (h *Handler) addVideo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var video models.Video
	if err := json.NewDecoder(r.Body).Decode(&video); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorMessage(msgFailedToAddVideo), http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.AddVideo(ctx, video)
	if err != nil {
		if errors.Is(err, store.ErrCourseNotFound) {
			log.Err(err).Str("course_title", video.CourseTitle).Msg("course not found")
			utils.WriteJSON(w, models.ErrorMessage(msgCourseNotFound), http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error occurred during video creation")
		utils.WriteJSON(w, models.ErrorMessage(msgFailedToAddVideo), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listVideosByCourse returns the videos attached to the course named by the
// courseTitle path parameter. A course with no videos is a 404.
func (h *Handler) listVideosByCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	courseTitle := chi.URLParam(r, "courseTitle")

	videos, err := h.services.CatalogService.ListVideosByCourse(ctx, courseTitle)
	if err != nil {
		if errors.Is(err, store.ErrNoVideosFound) {
			log.Err(err).Str("course_title", courseTitle).Msg("no videos found for course")
			utils.WriteJSON(w, models.ErrorMessage(msgNoVideosForCourse), http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error occurred during videos retrieval")
		utils.WriteJSON(w, models.ErrorMessage(msgFailedToFetchVideos), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, videos, http.StatusOK)
}
