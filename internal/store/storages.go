package store

import (
	"github.com/JegankarthiMCA/i/internal/logger"
)

// Storages bundles all repositories behind a single injection point for the
// service layer.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository
	VideoRepository  VideoRepository
}

// NewStorages constructs every repository over the shared database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		CourseRepository: NewCourseRepository(db, logger),
		VideoRepository:  NewVideoRepository(db, logger),
	}
}
