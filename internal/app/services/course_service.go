package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/store"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, name string) (*models.Course, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	UpdateCourse(ctx context.Context, id, name string) (*models.Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(st *store.Store, lgr zerolog.Logger) CourseService {
	return &courseServiceImpl{
		store:  st,
		logger: lgr.With().Str("service", "course").Logger(),
	}
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, name string) (*models.Course, error) {
	if errs := validation.ValidateName("Course name", name); !errs.Valid() {
		return nil, apperrors.NewValidationError(errs)
	}

	var created models.Course
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		created = models.Course{ID: tx.NewID(), Name: name}
		return tx.Courses().Insert(created)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Debug().Str("courseID", created.ID).Msg("Course created")
	return &created, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	var found models.Course
	err := s.store.View(func(tx *store.Tx) error {
		c, ok := tx.Courses().Find(id)
		if !ok {
			return apperrors.ErrCourseNotFound
		}
		found = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// GetAllCourses retrieves all courses in insertion order
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	var all []models.Course
	err := s.store.View(func(tx *store.Tx) error {
		all = tx.Courses().All()
		return nil
	})
	return all, err
}

// UpdateCourse renames an existing course. Offerings keep their
// previously derived names.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id, name string) (*models.Course, error) {
	var updated models.Course
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		c, ok := tx.Courses().Find(id)
		if !ok {
			return apperrors.ErrCourseNotFound
		}
		if errs := validation.ValidateName("Course name", name); !errs.Valid() {
			return apperrors.NewValidationError(errs)
		}

		c.Name = name
		updated = c
		return tx.Courses().Replace(c)
	})
	if err != nil {
		return nil, wrapUnexpected("error updating course", err)
	}

	s.logger.Debug().Str("courseID", id).Msg("Course updated")
	return &updated, nil
}

// DeleteCourse deletes a course that no offering references
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Courses().Find(id); !ok {
			return apperrors.ErrCourseNotFound
		}
		if tx.CourseOfferings().Any(func(co models.CourseOffering) bool { return co.CourseID == id }) {
			return apperrors.ErrCourseInUse
		}
		return tx.Courses().Remove(id)
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrReferentialIntegrity) {
			s.logger.Info().Str("courseID", id).Msg("Refused to delete course used by offerings")
		}
		return wrapUnexpected("error deleting course", err)
	}

	s.logger.Debug().Str("courseID", id).Msg("Course deleted")
	return nil
}
