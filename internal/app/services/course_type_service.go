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

// CourseTypeService defines the interface for course type operations
type CourseTypeService interface {
	CreateCourseType(ctx context.Context, name string) (*models.CourseType, error)
	GetCourseTypeByID(ctx context.Context, id string) (*models.CourseType, error)
	GetAllCourseTypes(ctx context.Context) ([]models.CourseType, error)
	UpdateCourseType(ctx context.Context, id, name string) (*models.CourseType, error)
	DeleteCourseType(ctx context.Context, id string) error
}

// courseTypeServiceImpl implements the CourseTypeService interface
type courseTypeServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewCourseTypeService creates a new course type service instance
func NewCourseTypeService(st *store.Store, lgr zerolog.Logger) CourseTypeService {
	return &courseTypeServiceImpl{
		store:  st,
		logger: lgr.With().Str("service", "courseType").Logger(),
	}
}

// CreateCourseType creates a new course type
func (s *courseTypeServiceImpl) CreateCourseType(ctx context.Context, name string) (*models.CourseType, error) {
	if errs := validation.ValidateName("Course type name", name); !errs.Valid() {
		return nil, apperrors.NewValidationError(errs)
	}

	var created models.CourseType
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		created = models.CourseType{ID: tx.NewID(), Name: name}
		return tx.CourseTypes().Insert(created)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating course type: %w", err)
	}

	s.logger.Debug().Str("courseTypeID", created.ID).Msg("Course type created")
	return &created, nil
}

// GetCourseTypeByID retrieves a course type by ID
func (s *courseTypeServiceImpl) GetCourseTypeByID(ctx context.Context, id string) (*models.CourseType, error) {
	var found models.CourseType
	err := s.store.View(func(tx *store.Tx) error {
		ct, ok := tx.CourseTypes().Find(id)
		if !ok {
			return apperrors.ErrCourseTypeNotFound
		}
		found = ct
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// GetAllCourseTypes retrieves all course types in insertion order
func (s *courseTypeServiceImpl) GetAllCourseTypes(ctx context.Context) ([]models.CourseType, error) {
	var all []models.CourseType
	err := s.store.View(func(tx *store.Tx) error {
		all = tx.CourseTypes().All()
		return nil
	})
	return all, err
}

// UpdateCourseType renames an existing course type. Offerings keep their
// previously derived names.
func (s *courseTypeServiceImpl) UpdateCourseType(ctx context.Context, id, name string) (*models.CourseType, error) {
	var updated models.CourseType
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		ct, ok := tx.CourseTypes().Find(id)
		if !ok {
			return apperrors.ErrCourseTypeNotFound
		}
		if errs := validation.ValidateName("Course type name", name); !errs.Valid() {
			return apperrors.NewValidationError(errs)
		}

		ct.Name = name
		updated = ct
		return tx.CourseTypes().Replace(ct)
	})
	if err != nil {
		return nil, wrapUnexpected("error updating course type", err)
	}

	s.logger.Debug().Str("courseTypeID", id).Msg("Course type updated")
	return &updated, nil
}

// DeleteCourseType deletes a course type that no offering references
func (s *courseTypeServiceImpl) DeleteCourseType(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		if _, ok := tx.CourseTypes().Find(id); !ok {
			return apperrors.ErrCourseTypeNotFound
		}
		if tx.CourseOfferings().Any(func(co models.CourseOffering) bool { return co.CourseTypeID == id }) {
			return apperrors.ErrCourseTypeInUse
		}
		return tx.CourseTypes().Remove(id)
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrReferentialIntegrity) {
			s.logger.Info().Str("courseTypeID", id).Msg("Refused to delete course type used by offerings")
		}
		return wrapUnexpected("error deleting course type", err)
	}

	s.logger.Debug().Str("courseTypeID", id).Msg("Course type deleted")
	return nil
}
