package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/store"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// CourseOfferingService defines the interface for course offering operations
type CourseOfferingService interface {
	CreateCourseOffering(ctx context.Context, courseTypeID, courseID string) (*models.CourseOffering, error)
	GetCourseOfferingByID(ctx context.Context, id string) (*models.CourseOffering, error)
	// GetAllCourseOfferings filters by course type; "" returns every offering
	GetAllCourseOfferings(ctx context.Context, courseTypeID string) ([]models.CourseOffering, error)
	GetOfferingSummaries(ctx context.Context, courseTypeID string) ([]models.OfferingSummary, error)
	UpdateCourseOffering(ctx context.Context, id, courseTypeID, courseID string) (*models.CourseOffering, error)
	DeleteCourseOffering(ctx context.Context, id string) error
}

type courseOfferingServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewCourseOfferingService creates a new course offering service instance
func NewCourseOfferingService(st *store.Store, lgr zerolog.Logger) CourseOfferingService {
	return &courseOfferingServiceImpl{
		store:  st,
		logger: lgr.With().Str("service", "courseOffering").Logger(),
	}
}

// resolveOffering validates the selected pair against tx and builds the
// derived name. excludeID is the offering being edited, if any.
func resolveOffering(tx *store.Tx, courseTypeID, courseID, excludeID string) (string, error) {
	errs := validation.ValidateOfferingSelection(courseTypeID, courseID, tx.CourseOfferings().All(), excludeID)

	courseType, ctOK := tx.CourseTypes().Find(courseTypeID)
	if courseTypeID != "" && !ctOK {
		errs.Add("courseTypeId", validation.KindNotFound, "Course type does not exist")
	}
	course, cOK := tx.Courses().Find(courseID)
	if courseID != "" && !cOK {
		errs.Add("courseId", validation.KindNotFound, "Course does not exist")
	}

	if !errs.Valid() {
		return "", apperrors.NewValidationError(errs)
	}
	return models.OfferingName(courseType.Name, course.Name), nil
}

// CreateCourseOffering creates an offering for a course type/course pair
func (s *courseOfferingServiceImpl) CreateCourseOffering(ctx context.Context, courseTypeID, courseID string) (*models.CourseOffering, error) {
	var created models.CourseOffering
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		name, err := resolveOffering(tx, courseTypeID, courseID, "")
		if err != nil {
			return err
		}

		created = models.CourseOffering{
			ID:           tx.NewID(),
			CourseTypeID: courseTypeID,
			CourseID:     courseID,
			Name:         name,
		}
		return tx.CourseOfferings().Insert(created)
	})
	if err != nil {
		return nil, wrapUnexpected("error creating course offering", err)
	}

	s.logger.Debug().Str("offeringID", created.ID).Str("name", created.Name).Msg("Course offering created")
	return &created, nil
}

// GetCourseOfferingByID retrieves an offering by ID
func (s *courseOfferingServiceImpl) GetCourseOfferingByID(ctx context.Context, id string) (*models.CourseOffering, error) {
	var found models.CourseOffering
	err := s.store.View(func(tx *store.Tx) error {
		co, ok := tx.CourseOfferings().Find(id)
		if !ok {
			return apperrors.ErrOfferingNotFound
		}
		found = co
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// GetAllCourseOfferings retrieves offerings, optionally for one course type
func (s *courseOfferingServiceImpl) GetAllCourseOfferings(ctx context.Context, courseTypeID string) ([]models.CourseOffering, error) {
	var offerings []models.CourseOffering
	err := s.store.View(func(tx *store.Tx) error {
		offerings = offeringsByCourseType(tx, courseTypeID)
		return nil
	})
	return offerings, err
}

// GetOfferingSummaries lists offerings with resolved names and their
// registrations, as shown on the registration overview.
func (s *courseOfferingServiceImpl) GetOfferingSummaries(ctx context.Context, courseTypeID string) ([]models.OfferingSummary, error) {
	var summaries []models.OfferingSummary
	err := s.store.View(func(tx *store.Tx) error {
		courseTypes := tx.CourseTypes().All()
		courses := tx.Courses().All()

		offerings := offeringsByCourseType(tx, courseTypeID)
		summaries = make([]models.OfferingSummary, 0, len(offerings))
		for _, co := range offerings {
			regs := registrationsByOffering(tx, co.ID)
			summaries = append(summaries, models.OfferingSummary{
				CourseOffering:    co,
				CourseTypeName:    models.NameByID(courseTypes, co.CourseTypeID),
				CourseName:        models.NameByID(courses, co.CourseID),
				RegistrationCount: len(regs),
				Registrations:     regs,
			})
		}
		return nil
	})
	return summaries, err
}

// UpdateCourseOffering changes the pair of an offering and re-derives its name
func (s *courseOfferingServiceImpl) UpdateCourseOffering(ctx context.Context, id, courseTypeID, courseID string) (*models.CourseOffering, error) {
	var updated models.CourseOffering
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		co, ok := tx.CourseOfferings().Find(id)
		if !ok {
			return apperrors.ErrOfferingNotFound
		}

		name, err := resolveOffering(tx, courseTypeID, courseID, id)
		if err != nil {
			return err
		}

		co.CourseTypeID = courseTypeID
		co.CourseID = courseID
		co.Name = name
		updated = co
		return tx.CourseOfferings().Replace(co)
	})
	if err != nil {
		return nil, wrapUnexpected("error updating course offering", err)
	}

	s.logger.Debug().Str("offeringID", id).Str("name", updated.Name).Msg("Course offering updated")
	return &updated, nil
}

// DeleteCourseOffering deletes an offering. Registrations against it are
// kept with their snapshotted offering name.
func (s *courseOfferingServiceImpl) DeleteCourseOffering(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		if _, ok := tx.CourseOfferings().Find(id); !ok {
			return apperrors.ErrOfferingNotFound
		}
		return tx.CourseOfferings().Remove(id)
	})
	if err != nil {
		return wrapUnexpected("error deleting course offering", err)
	}

	s.logger.Debug().Str("offeringID", id).Msg("Course offering deleted")
	return nil
}
