package services

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/store"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// Services defined in this package:
// - CourseTypeService: course type CRUD, delete guarded by offerings
// - CourseService: course CRUD, delete guarded by offerings
// - CourseOfferingService: offering CRUD with duplicate detection and derived names
// - RegistrationService: student registrations against offerings

// Services bundles every service built over one store
type Services struct {
	CourseTypes     CourseTypeService
	Courses         CourseService
	CourseOfferings CourseOfferingService
	Registrations   RegistrationService
}

// NewServices builds all services over st
func NewServices(st *store.Store, lgr zerolog.Logger) *Services {
	return &Services{
		CourseTypes:     NewCourseTypeService(st, lgr),
		Courses:         NewCourseService(st, lgr),
		CourseOfferings: NewCourseOfferingService(st, lgr),
		Registrations:   NewRegistrationService(st, lgr),
	}
}

// wrapUnexpected passes domain errors through untouched and adds context to
// anything else.
func wrapUnexpected(msg string, err error) error {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) || apperrors.Is(err, apperrors.ErrNotFound, apperrors.ErrReferentialIntegrity) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
