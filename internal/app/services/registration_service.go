package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/store"
	"github.com/yigit/registrar/internal/pkg/apperrors"
	"github.com/yigit/registrar/internal/pkg/validation"
)

// RegistrationService defines the interface for student registration operations
type RegistrationService interface {
	CreateRegistration(ctx context.Context, form validation.StudentForm) (*models.Registration, error)
	GetRegistrationByID(ctx context.Context, id string) (*models.Registration, error)
	GetAllRegistrations(ctx context.Context) ([]models.Registration, error)
	GetRegistrationsByOffering(ctx context.Context, offeringID string) ([]models.Registration, error)
	UpdateRegistration(ctx context.Context, id string, form validation.StudentForm) (*models.Registration, error)
	DeleteRegistration(ctx context.Context, id string) error
}

type registrationServiceImpl struct {
	store  *store.Store
	logger zerolog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(st *store.Store, lgr zerolog.Logger) RegistrationService {
	return &registrationServiceImpl{
		store:  st,
		logger: lgr.With().Str("service", "registration").Logger(),
	}
}

// resolveRegistration validates the form and returns the offering it targets
func resolveRegistration(tx *store.Tx, form validation.StudentForm) (models.CourseOffering, error) {
	errs := validation.ValidateStudentForm(form)

	offering, ok := tx.CourseOfferings().Find(form.OfferingID)
	if form.OfferingID != "" && !ok {
		errs.Add("offeringId", validation.KindNotFound, "Course offering does not exist")
	}

	if !errs.Valid() {
		return models.CourseOffering{}, apperrors.NewValidationError(errs)
	}
	return offering, nil
}

// CreateRegistration registers a student for an offering
func (s *registrationServiceImpl) CreateRegistration(ctx context.Context, form validation.StudentForm) (*models.Registration, error) {
	var created models.Registration
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		offering, err := resolveRegistration(tx, form)
		if err != nil {
			return err
		}

		created = models.Registration{
			ID:               tx.NewID(),
			OfferingID:       offering.ID,
			OfferingName:     offering.Name,
			StudentName:      form.StudentName,
			StudentEmail:     form.StudentEmail,
			StudentPhone:     form.StudentPhone,
			RegistrationDate: tx.Now(),
		}
		return tx.Registrations().Insert(created)
	})
	if err != nil {
		return nil, wrapUnexpected("error creating registration", err)
	}

	s.logger.Debug().Str("registrationID", created.ID).Str("offeringID", created.OfferingID).Msg("Student registered")
	return &created, nil
}

// GetRegistrationByID retrieves a registration by ID
func (s *registrationServiceImpl) GetRegistrationByID(ctx context.Context, id string) (*models.Registration, error) {
	var found models.Registration
	err := s.store.View(func(tx *store.Tx) error {
		r, ok := tx.Registrations().Find(id)
		if !ok {
			return apperrors.ErrRegistrationNotFound
		}
		found = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

// GetAllRegistrations retrieves every registration in creation order
func (s *registrationServiceImpl) GetAllRegistrations(ctx context.Context) ([]models.Registration, error) {
	var all []models.Registration
	err := s.store.View(func(tx *store.Tx) error {
		all = tx.Registrations().All()
		return nil
	})
	return all, err
}

// GetRegistrationsByOffering retrieves the registrations of one offering.
// The offering itself need not exist any more.
func (s *registrationServiceImpl) GetRegistrationsByOffering(ctx context.Context, offeringID string) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.store.View(func(tx *store.Tx) error {
		regs = registrationsByOffering(tx, offeringID)
		return nil
	})
	return regs, err
}

// UpdateRegistration replaces the student details and offering of a
// registration. The registration date never changes.
func (s *registrationServiceImpl) UpdateRegistration(ctx context.Context, id string, form validation.StudentForm) (*models.Registration, error) {
	var updated models.Registration
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		r, ok := tx.Registrations().Find(id)
		if !ok {
			return apperrors.ErrRegistrationNotFound
		}

		offering, err := resolveRegistration(tx, form)
		if err != nil {
			return err
		}

		r.OfferingID = offering.ID
		r.OfferingName = offering.Name
		r.StudentName = form.StudentName
		r.StudentEmail = form.StudentEmail
		r.StudentPhone = form.StudentPhone
		updated = r
		return tx.Registrations().Replace(r)
	})
	if err != nil {
		return nil, wrapUnexpected("error updating registration", err)
	}

	s.logger.Debug().Str("registrationID", id).Msg("Registration updated")
	return &updated, nil
}

// DeleteRegistration deletes a registration
func (s *registrationServiceImpl) DeleteRegistration(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Registrations().Find(id); !ok {
			return apperrors.ErrRegistrationNotFound
		}
		return tx.Registrations().Remove(id)
	})
	if err != nil {
		return wrapUnexpected("error deleting registration", err)
	}

	s.logger.Debug().Str("registrationID", id).Msg("Registration deleted")
	return nil
}
