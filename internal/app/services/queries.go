package services

import (
	"github.com/yigit/registrar/internal/app/models"
	"github.com/yigit/registrar/internal/app/store"
)

// offeringsByCourseType returns the offerings of one course type, or all of
// them when courseTypeID is empty.
func offeringsByCourseType(tx *store.Tx, courseTypeID string) []models.CourseOffering {
	if courseTypeID == "" {
		return tx.CourseOfferings().All()
	}
	return tx.CourseOfferings().Filter(func(co models.CourseOffering) bool {
		return co.CourseTypeID == courseTypeID
	})
}

func registrationsByOffering(tx *store.Tx, offeringID string) []models.Registration {
	return tx.Registrations().Filter(func(r models.Registration) bool {
		return r.OfferingID == offeringID
	})
}
