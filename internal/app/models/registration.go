package models

import "time"

// Registration records a student signing up for a course offering.
// OfferingName is a snapshot and survives deletion of the offering.
type Registration struct {
	ID               string    `json:"id"`
	OfferingID       string    `json:"offeringId"`
	OfferingName     string    `json:"offeringName"`
	StudentName      string    `json:"studentName"`
	StudentEmail     string    `json:"studentEmail"`
	StudentPhone     string    `json:"studentPhone"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// GetID returns the registration identifier
func (r Registration) GetID() string { return r.ID }

// GetName returns the student name
func (r Registration) GetName() string { return r.StudentName }
