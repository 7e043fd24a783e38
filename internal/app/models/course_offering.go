package models

import "fmt"

// CourseOffering pairs a course type with a course. Name is a snapshot taken
// when the offering is created or updated; later renames of the course type
// or course do not change it.
type CourseOffering struct {
	ID           string `json:"id"`
	CourseTypeID string `json:"courseTypeId"`
	CourseID     string `json:"courseId"`
	Name         string `json:"name"`
}

// GetID returns the offering identifier
func (co CourseOffering) GetID() string { return co.ID }

// GetName returns the derived offering name
func (co CourseOffering) GetName() string { return co.Name }

// OfferingName builds the display name of an offering
func OfferingName(courseTypeName, courseName string) string {
	return fmt.Sprintf("%s - %s", courseTypeName, courseName)
}
