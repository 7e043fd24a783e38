package models

// CourseType classifies how a course is delivered (e.g. Individual, Group).
type CourseType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetID returns the course type identifier
func (ct CourseType) GetID() string { return ct.ID }

// GetName returns the course type name
func (ct CourseType) GetName() string { return ct.Name }
