package models

// Course is a subject that can be offered under one or more course types.
type Course struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetID returns the course identifier
func (c Course) GetID() string { return c.ID }

// GetName returns the course name
func (c Course) GetName() string { return c.Name }
