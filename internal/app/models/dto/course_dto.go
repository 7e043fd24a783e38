package dto

// CourseRequest represents course creation and update data
type CourseRequest struct {
	Name string `json:"name"`
}
