package dto

// CourseTypeRequest represents course type creation and update data
type CourseTypeRequest struct {
	Name string `json:"name"`
}
