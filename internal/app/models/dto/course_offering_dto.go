package dto

import "github.com/yigit/registrar/internal/app/models"

// CourseOfferingRequest represents course offering creation and update data
type CourseOfferingRequest struct {
	CourseTypeID string `json:"courseTypeId"`
	CourseID     string `json:"courseId"`
}

// CourseOfferingResponse is an offering with the current names of its
// course type and course
type CourseOfferingResponse struct {
	models.CourseOffering
	CourseTypeName    string `json:"courseTypeName"`
	CourseName        string `json:"courseName"`
	RegistrationCount int    `json:"registrationCount"`
}

// NewCourseOfferingResponses drops the registration lists from summaries
func NewCourseOfferingResponses(summaries []models.OfferingSummary) []CourseOfferingResponse {
	out := make([]CourseOfferingResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, CourseOfferingResponse{
			CourseOffering:    s.CourseOffering,
			CourseTypeName:    s.CourseTypeName,
			CourseName:        s.CourseName,
			RegistrationCount: s.RegistrationCount,
		})
	}
	return out
}
