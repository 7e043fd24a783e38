package models

// OfferingSummary is an offering together with the current names of what it
// references and the students registered for it.
type OfferingSummary struct {
	CourseOffering
	CourseTypeName    string         `json:"courseTypeName"`
	CourseName        string         `json:"courseName"`
	RegistrationCount int            `json:"registrationCount"`
	Registrations     []Registration `json:"registrations"`
}
