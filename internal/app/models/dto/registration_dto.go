package dto

import "github.com/yigit/registrar/internal/pkg/validation"

// RegistrationRequest represents student registration data
type RegistrationRequest struct {
	OfferingID   string `json:"offeringId"`
	StudentName  string `json:"studentName"`
	StudentEmail string `json:"studentEmail"`
	StudentPhone string `json:"studentPhone"`
}

// Form converts the request into the form checked by the registration rules
func (r RegistrationRequest) Form() validation.StudentForm {
	return validation.StudentForm{
		OfferingID:   r.OfferingID,
		StudentName:  r.StudentName,
		StudentEmail: r.StudentEmail,
		StudentPhone: r.StudentPhone,
	}
}
