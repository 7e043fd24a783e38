package validation

import (
	"github.com/yigit/registrar/internal/app/models"
)

// StudentForm is the raw input of a registration form
type StudentForm struct {
	OfferingID   string
	StudentName  string
	StudentEmail string
	StudentPhone string
}

// ValidateName checks a course type or course name. label prefixes the
// messages, e.g. "Course type name".
func ValidateName(label, name string) FieldErrors {
	errs := FieldErrors{}
	switch NewStringValidation(name).WithMaxLength(NameMaxLength).Check() {
	case KindRequired:
		errs.Add("name", KindRequired, label+" is required")
	case KindTooLong:
		errs.Add("name", KindTooLong, label+" must be less than 50 characters")
	}
	return errs
}

// ValidateOfferingSelection checks the course type/course pair of an offering.
// excludeID names the offering being edited so it never collides with itself;
// pass "" when creating.
func ValidateOfferingSelection(courseTypeID, courseID string, existing []models.CourseOffering, excludeID string) FieldErrors {
	errs := FieldErrors{}
	if courseTypeID == "" {
		errs.Add("courseTypeId", KindRequired, "Course type is required")
	}
	if courseID == "" {
		errs.Add("courseId", KindRequired, "Course is required")
	}

	for _, co := range existing {
		if co.CourseTypeID == courseTypeID && co.CourseID == courseID && co.ID != excludeID {
			errs.Add(GeneralField, KindDuplicateOffering, "This course offering already exists")
			break
		}
	}
	return errs
}

// ValidateStudentForm checks every field of a registration form
func ValidateStudentForm(form StudentForm) FieldErrors {
	errs := FieldErrors{}
	if form.OfferingID == "" {
		errs.Add("offeringId", KindRequired, "Course offering is required")
	}
	if NewStringValidation(form.StudentName).Check() == KindRequired {
		errs.Add("studentName", KindRequired, "Student name is required")
	}

	switch NewStringValidation(form.StudentEmail).WithPattern(CompiledPatterns.Email).Check() {
	case KindRequired:
		errs.Add("studentEmail", KindRequired, "Student email is required")
	case KindInvalidFormat:
		errs.Add("studentEmail", KindInvalidFormat, "Email is invalid")
	}

	if NewStringValidation(form.StudentPhone).Check() == KindRequired {
		errs.Add("studentPhone", KindRequired, "Student phone is required")
	}
	return errs
}
