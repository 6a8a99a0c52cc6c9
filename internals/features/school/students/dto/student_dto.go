// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	classModel "studentcrm_backend/internals/features/school/classes/model"
	studentModel "studentcrm_backend/internals/features/school/students/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type CreateStudentRequest struct {
	StudentName         string  `json:"student_name" validate:"required,max=160"`
	StudentGender       string  `json:"student_gender" validate:"required,oneof=Male Female"`
	StudentDateOfBirth  string  `json:"student_date_of_birth" validate:"required"`
	StudentContact      string  `json:"student_contact" validate:"required,max=60"`
	StudentFeesPaid     bool    `json:"student_fees_paid"`
	StudentFeesPaidDate *string `json:"student_fees_paid_date" validate:"omitempty"`
	StudentClassID      *string `json:"student_class_id" validate:"omitempty,uuid"`
}

// Update (partial). Pointer fields: nil = unchanged. student_class_id ""
// unassigns the student. A non-nil student_username is rejected outright:
// usernames are immutable.
type UpdateStudentRequest struct {
	StudentUsername *string `json:"student_username"`

	StudentName         *string `json:"student_name" validate:"omitempty,max=160"`
	StudentGender       *string `json:"student_gender" validate:"omitempty,oneof=Male Female"`
	StudentDateOfBirth  *string `json:"student_date_of_birth" validate:"omitempty"`
	StudentContact      *string `json:"student_contact" validate:"omitempty,max=60"`
	StudentFeesPaid     *bool   `json:"student_fees_paid"`
	StudentFeesPaidDate *string `json:"student_fees_paid_date"`
	StudentClassID      *string `json:"student_class_id"`
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

// StudentCredentialResponse is returned exactly once, on create: the
// generated plaintext password is never retrievable again.
type StudentCredentialResponse struct {
	StudentName     string `json:"student_name"`
	StudentUsername string `json:"student_username"`
	StudentPassword string `json:"student_password"`
}

// StudentResponse expands the class reference one level.
type StudentResponse struct {
	StudentID           uuid.UUID  `json:"student_id"`
	StudentName         string     `json:"student_name"`
	StudentGender       string     `json:"student_gender"`
	StudentDateOfBirth  time.Time  `json:"student_date_of_birth"`
	StudentContact      string     `json:"student_contact"`
	StudentFeesPaid     bool       `json:"student_fees_paid"`
	StudentFeesPaidDate *time.Time `json:"student_fees_paid_date,omitempty"`
	StudentUsername     string     `json:"student_username"`

	StudentClass *classModel.ClassModel `json:"student_class,omitempty"`

	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func NewStudentResponse(m *studentModel.StudentModel, class *classModel.ClassModel) StudentResponse {
	return StudentResponse{
		StudentID:           m.StudentID,
		StudentName:         m.StudentName,
		StudentGender:       m.StudentGender,
		StudentDateOfBirth:  m.StudentDateOfBirth,
		StudentContact:      m.StudentContact,
		StudentFeesPaid:     m.StudentFeesPaid,
		StudentFeesPaidDate: m.StudentFeesPaidDate,
		StudentUsername:     m.StudentUsername,
		StudentClass:        class,
		StudentCreatedAt:    m.StudentCreatedAt,
		StudentUpdatedAt:    m.StudentUpdatedAt,
	}
}
