// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	classModel "studentcrm_backend/internals/features/school/classes/model"
	teacherModel "studentcrm_backend/internals/features/school/teachers/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type CreateTeacherRequest struct {
	TeacherName        string  `json:"teacher_name" validate:"required,max=160"`
	TeacherGender      string  `json:"teacher_gender" validate:"required,oneof=Male Female"`
	TeacherDateOfBirth string  `json:"teacher_date_of_birth" validate:"required"`
	TeacherContact     string  `json:"teacher_contact" validate:"required,max=60"`
	TeacherSalary      int64   `json:"teacher_salary" validate:"min=0"`
	TeacherSalaryDate  *string `json:"teacher_salary_date" validate:"omitempty"`
	TeacherClassID     *string `json:"teacher_class_id" validate:"omitempty,uuid"`
}

// Update (partial). Pointer fields: nil = unchanged. teacher_class_id ""
// unassigns the teacher. A non-nil teacher_username is rejected outright:
// usernames are immutable.
type UpdateTeacherRequest struct {
	TeacherUsername *string `json:"teacher_username"`

	TeacherName        *string `json:"teacher_name" validate:"omitempty,max=160"`
	TeacherGender      *string `json:"teacher_gender" validate:"omitempty,oneof=Male Female"`
	TeacherDateOfBirth *string `json:"teacher_date_of_birth" validate:"omitempty"`
	TeacherContact     *string `json:"teacher_contact" validate:"omitempty,max=60"`
	TeacherSalary      *int64  `json:"teacher_salary" validate:"omitempty,min=0"`
	TeacherSalaryDate  *string `json:"teacher_salary_date"`
	TeacherClassID     *string `json:"teacher_class_id"`
}

/* =========================================================
   2) RESPONSE DTO
========================================================= */

// TeacherCredentialResponse is returned exactly once, on create.
type TeacherCredentialResponse struct {
	TeacherName     string `json:"teacher_name"`
	TeacherUsername string `json:"teacher_username"`
	TeacherPassword string `json:"teacher_password"`
}

// TeacherResponse expands the assigned class one level.
type TeacherResponse struct {
	TeacherID          uuid.UUID  `json:"teacher_id"`
	TeacherName        string     `json:"teacher_name"`
	TeacherGender      string     `json:"teacher_gender"`
	TeacherDateOfBirth time.Time  `json:"teacher_date_of_birth"`
	TeacherContact     string     `json:"teacher_contact"`
	TeacherSalary      int64      `json:"teacher_salary"`
	TeacherSalaryDate  *time.Time `json:"teacher_salary_date,omitempty"`
	TeacherUsername    string     `json:"teacher_username"`

	TeacherClass *classModel.ClassModel `json:"teacher_class,omitempty"`

	TeacherCreatedAt time.Time `json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `json:"teacher_updated_at"`
}

func NewTeacherResponse(m *teacherModel.TeacherModel, class *classModel.ClassModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:          m.TeacherID,
		TeacherName:        m.TeacherName,
		TeacherGender:      m.TeacherGender,
		TeacherDateOfBirth: m.TeacherDateOfBirth,
		TeacherContact:     m.TeacherContact,
		TeacherSalary:      m.TeacherSalary,
		TeacherSalaryDate:  m.TeacherSalaryDate,
		TeacherUsername:    m.TeacherUsername,
		TeacherClass:       class,
		TeacherCreatedAt:   m.TeacherCreatedAt,
		TeacherUpdatedAt:   m.TeacherUpdatedAt,
	}
}
