// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	classModel "studentcrm_backend/internals/features/school/classes/model"
	studentModel "studentcrm_backend/internals/features/school/students/model"
	teacherModel "studentcrm_backend/internals/features/school/teachers/model"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

type CreateClassRequest struct {
	ClassName         string `json:"class_name" validate:"required,max=120"`
	ClassYear         int    `json:"class_year" validate:"required,min=1900"`
	ClassFees         int64  `json:"class_fees" validate:"min=0"`
	ClassStudentLimit int    `json:"class_student_limit" validate:"required,min=1"`

	// Optional initial references; reciprocal refs are written after insert.
	ClassTeacherID  *string  `json:"class_teacher_id" validate:"omitempty,uuid"`
	ClassStudentIDs []string `json:"class_student_ids" validate:"omitempty,dive,uuid"`
}

// Update (partial). Pointer fields: nil = unchanged. class_teacher_id ""
// clears the teacher; class_student_ids, when present, replaces the whole
// member set (the diff against the old set drives reciprocal updates).
type UpdateClassRequest struct {
	ClassName         *string `json:"class_name" validate:"omitempty,max=120"`
	ClassYear         *int    `json:"class_year" validate:"omitempty,min=1900"`
	ClassFees         *int64  `json:"class_fees" validate:"omitempty,min=0"`
	ClassStudentLimit *int    `json:"class_student_limit" validate:"omitempty,min=1"`

	ClassTeacherID  *string   `json:"class_teacher_id" validate:"omitempty"`
	ClassStudentIDs *[]string `json:"class_student_ids" validate:"omitempty,dive,uuid"`
}

type AssignTeacherRequest struct {
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}

type AssignStudentsRequest struct {
	StudentIDs []string `json:"student_ids" validate:"required,min=1,dive,uuid"`
}

/* =========================================================
   2) RESPONSE DTO (references expanded one level)
========================================================= */

type ClassResponse struct {
	ClassID           uuid.UUID `json:"class_id"`
	ClassName         string    `json:"class_name"`
	ClassYear         int       `json:"class_year"`
	ClassFees         int64     `json:"class_fees"`
	ClassStudentLimit int       `json:"class_student_limit"`

	ClassTeacher  *teacherModel.TeacherModel  `json:"class_teacher,omitempty"`
	ClassStudents []studentModel.StudentModel `json:"class_students"`

	ClassCreatedAt time.Time `json:"class_created_at"`
	ClassUpdatedAt time.Time `json:"class_updated_at"`
}

func NewClassResponse(m *classModel.ClassModel, teacher *teacherModel.TeacherModel, students []studentModel.StudentModel) ClassResponse {
	if students == nil {
		students = []studentModel.StudentModel{}
	}
	return ClassResponse{
		ClassID:           m.ClassID,
		ClassName:         m.ClassName,
		ClassYear:         m.ClassYear,
		ClassFees:         m.ClassFees,
		ClassStudentLimit: m.ClassStudentLimit,
		ClassTeacher:      teacher,
		ClassStudents:     students,
		ClassCreatedAt:    m.ClassCreatedAt,
		ClassUpdatedAt:    m.ClassUpdatedAt,
	}
}
