// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ClassModel struct {
	// ============ PK ============
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	// ============ Identity (unique per name+year) ============
	ClassName string `gorm:"column:class_name;type:varchar(120);not null;uniqueIndex:uq_classes_name_year" json:"class_name"`
	ClassYear int    `gorm:"column:class_year;not null;uniqueIndex:uq_classes_name_year"                   json:"class_year"`

	// ============ Attributes ============
	ClassFees         int64 `gorm:"column:class_fees;not null"          json:"class_fees"`
	ClassStudentLimit int   `gorm:"column:class_student_limit;not null" json:"class_student_limit"`

	// ============ Reciprocal references ============
	// class_teacher_id mirrors teachers.teacher_class_id; class_student_ids
	// mirrors students.student_class_id. Both sides are kept in sync by the
	// relations service, never by blind overwrite.
	ClassTeacherID  *uuid.UUID     `gorm:"column:class_teacher_id;type:uuid"                            json:"class_teacher_id,omitempty"`
	ClassStudentIDs pq.StringArray `gorm:"column:class_student_ids;type:uuid[];not null;default:'{}'" json:"class_student_ids"`

	// ============ Audit ============
	ClassCreatedAt time.Time `gorm:"column:class_created_at;type:timestamptz;not null;default:now()" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;type:timestamptz;not null;default:now()" json:"class_updated_at"`
}

func (ClassModel) TableName() string { return "classes" }

// HasStudent reports membership in the class student set.
func (m *ClassModel) HasStudent(studentID uuid.UUID) bool {
	id := studentID.String()
	for _, s := range m.ClassStudentIDs {
		if s == id {
			return true
		}
	}
	return false
}

// StudentCount is the current size of the member set.
func (m *ClassModel) StudentCount() int { return len(m.ClassStudentIDs) }
