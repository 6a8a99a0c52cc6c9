// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	// ============ PK ============
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	// ============ Profile ============
	StudentName        string    `gorm:"column:student_name;type:varchar(160);not null"   json:"student_name"`
	StudentGender      string    `gorm:"column:student_gender;type:varchar(10);not null"  json:"student_gender"`
	StudentDateOfBirth time.Time `gorm:"column:student_date_of_birth;type:date;not null"  json:"student_date_of_birth"`
	StudentContact     string    `gorm:"column:student_contact;type:varchar(60);not null" json:"student_contact"`

	// ============ Fees ============
	// student_fees_paid_date is meaningful only when student_fees_paid is true.
	StudentFeesPaid     bool       `gorm:"column:student_fees_paid;not null;default:false" json:"student_fees_paid"`
	StudentFeesPaidDate *time.Time `gorm:"column:student_fees_paid_date;type:date"         json:"student_fees_paid_date,omitempty"`

	// ============ Reciprocal reference ============
	// Non-null student_class_id implies membership in that class's
	// class_student_ids set.
	StudentClassID *uuid.UUID `gorm:"column:student_class_id;type:uuid" json:"student_class_id,omitempty"`

	// ============ Credentials ============
	// Username is immutable after creation.
	StudentUsername string `gorm:"column:student_username;type:varchar(160);uniqueIndex;not null" json:"student_username"`
	StudentPassword string `gorm:"column:student_password;type:varchar(100);not null"             json:"-"`

	// ============ Audit ============
	StudentCreatedAt time.Time `gorm:"column:student_created_at;type:timestamptz;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;type:timestamptz;not null;default:now()" json:"student_updated_at"`
}

func (StudentModel) TableName() string { return "students" }
