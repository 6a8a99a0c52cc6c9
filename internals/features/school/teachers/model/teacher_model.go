// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherModel struct {
	// ============ PK ============
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	// ============ Profile ============
	TeacherName        string    `gorm:"column:teacher_name;type:varchar(160);not null"   json:"teacher_name"`
	TeacherGender      string    `gorm:"column:teacher_gender;type:varchar(10);not null"  json:"teacher_gender"`
	TeacherDateOfBirth time.Time `gorm:"column:teacher_date_of_birth;type:date;not null"  json:"teacher_date_of_birth"`
	TeacherContact     string    `gorm:"column:teacher_contact;type:varchar(60);not null" json:"teacher_contact"`

	// ============ Payroll ============
	TeacherSalary     int64      `gorm:"column:teacher_salary;not null"    json:"teacher_salary"`
	TeacherSalaryDate *time.Time `gorm:"column:teacher_salary_date;type:date" json:"teacher_salary_date,omitempty"`

	// ============ Reciprocal reference ============
	// Non-null teacher_class_id implies that class's class_teacher_id equals
	// this teacher's id.
	TeacherClassID *uuid.UUID `gorm:"column:teacher_class_id;type:uuid" json:"teacher_class_id,omitempty"`

	// ============ Credentials ============
	// Username is immutable after creation.
	TeacherUsername string `gorm:"column:teacher_username;type:varchar(160);uniqueIndex;not null" json:"teacher_username"`
	TeacherPassword string `gorm:"column:teacher_password;type:varchar(100);not null"             json:"-"`

	// ============ Audit ============
	TeacherCreatedAt time.Time `gorm:"column:teacher_created_at;type:timestamptz;not null;default:now()" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time `gorm:"column:teacher_updated_at;type:timestamptz;not null;default:now()" json:"teacher_updated_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
