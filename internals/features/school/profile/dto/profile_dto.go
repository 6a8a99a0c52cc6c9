// file: internals/features/school/profile/dto/profile_dto.go
package dto

import (
	classModel "studentcrm_backend/internals/features/school/classes/model"
	studentModel "studentcrm_backend/internals/features/school/students/model"
	teacherModel "studentcrm_backend/internals/features/school/teachers/model"
)

// StudentProfileResponse is the student's own view: their record, the
// class they belong to, and that class's teacher.
type StudentProfileResponse struct {
	Student      *studentModel.StudentModel `json:"student"`
	Class        *classModel.ClassModel     `json:"class,omitempty"`
	ClassTeacher *teacherModel.TeacherModel `json:"class_teacher,omitempty"`
}

// TeacherProfileResponse is the teacher's own view: their record, the
// class they run, and the students enrolled in it.
type TeacherProfileResponse struct {
	Teacher       *teacherModel.TeacherModel  `json:"teacher"`
	Class         *classModel.ClassModel      `json:"class,omitempty"`
	ClassStudents []studentModel.StudentModel `json:"class_students,omitempty"`
}
