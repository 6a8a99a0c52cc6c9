package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "Access denied. Admins only (%s)."
	ErrOnlyTeachersCanAccess = "Access denied. Teachers only (%s)."
	ErrOnlyStudentsCanAccess = "Access denied. Students only (%s)."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleTeacher,
		RoleStudent,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	StudentOnly = []string{
		RoleStudent,
	}

	SelfServiceRoles = []string{
		RoleTeacher,
		RoleStudent,
	}
)
