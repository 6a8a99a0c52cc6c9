// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studentcrm_backend/internals/configs"
	"studentcrm_backend/internals/constants"
	authDTO "studentcrm_backend/internals/features/users/auth/dto"
	studentModel "studentcrm_backend/internals/features/school/students/model"
	teacherModel "studentcrm_backend/internals/features/school/teachers/model"
	helper "studentcrm_backend/internals/helpers"
)

// Login authenticates against the three user pools in fixed order: the
// static admin credential first, then the student collection, then the
// teacher collection. Username matching is exact and case-sensitive; the
// failure message never reveals which part of the pair was wrong.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password are required.")
	}

	// 1) Static admin credential (plaintext compare on a fixed operator pair)
	if req.Username == configs.AdminUsername && req.Password == configs.AdminPassword {
		return respondWithToken(c, req.Username, constants.RoleAdmin)
	}

	// 2) Student pool
	var student studentModel.StudentModel
	err := db.Where("student_username = ?", req.Username).First(&student).Error
	switch {
	case err == nil:
		if ComparePassword(req.Password, student.StudentPassword) {
			return respondWithToken(c, student.StudentUsername, constants.RoleStudent)
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Println("[ERROR] login: student lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	// 3) Teacher pool
	var teacher teacherModel.TeacherModel
	err = db.Where("teacher_username = ?", req.Username).First(&teacher).Error
	switch {
	case err == nil:
		if ComparePassword(req.Password, teacher.TeacherPassword) {
			return respondWithToken(c, teacher.TeacherUsername, constants.RoleTeacher)
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Println("[ERROR] login: teacher lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
}

// Logout is a stateless acknowledgment: tokens live client-side only.
func Logout(c *fiber.Ctx) error {
	return helper.JsonOK(c, "Logged out successfully", nil)
}

func respondWithToken(c *fiber.Ctx, username, role string) error {
	token, err := GenerateToken(username, role)
	if err != nil {
		log.Println("[ERROR] login: token generation:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		Username: username,
		Role:     role,
		Token:    token,
	})
}
