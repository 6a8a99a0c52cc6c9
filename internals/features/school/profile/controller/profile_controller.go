// file: internals/features/school/profile/controller/profile_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studentcrm_backend/internals/constants"
	classModel "studentcrm_backend/internals/features/school/classes/model"
	profileDTO "studentcrm_backend/internals/features/school/profile/dto"
	profileService "studentcrm_backend/internals/features/school/profile/service"
	studentModel "studentcrm_backend/internals/features/school/students/model"
	teacherModel "studentcrm_backend/internals/features/school/teachers/model"
	helper "studentcrm_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/me
func (pc *ProfileController) GetMe(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	role, _ := c.Locals("userRole").(string)

	switch role {
	case constants.RoleStudent:
		return pc.studentProfile(c, username)
	case constants.RoleTeacher:
		return pc.teacherProfile(c, username)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied.")
	}
}

// PUT /api/me
func (pc *ProfileController) UpdateMe(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)
	role, _ := c.Locals("userRole").(string)

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates, err := profileService.FilterProfileUpdates(role, body)
	if err != nil {
		if errors.Is(err, profileService.ErrInvalidUpdates) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid updates!")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid updates!")
	}

	switch role {
	case constants.RoleStudent:
		updates["student_updated_at"] = gorm.Expr("now()")
		res := pc.DB.Model(&studentModel.StudentModel{}).
			Where("student_username = ?", username).
			Updates(updates)
		if res.Error != nil {
			log.Println("[ERROR] profile update:", res.Error)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating profile")
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return pc.studentProfile(c, username)
	case constants.RoleTeacher:
		updates["teacher_updated_at"] = gorm.Expr("now()")
		res := pc.DB.Model(&teacherModel.TeacherModel{}).
			Where("teacher_username = ?", username).
			Updates(updates)
		if res.Error != nil {
			log.Println("[ERROR] profile update:", res.Error)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating profile")
		}
		if res.RowsAffected == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return pc.teacherProfile(c, username)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied.")
	}
}

/* =========================================================
   Expansion
========================================================= */

func (pc *ProfileController) studentProfile(c *fiber.Ctx, username string) error {
	var student studentModel.StudentModel
	if err := pc.DB.First(&student, "student_username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		log.Println("[ERROR] profile fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching profile")
	}

	resp := profileDTO.StudentProfileResponse{Student: &student}
	if student.StudentClassID != nil {
		var class classModel.ClassModel
		if err := pc.DB.First(&class, "class_id = ?", *student.StudentClassID).Error; err == nil {
			resp.Class = &class
			if class.ClassTeacherID != nil {
				var teacher teacherModel.TeacherModel
				if err := pc.DB.First(&teacher, "teacher_id = ?", *class.ClassTeacherID).Error; err == nil {
					resp.ClassTeacher = &teacher
				}
			}
		}
	}
	return helper.JsonOK(c, "", resp)
}

func (pc *ProfileController) teacherProfile(c *fiber.Ctx, username string) error {
	var teacher teacherModel.TeacherModel
	if err := pc.DB.First(&teacher, "teacher_username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		log.Println("[ERROR] profile fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching profile")
	}

	resp := profileDTO.TeacherProfileResponse{Teacher: &teacher}
	if teacher.TeacherClassID != nil {
		var class classModel.ClassModel
		if err := pc.DB.First(&class, "class_id = ?", *teacher.TeacherClassID).Error; err == nil {
			resp.Class = &class
			var students []studentModel.StudentModel
			if err := pc.DB.Where("student_class_id = ?", class.ClassID).
				Order("student_name").Find(&students).Error; err == nil {
				resp.ClassStudents = students
			}
		}
	}
	return helper.JsonOK(c, "", resp)
}
