// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"studentcrm_backend/internals/constants"
	classModel "studentcrm_backend/internals/features/school/classes/model"
	relationService "studentcrm_backend/internals/features/school/relations/service"
	teacherDTO "studentcrm_backend/internals/features/school/teachers/dto"
	teacherModel "studentcrm_backend/internals/features/school/teachers/model"
	authService "studentcrm_backend/internals/features/users/auth/service"
	helper "studentcrm_backend/internals/helpers"
	"studentcrm_backend/internals/helpers/dbtime"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

var validate = validator.New()

type TeacherController struct {
	DB        *gorm.DB
	Relations *relationService.RelationService
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{
		DB:        db,
		Relations: relationService.NewRelationService(db),
	}
}

/* =========================================================
   READS (admin only)
========================================================= */

// GET /api/teacher
func (tc *TeacherController) List(c *fiber.Ctx) error {
	var teachers []teacherModel.TeacherModel
	if err := tc.DB.Order("teacher_name").Find(&teachers).Error; err != nil {
		log.Println("[ERROR] teachers list:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teachers")
	}

	responses, err := tc.expandTeachers(teachers)
	if err != nil {
		log.Println("[ERROR] teachers expand:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teachers")
	}
	return helper.JsonList(c, "", responses)
}

// GET /api/teacher/:id  (admin, or the teacher themself)
func (tc *TeacherController) GetByID(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var teacher teacherModel.TeacherModel
	if err := tc.DB.First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Println("[ERROR] teacher fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teacher profile")
	}

	// Own-record rule: role match alone is not enough.
	role, _ := c.Locals("userRole").(string)
	username, _ := c.Locals("username").(string)
	if !authMiddleware.OwnRecord(role, username, constants.RoleTeacher, teacher.TeacherUsername) {
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied.")
	}

	responses, err := tc.expandTeachers([]teacherModel.TeacherModel{teacher})
	if err != nil {
		log.Println("[ERROR] teacher expand:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching teacher profile")
	}
	return helper.JsonOK(c, "", responses[0])
}

/* =========================================================
   MUTATIONS (admin only)
========================================================= */

// POST /api/teacher
func (tc *TeacherController) Create(c *fiber.Ctx) error {
	var req teacherDTO.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dateOfBirth, err := dbtime.ParseDate(req.TeacherDateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date of birth")
	}
	salaryDate, err := dbtime.ParseDatePtr(req.TeacherSalaryDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid salary date")
	}

	var classID *uuid.UUID
	if req.TeacherClassID != nil {
		cid, err := uuid.Parse(*req.TeacherClassID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID provided.")
		}
		if err := tc.requireClass(cid); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID provided.")
			}
			log.Println("[ERROR] class fetch:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
		}
		classID = &cid
	}

	username, err := authService.GenerateTeacherUsername(tc.DB, req.TeacherName, dateOfBirth)
	if err != nil {
		log.Println("[ERROR] teacher username generation:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	defaultPassword := authService.GeneratePassword(req.TeacherName, dateOfBirth)
	hashedPassword, err := authService.HashPassword(defaultPassword)
	if err != nil {
		log.Println("[ERROR] teacher password hash:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	teacher := teacherModel.TeacherModel{
		TeacherName:        req.TeacherName,
		TeacherGender:      req.TeacherGender,
		TeacherDateOfBirth: dateOfBirth,
		TeacherContact:     req.TeacherContact,
		TeacherSalary:      req.TeacherSalary,
		TeacherSalaryDate:  salaryDate,
		TeacherClassID:     classID,
		TeacherUsername:    username,
		TeacherPassword:    hashedPassword,
	}
	if err := tc.DB.Create(&teacher).Error; err != nil {
		log.Println("[ERROR] teacher create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	// A class holds at most one teacher; moving the teacher in also
	// points the class back at them.
	tc.Relations.MoveTeacher(teacher.TeacherID, nil, classID)

	return helper.JsonCreated(c, "Teacher created successfully.", teacherDTO.TeacherCredentialResponse{
		TeacherName:     teacher.TeacherName,
		TeacherUsername: teacher.TeacherUsername,
		TeacherPassword: defaultPassword,
	})
}

// PUT /api/teacher/:id
func (tc *TeacherController) Update(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var req teacherDTO.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if req.TeacherUsername != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username cannot be updated.")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var teacher teacherModel.TeacherModel
	if err := tc.DB.First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Println("[ERROR] teacher fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating teacher")
	}

	oldClassID := teacher.TeacherClassID

	var newClassID *uuid.UUID
	classChanged := req.TeacherClassID != nil
	if classChanged {
		if *req.TeacherClassID != "" {
			cid, err := uuid.Parse(*req.TeacherClassID)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID provided.")
			}
			newClassID = &cid
		}
		if !relationService.SameIDRef(oldClassID, newClassID) && newClassID != nil {
			if err := tc.requireClass(*newClassID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID provided.")
				}
				log.Println("[ERROR] class fetch:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating teacher")
			}
		}
	} else {
		newClassID = oldClassID
	}

	updates := map[string]interface{}{}
	if req.TeacherName != nil {
		updates["teacher_name"] = *req.TeacherName
	}
	if req.TeacherGender != nil {
		updates["teacher_gender"] = *req.TeacherGender
	}
	if req.TeacherDateOfBirth != nil {
		dob, err := dbtime.ParseDate(*req.TeacherDateOfBirth)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date of birth")
		}
		updates["teacher_date_of_birth"] = dob
	}
	if req.TeacherContact != nil {
		updates["teacher_contact"] = *req.TeacherContact
	}
	if req.TeacherSalary != nil {
		updates["teacher_salary"] = *req.TeacherSalary
	}
	if req.TeacherSalaryDate != nil {
		salaryDate, err := dbtime.ParseDatePtr(req.TeacherSalaryDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid salary date")
		}
		updates["teacher_salary_date"] = salaryDate
	}
	if classChanged {
		updates["teacher_class_id"] = newClassID
	}

	if len(updates) > 0 {
		updates["teacher_updated_at"] = gorm.Expr("now()")
		if err := tc.DB.Model(&teacherModel.TeacherModel{}).
			Where("teacher_id = ?", teacherID).
			Updates(updates).Error; err != nil {
			log.Println("[ERROR] teacher update:", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Error updating teacher")
		}
	}

	if classChanged {
		tc.Relations.MoveTeacher(teacherID, oldClassID, newClassID)
	}

	var updated teacherModel.TeacherModel
	if err := tc.DB.First(&updated, "teacher_id = ?", teacherID).Error; err != nil {
		log.Println("[ERROR] teacher refetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating teacher")
	}
	responses, err := tc.expandTeachers([]teacherModel.TeacherModel{updated})
	if err != nil {
		log.Println("[ERROR] teacher expand:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated successfully.", responses[0])
}

// DELETE /api/teacher/:id
func (tc *TeacherController) Delete(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var teacher teacherModel.TeacherModel
	if err := tc.DB.First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		log.Println("[ERROR] teacher fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting teacher")
	}

	if err := tc.DB.Delete(&teacherModel.TeacherModel{}, "teacher_id = ?", teacherID).Error; err != nil {
		log.Println("[ERROR] teacher delete:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting teacher")
	}

	tc.Relations.DetachDeletedTeacher(teacherID, teacher.TeacherClassID)

	return helper.JsonDeleted(c, "Teacher deleted successfully", nil)
}

/* =========================================================
   Helpers
========================================================= */

func (tc *TeacherController) requireClass(classID uuid.UUID) error {
	var class classModel.ClassModel
	return tc.DB.First(&class, "class_id = ?", classID).Error
}

func (tc *TeacherController) expandTeachers(teachers []teacherModel.TeacherModel) ([]teacherDTO.TeacherResponse, error) {
	classIDs := make([]uuid.UUID, 0, len(teachers))
	for _, t := range teachers {
		if t.TeacherClassID != nil {
			classIDs = append(classIDs, *t.TeacherClassID)
		}
	}

	classesByID := map[uuid.UUID]classModel.ClassModel{}
	if len(classIDs) > 0 {
		var classes []classModel.ClassModel
		if err := tc.DB.Where("class_id IN ?", classIDs).Find(&classes).Error; err != nil {
			return nil, err
		}
		for _, cl := range classes {
			classesByID[cl.ClassID] = cl
		}
	}

	responses := make([]teacherDTO.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		teacher := teachers[i]
		var class *classModel.ClassModel
		if teacher.TeacherClassID != nil {
			if cl, ok := classesByID[*teacher.TeacherClassID]; ok {
				class = &cl
			}
		}
		responses = append(responses, teacherDTO.NewTeacherResponse(&teacher, class))
	}
	return responses, nil
}
