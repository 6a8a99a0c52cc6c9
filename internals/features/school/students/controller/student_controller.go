// file: internals/features/school/students/controller/student_controller.go
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
	studentDTO "studentcrm_backend/internals/features/school/students/dto"
	studentModel "studentcrm_backend/internals/features/school/students/model"
	authService "studentcrm_backend/internals/features/users/auth/service"
	helper "studentcrm_backend/internals/helpers"
	"studentcrm_backend/internals/helpers/dbtime"
	authMiddleware "studentcrm_backend/internals/middlewares/auth"
)

var validate = validator.New()

type StudentController struct {
	DB        *gorm.DB
	Relations *relationService.RelationService
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:        db,
		Relations: relationService.NewRelationService(db),
	}
}

/* =========================================================
   READS
========================================================= */

// GET /api/student  (admin only)
func (sc *StudentController) List(c *fiber.Ctx) error {
	var students []studentModel.StudentModel
	if err := sc.DB.Order("student_name").Find(&students).Error; err != nil {
		log.Println("[ERROR] students list:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching students")
	}

	responses, err := sc.expandStudents(students)
	if err != nil {
		log.Println("[ERROR] students expand:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching students")
	}
	return helper.JsonList(c, "", responses)
}

// GET /api/student/:id  (admin, or the student themself)
func (sc *StudentController) GetByID(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student studentModel.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] student fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching student profile")
	}

	// Own-record rule: a student may only read their own record, even
	// though every student shares the same role.
	role, _ := c.Locals("userRole").(string)
	username, _ := c.Locals("username").(string)
	if !authMiddleware.OwnRecord(role, username, constants.RoleStudent, student.StudentUsername) {
		return helper.JsonError(c, fiber.StatusForbidden, "Access denied.")
	}

	responses, err := sc.expandStudents([]studentModel.StudentModel{student})
	if err != nil {
		log.Println("[ERROR] student expand:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching student profile")
	}
	return helper.JsonOK(c, "", responses[0])
}

/* =========================================================
   MUTATIONS (admin only)
========================================================= */

// POST /api/student
func (sc *StudentController) Create(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dateOfBirth, err := dbtime.ParseDate(req.StudentDateOfBirth)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date of birth")
	}
	feesPaidDate, err := dbtime.ParseDatePtr(req.StudentFeesPaidDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fees paid date")
	}

	// Referential existence + capacity before any write
	var classID *uuid.UUID
	if req.StudentClassID != nil {
		cid, err := uuid.Parse(*req.StudentClassID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID provided.")
		}
		class, err := sc.fetchClass(cid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID provided.")
			}
			log.Println("[ERROR] class fetch:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
		}
		if !relationService.CanAccept(class, 1) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class has reached its student limit.")
		}
		classID = &cid
	}

	// Provision credentials: deterministic unique username + one-time
	// default password (plaintext returned only in this response)
	username, err := authService.GenerateStudentUsername(sc.DB, req.StudentName, dateOfBirth)
	if err != nil {
		log.Println("[ERROR] student username generation:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
	}
	defaultPassword := authService.GeneratePassword(req.StudentName, dateOfBirth)
	hashedPassword, err := authService.HashPassword(defaultPassword)
	if err != nil {
		log.Println("[ERROR] student password hash:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	student := studentModel.StudentModel{
		StudentName:         req.StudentName,
		StudentGender:       req.StudentGender,
		StudentDateOfBirth:  dateOfBirth,
		StudentContact:      req.StudentContact,
		StudentFeesPaid:     req.StudentFeesPaid,
		StudentFeesPaidDate: feesPaidDate,
		StudentClassID:      classID,
		StudentUsername:     username,
		StudentPassword:     hashedPassword,
	}
	if err := sc.DB.Create(&student).Error; err != nil {
		log.Println("[ERROR] student create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error.")
	}

	// Reciprocal ref after the primary insert
	sc.Relations.MoveStudent(student.StudentID, nil, classID)

	return helper.JsonCreated(c, "Student created successfully.", studentDTO.StudentCredentialResponse{
		StudentName:     student.StudentName,
		StudentUsername: student.StudentUsername,
		StudentPassword: defaultPassword,
	})
}

// PUT /api/student/:id
func (sc *StudentController) Update(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Username is immutable; reject before anything else runs
	if req.StudentUsername != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username cannot be updated.")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] student fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
	}

	oldClassID := student.StudentClassID

	// Class change: "" unassigns; capacity is checked only on an actual
	// move into a different class, never on no-op updates.
	var newClassID *uuid.UUID
	classChanged := req.StudentClassID != nil
	if classChanged {
		if *req.StudentClassID != "" {
			cid, err := uuid.Parse(*req.StudentClassID)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID provided.")
			}
			newClassID = &cid
		}
		if !relationService.SameIDRef(oldClassID, newClassID) && newClassID != nil {
			class, err := sc.fetchClass(*newClassID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID provided.")
				}
				log.Println("[ERROR] class fetch:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
			}
			if !relationService.CanAccept(class, 1) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Class has reached its student limit.")
			}
		}
	} else {
		newClassID = oldClassID
	}

	updates := map[string]interface{}{}
	if req.StudentName != nil {
		updates["student_name"] = *req.StudentName
	}
	if req.StudentGender != nil {
		updates["student_gender"] = *req.StudentGender
	}
	if req.StudentDateOfBirth != nil {
		dob, err := dbtime.ParseDate(*req.StudentDateOfBirth)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date of birth")
		}
		updates["student_date_of_birth"] = dob
	}
	if req.StudentContact != nil {
		updates["student_contact"] = *req.StudentContact
	}
	if req.StudentFeesPaid != nil {
		updates["student_fees_paid"] = *req.StudentFeesPaid
	}
	if req.StudentFeesPaidDate != nil {
		paidDate, err := dbtime.ParseDatePtr(req.StudentFeesPaidDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fees paid date")
		}
		updates["student_fees_paid_date"] = paidDate
	}
	if classChanged {
		updates["student_class_id"] = newClassID
	}

	if len(updates) > 0 {
		updates["student_updated_at"] = gorm.Expr("now()")
		if err := sc.DB.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", studentID).
			Updates(updates).Error; err != nil {
			log.Println("[ERROR] student update:", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Error updating student")
		}
	}

	// Reciprocal set maintenance after the primary write
	if classChanged {
		sc.Relations.MoveStudent(studentID, oldClassID, newClassID)
	}

	var updated studentModel.StudentModel
	if err := sc.DB.First(&updated, "student_id = ?", studentID).Error; err != nil {
		log.Println("[ERROR] student refetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
	}
	responses, err := sc.expandStudents([]studentModel.StudentModel{updated})
	if err != nil {
		log.Println("[ERROR] student expand:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating student")
	}
	return helper.JsonUpdated(c, "Student updated successfully.", responses[0])
}

// DELETE /api/student/:id
func (sc *StudentController) Delete(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student studentModel.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] student fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting student")
	}

	if err := sc.DB.Delete(&studentModel.StudentModel{}, "student_id = ?", studentID).Error; err != nil {
		log.Println("[ERROR] student delete:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting student")
	}

	sc.Relations.DetachDeletedStudent(studentID, student.StudentClassID)

	return helper.JsonDeleted(c, "Student deleted successfully", nil)
}

/* =========================================================
   Helpers
========================================================= */

func (sc *StudentController) fetchClass(classID uuid.UUID) (*classModel.ClassModel, error) {
	var class classModel.ClassModel
	if err := sc.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (sc *StudentController) expandStudents(students []studentModel.StudentModel) ([]studentDTO.StudentResponse, error) {
	classIDs := make([]uuid.UUID, 0, len(students))
	for _, s := range students {
		if s.StudentClassID != nil {
			classIDs = append(classIDs, *s.StudentClassID)
		}
	}

	classesByID := map[uuid.UUID]classModel.ClassModel{}
	if len(classIDs) > 0 {
		var classes []classModel.ClassModel
		if err := sc.DB.Where("class_id IN ?", classIDs).Find(&classes).Error; err != nil {
			return nil, err
		}
		for _, cl := range classes {
			classesByID[cl.ClassID] = cl
		}
	}

	responses := make([]studentDTO.StudentResponse, 0, len(students))
	for i := range students {
		student := students[i]
		var class *classModel.ClassModel
		if student.StudentClassID != nil {
			if cl, ok := classesByID[*student.StudentClassID]; ok {
				class = &cl
			}
		}
		responses = append(responses, studentDTO.NewStudentResponse(&student, class))
	}
	return responses, nil
}
