// file: internals/features/school/classes/controller/class_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	classDTO "studentcrm_backend/internals/features/school/classes/dto"
	classModel "studentcrm_backend/internals/features/school/classes/model"
	relationService "studentcrm_backend/internals/features/school/relations/service"
	studentModel "studentcrm_backend/internals/features/school/students/model"
	teacherModel "studentcrm_backend/internals/features/school/teachers/model"
	helper "studentcrm_backend/internals/helpers"
)

var validate = validator.New()

type ClassController struct {
	DB        *gorm.DB
	Relations *relationService.RelationService
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{
		DB:        db,
		Relations: relationService.NewRelationService(db),
	}
}

/* =========================================================
   READS (references expanded one level)
========================================================= */

// GET /api/classes
func (cc *ClassController) List(c *fiber.Ctx) error {
	var classes []classModel.ClassModel
	if err := cc.DB.Order("class_year, class_name").Find(&classes).Error; err != nil {
		log.Println("[ERROR] classes list:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching classes")
	}

	responses, err := cc.expandClasses(classes)
	if err != nil {
		log.Println("[ERROR] classes expand:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching classes")
	}
	return helper.JsonList(c, "", responses)
}

// GET /api/classes/:id
func (cc *ClassController) GetByID(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var class classModel.ClassModel
	if err := cc.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Println("[ERROR] class fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching class data")
	}

	responses, err := cc.expandClasses([]classModel.ClassModel{class})
	if err != nil {
		log.Println("[ERROR] class expand:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching class data")
	}
	return helper.JsonOK(c, "", responses[0])
}

/* =========================================================
   MUTATIONS (admin only; reciprocal refs via relations service)
========================================================= */

// POST /api/classes
func (cc *ClassController) Create(c *fiber.Ctx) error {
	var req classDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Class identity is (name, year)
	var count int64
	if err := cc.DB.Model(&classModel.ClassModel{}).
		Where("class_name = ? AND class_year = ?", req.ClassName, req.ClassYear).
		Count(&count).Error; err != nil {
		log.Println("[ERROR] class uniqueness check:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating class")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class already exists for this year.")
	}

	if len(req.ClassStudentIDs) > req.ClassStudentLimit {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class has reached its student limit.")
	}

	var teacherID *uuid.UUID
	if req.ClassTeacherID != nil {
		tid, err := uuid.Parse(*req.ClassTeacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID provided.")
		}
		if err := cc.requireTeacher(tid); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID provided.")
		}
		teacherID = &tid
	}

	if len(req.ClassStudentIDs) > 0 {
		if err := cc.requireStudents(req.ClassStudentIDs); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "One or more students not found")
		}
	}

	class := classModel.ClassModel{
		ClassName:         req.ClassName,
		ClassYear:         req.ClassYear,
		ClassFees:         req.ClassFees,
		ClassStudentLimit: req.ClassStudentLimit,
		ClassTeacherID:    teacherID,
		ClassStudentIDs:   append([]string{}, req.ClassStudentIDs...),
	}
	if err := cc.DB.Create(&class).Error; err != nil {
		log.Println("[ERROR] class create:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Error creating class")
	}

	// Reciprocal refs only after the primary insert
	cc.Relations.SyncClassTeacher(class.ClassID, nil, teacherID)
	cc.Relations.SyncClassStudents(class.ClassID, nil, class.ClassStudentIDs)

	return helper.JsonCreated(c, "Class created successfully.", class)
}

// PUT /api/classes/:id
func (cc *ClassController) Update(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var req classDTO.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var class classModel.ClassModel
	if err := cc.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Println("[ERROR] class fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating class")
	}

	// Capture old reference state before the primary write mutates it
	oldTeacherID := class.ClassTeacherID
	oldStudentIDs := append([]string{}, class.ClassStudentIDs...)

	updates := map[string]interface{}{}
	if req.ClassName != nil {
		updates["class_name"] = *req.ClassName
	}
	if req.ClassYear != nil {
		updates["class_year"] = *req.ClassYear
	}
	if req.ClassFees != nil {
		updates["class_fees"] = *req.ClassFees
	}
	if req.ClassStudentLimit != nil {
		updates["class_student_limit"] = *req.ClassStudentLimit
	}

	// Teacher change: "" clears, uuid assigns
	var newTeacherID *uuid.UUID
	teacherChanged := req.ClassTeacherID != nil
	if teacherChanged {
		if *req.ClassTeacherID != "" {
			tid, err := uuid.Parse(*req.ClassTeacherID)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID provided.")
			}
			if err := cc.requireTeacher(tid); err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID provided.")
			}
			newTeacherID = &tid
		}
		updates["class_teacher_id"] = newTeacherID
	} else {
		newTeacherID = oldTeacherID
	}

	// Student set replacement
	studentsChanged := req.ClassStudentIDs != nil
	var newStudentIDs []string
	if studentsChanged {
		newStudentIDs = append([]string{}, (*req.ClassStudentIDs)...)

		limit := class.ClassStudentLimit
		if req.ClassStudentLimit != nil {
			limit = *req.ClassStudentLimit
		}
		if len(newStudentIDs) > limit {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class has reached its student limit.")
		}
		if err := cc.requireStudents(newStudentIDs); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "One or more students not found")
		}
		updates["class_student_ids"] = pq.StringArray(newStudentIDs)
	} else {
		newStudentIDs = oldStudentIDs
	}

	if len(updates) > 0 {
		updates["class_updated_at"] = gorm.Expr("now()")
		if err := cc.DB.Model(&classModel.ClassModel{}).
			Where("class_id = ?", classID).
			Updates(updates).Error; err != nil {
			log.Println("[ERROR] class update:", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Error updating class")
		}
	}

	// Reciprocal refs: diff-based, only the changed sides
	if teacherChanged {
		cc.Relations.SyncClassTeacher(classID, oldTeacherID, newTeacherID)
	}
	if studentsChanged {
		cc.Relations.SyncClassStudents(classID, oldStudentIDs, newStudentIDs)
	}

	var updated classModel.ClassModel
	if err := cc.DB.First(&updated, "class_id = ?", classID).Error; err != nil {
		log.Println("[ERROR] class refetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating class")
	}
	return helper.JsonUpdated(c, "Class updated successfully.", updated)
}

// DELETE /api/classes/:id
func (cc *ClassController) Delete(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var class classModel.ClassModel
	if err := cc.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Println("[ERROR] class fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting class")
	}

	if err := cc.DB.Delete(&classModel.ClassModel{}, "class_id = ?", classID).Error; err != nil {
		log.Println("[ERROR] class delete:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting class")
	}

	// Orphan-free deletion: null out every inbound reference
	cc.Relations.UnlinkDeletedClass(&class)

	return helper.JsonDeleted(c, "Class deleted successfully", nil)
}

// PUT /api/classes/:id/assign-teacher
func (cc *ClassController) AssignTeacher(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var req classDTO.AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID provided.")
	}

	var class classModel.ClassModel
	if err := cc.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Println("[ERROR] class fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error assigning teacher")
	}
	if err := cc.requireTeacher(teacherID); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID provided.")
	}

	oldTeacherID := class.ClassTeacherID
	if err := cc.DB.Model(&classModel.ClassModel{}).
		Where("class_id = ?", classID).
		Updates(map[string]interface{}{
			"class_teacher_id": teacherID,
			"class_updated_at": gorm.Expr("now()"),
		}).Error; err != nil {
		log.Println("[ERROR] assign teacher:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Error assigning teacher")
	}

	cc.Relations.SyncClassTeacher(classID, oldTeacherID, &teacherID)

	return helper.JsonUpdated(c, "Teacher assigned successfully", nil)
}

// PUT /api/classes/:id/assign-students
func (cc *ClassController) AssignStudents(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var req classDTO.AssignStudentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var class classModel.ClassModel
	if err := cc.DB.First(&class, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Println("[ERROR] class fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error assigning students")
	}

	if err := cc.requireStudents(req.StudentIDs); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "One or more students not found")
	}

	// Union with the existing set; only genuinely new members count
	// against the limit.
	toAdd := make([]uuid.UUID, 0, len(req.StudentIDs))
	for _, id := range req.StudentIDs {
		if !relationService.ContainsID(class.ClassStudentIDs, id) {
			sid, err := uuid.Parse(id)
			if err != nil {
				return helper.JsonError(c, fiber.StatusBadRequest, "One or more students not found")
			}
			toAdd = append(toAdd, sid)
		}
	}
	if !relationService.CanAccept(&class, len(toAdd)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Class has reached its student limit.")
	}

	for _, sid := range toAdd {
		if err := cc.Relations.AttachStudentToClass(classID, sid); err != nil {
			log.Println("[ERROR] assign students:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Error assigning students")
		}
		if err := cc.Relations.SetStudentClassRef(sid, &classID); err != nil {
			log.Printf("[ERROR] relations: set class ref on student %s: %v", sid, err)
		}
	}

	return helper.JsonUpdated(c, "Students assigned successfully", nil)
}

/* =========================================================
   Helpers
========================================================= */

func (cc *ClassController) requireTeacher(teacherID uuid.UUID) error {
	var count int64
	if err := cc.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (cc *ClassController) requireStudents(studentIDs []string) error {
	if len(studentIDs) == 0 {
		return nil
	}
	var count int64
	if err := cc.DB.Model(&studentModel.StudentModel{}).
		Where("student_id IN ?", studentIDs).
		Count(&count).Error; err != nil {
		return err
	}
	if count != int64(len(studentIDs)) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// expandClasses loads each class's teacher and member students in two
// batched queries and builds the one-level-expanded responses.
func (cc *ClassController) expandClasses(classes []classModel.ClassModel) ([]classDTO.ClassResponse, error) {
	teacherIDs := make([]uuid.UUID, 0, len(classes))
	studentIDs := make([]string, 0)
	for _, class := range classes {
		if class.ClassTeacherID != nil {
			teacherIDs = append(teacherIDs, *class.ClassTeacherID)
		}
		studentIDs = append(studentIDs, class.ClassStudentIDs...)
	}

	teachersByID := map[uuid.UUID]teacherModel.TeacherModel{}
	if len(teacherIDs) > 0 {
		var teachers []teacherModel.TeacherModel
		if err := cc.DB.Where("teacher_id IN ?", teacherIDs).Find(&teachers).Error; err != nil {
			return nil, err
		}
		for _, t := range teachers {
			teachersByID[t.TeacherID] = t
		}
	}

	studentsByID := map[string]studentModel.StudentModel{}
	if len(studentIDs) > 0 {
		var students []studentModel.StudentModel
		if err := cc.DB.Where("student_id IN ?", studentIDs).Find(&students).Error; err != nil {
			return nil, err
		}
		for _, s := range students {
			studentsByID[s.StudentID.String()] = s
		}
	}

	responses := make([]classDTO.ClassResponse, 0, len(classes))
	for i := range classes {
		class := classes[i]

		var teacher *teacherModel.TeacherModel
		if class.ClassTeacherID != nil {
			if t, ok := teachersByID[*class.ClassTeacherID]; ok {
				teacher = &t
			}
		}

		students := make([]studentModel.StudentModel, 0, len(class.ClassStudentIDs))
		for _, id := range class.ClassStudentIDs {
			if s, ok := studentsByID[id]; ok {
				students = append(students, s)
			}
		}

		responses = append(responses, classDTO.NewClassResponse(&class, teacher, students))
	}
	return responses, nil
}
