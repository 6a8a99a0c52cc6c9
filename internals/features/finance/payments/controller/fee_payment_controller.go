// file: internals/features/finance/payments/controller/fee_payment_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	feeDTO "studentcrm_backend/internals/features/finance/payments/dto"
	feeModel "studentcrm_backend/internals/features/finance/payments/model"
	feeService "studentcrm_backend/internals/features/finance/payments/service"
	classModel "studentcrm_backend/internals/features/school/classes/model"
	studentModel "studentcrm_backend/internals/features/school/students/model"
	helper "studentcrm_backend/internals/helpers"
)

type FeePaymentController struct {
	DB *gorm.DB
}

func NewFeePaymentController(db *gorm.DB) *FeePaymentController {
	return &FeePaymentController{DB: db}
}

// POST /api/fees/checkout  (student only)
// The amount is always the student's own class fees; the client never
// sends a number.
func (fc *FeePaymentController) Checkout(c *fiber.Ctx) error {
	username, _ := c.Locals("username").(string)

	var student studentModel.StudentModel
	if err := fc.DB.First(&student, "student_username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Println("[ERROR] checkout student fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating payment")
	}

	if student.StudentFeesPaid {
		return helper.JsonError(c, fiber.StatusBadRequest, "Fees already paid.")
	}
	if student.StudentClassID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student is not enrolled in a class.")
	}

	var class classModel.ClassModel
	if err := fc.DB.First(&class, "class_id = ?", *student.StudentClassID).Error; err != nil {
		log.Println("[ERROR] checkout class fetch:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating payment")
	}

	payment := feeModel.FeePaymentModel{
		FeePaymentOrderID:   "FEE-" + uuid.NewString(),
		FeePaymentStudentID: student.StudentID,
		FeePaymentClassID:   class.ClassID,
		FeePaymentAmount:    class.ClassFees,
		FeePaymentStatus:    feeModel.FeePaymentStatusPending,
	}
	if err := fc.DB.Create(&payment).Error; err != nil {
		log.Println("[ERROR] fee payment create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating payment")
	}

	token, err := feeService.GenerateSnapToken(payment, student.StudentName)
	if err != nil {
		log.Println("[ERROR] snap token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating payment")
	}

	return helper.JsonCreated(c, "Payment created. Continue with checkout.", feeDTO.CheckoutResponse{
		OrderID: payment.FeePaymentOrderID,
		Token:   token,
	})
}

// POST /api/fees/notification  (public, called by the gateway)
func (fc *FeePaymentController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification body")
	}

	if err := feeService.HandleFeeStatusWebhook(fc.DB, body); err != nil {
		log.Println("[ERROR] fee webhook:", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Unable to process notification")
	}
	return helper.JsonOK(c, "Notification processed.", nil)
}
