// file: internals/features/finance/payments/service/webhook.go
package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"studentcrm_backend/internals/features/finance/payments/model"
	studentModel "studentcrm_backend/internals/features/school/students/model"
)

// MapTransactionStatus translates a gateway transaction_status into a
// fee payment status. Unknown statuses stay pending.
func MapTransactionStatus(transactionStatus string) string {
	switch transactionStatus {
	case "capture", "settlement", "success":
		return model.FeePaymentStatusPaid
	case "expire":
		return model.FeePaymentStatusExpired
	case "cancel", "deny", "failure":
		return model.FeePaymentStatusCanceled
	default:
		return model.FeePaymentStatusPending
	}
}

// HandleFeeStatusWebhook applies a gateway notification to the fee
// payment it references. A paid notification also marks the student's
// fees as paid, so the reporting queries pick it up.
func HandleFeeStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, _ := body["order_id"].(string)
	transactionStatus, _ := body["transaction_status"].(string)
	if orderID == "" || transactionStatus == "" {
		return fmt.Errorf("notification missing order_id or transaction_status")
	}

	var payment model.FeePaymentModel
	if err := db.Where("fee_payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		return fmt.Errorf("fee payment not found for order %s: %w", orderID, err)
	}

	newStatus := MapTransactionStatus(transactionStatus)
	rawEvent, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	updates := map[string]interface{}{
		"fee_payment_status":     newStatus,
		"fee_payment_raw_event":  rawEvent,
		"fee_payment_updated_at": gorm.Expr("now()"),
	}
	now := time.Now().UTC()
	if newStatus == model.FeePaymentStatusPaid && payment.FeePaymentPaidAt == nil {
		updates["fee_payment_paid_at"] = now
	}

	if err := db.Model(&model.FeePaymentModel{}).
		Where("fee_payment_order_id = ?", orderID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("update fee payment %s: %w", orderID, err)
	}

	if newStatus == model.FeePaymentStatusPaid {
		if err := db.Model(&studentModel.StudentModel{}).
			Where("student_id = ?", payment.FeePaymentStudentID).
			Updates(map[string]interface{}{
				"student_fees_paid":      true,
				"student_fees_paid_date": now,
				"student_updated_at":     gorm.Expr("now()"),
			}).Error; err != nil {
			log.Println("[ERROR] mark student fees paid:", err)
		}
	}

	log.Printf("[INFO] fee payment %s -> %s", orderID, newStatus)
	return nil
}
