// file: internals/features/finance/payments/model/fee_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	FeePaymentStatusPending  = "pending"
	FeePaymentStatusPaid     = "paid"
	FeePaymentStatusExpired  = "expired"
	FeePaymentStatusCanceled = "canceled"
)

type FeePaymentModel struct {
	FeePaymentID      uuid.UUID `gorm:"column:fee_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"fee_payment_id"`
	FeePaymentOrderID string    `gorm:"column:fee_payment_order_id;type:varchar(80);uniqueIndex;not null"    json:"fee_payment_order_id"`

	FeePaymentStudentID uuid.UUID `gorm:"column:fee_payment_student_id;type:uuid;not null" json:"fee_payment_student_id"`
	FeePaymentClassID   uuid.UUID `gorm:"column:fee_payment_class_id;type:uuid;not null"   json:"fee_payment_class_id"`
	FeePaymentAmount    int64     `gorm:"column:fee_payment_amount;not null"               json:"fee_payment_amount"`

	FeePaymentStatus string     `gorm:"column:fee_payment_status;type:varchar(20);not null;default:'pending'" json:"fee_payment_status"`
	FeePaymentPaidAt *time.Time `gorm:"column:fee_payment_paid_at;type:timestamptz"                           json:"fee_payment_paid_at,omitempty"`

	// Last raw gateway notification for this order, kept for auditing.
	FeePaymentRawEvent datatypes.JSON `gorm:"column:fee_payment_raw_event;type:jsonb" json:"fee_payment_raw_event,omitempty"`

	FeePaymentCreatedAt time.Time `gorm:"column:fee_payment_created_at;type:timestamptz;not null;default:now()" json:"fee_payment_created_at"`
	FeePaymentUpdatedAt time.Time `gorm:"column:fee_payment_updated_at;type:timestamptz;not null;default:now()" json:"fee_payment_updated_at"`
}

func (FeePaymentModel) TableName() string { return "fee_payments" }
