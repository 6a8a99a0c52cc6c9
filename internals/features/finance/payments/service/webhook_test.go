// file: internals/features/finance/payments/service/webhook_test.go
package service

import (
	"testing"

	"studentcrm_backend/internals/features/finance/payments/model"
)

func TestMapTransactionStatus(t *testing.T) {
	cases := map[string]string{
		"capture":    model.FeePaymentStatusPaid,
		"settlement": model.FeePaymentStatusPaid,
		"success":    model.FeePaymentStatusPaid,
		"expire":     model.FeePaymentStatusExpired,
		"cancel":     model.FeePaymentStatusCanceled,
		"deny":       model.FeePaymentStatusCanceled,
		"failure":    model.FeePaymentStatusCanceled,
		"pending":    model.FeePaymentStatusPending,
		"unknown":    model.FeePaymentStatusPending,
	}
	for in, want := range cases {
		if got := MapTransactionStatus(in); got != want {
			t.Errorf("MapTransactionStatus(%q) = %q, want %q", in, got, want)
		}
	}
}
