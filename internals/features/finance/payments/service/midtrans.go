// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"studentcrm_backend/internals/features/finance/payments/model"
)

var SnapClient snap.Client

// InitMidtrans wires the Snap client with the merchant server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap checkout token for a fee payment.
func GenerateSnapToken(p model.FeePaymentModel, studentName string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.FeePaymentOrderID,
			GrossAmt: p.FeePaymentAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: studentName,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
