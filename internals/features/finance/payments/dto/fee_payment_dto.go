// file: internals/features/finance/payments/dto/fee_payment_dto.go
package dto

// CheckoutResponse carries the Snap token the client uses to open the
// payment page.
type CheckoutResponse struct {
	OrderID string `json:"order_id"`
	Token   string `json:"token"`
}
