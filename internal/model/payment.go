package model

// Payment method constants
const (
	PaymentMethodCash      = "cash"
	PaymentMethodCard      = "card"
	PaymentMethodInsurance = "insurance"
)

// Payment status constants
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type Payment struct {
	Base
	PatientID         string  `json:"patient_id" db:"patient_id"`
	Amount            float64 `json:"amount" db:"amount"`
	Method            string  `json:"method" db:"method"`
	InvoiceNumber     string  `json:"invoice_number" db:"invoice_number"`
	InsuranceProvider *string `json:"insurance_provider,omitempty" db:"insurance_provider"`
	Status            string  `json:"status" db:"status"`
}

// CreatePaymentRequest represents payment creation parameters
type CreatePaymentRequest struct {
	PatientID         string  `json:"patient_id" binding:"required"`
	Amount            float64 `json:"amount" binding:"required"`
	Method            string  `json:"method" binding:"required,oneof=cash card insurance"`
	InvoiceNumber     string  `json:"invoice_number" binding:"required"`
	InsuranceProvider *string `json:"insurance_provider"`
	Status            string  `json:"status" binding:"omitempty,oneof=pending paid failed"`
}
