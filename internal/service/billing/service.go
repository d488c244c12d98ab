package billing

import (
	"context"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
)

type Service struct {
	paymentRepo repository.PaymentRepository
}

func NewService(paymentRepo repository.PaymentRepository) *Service {
	return &Service{paymentRepo: paymentRepo}
}

func (s *Service) CreatePayment(ctx context.Context, req *model.CreatePaymentRequest) (*model.Payment, error) {
	status := req.Status
	if status == "" {
		status = model.PaymentStatusPending
	}

	payment := &model.Payment{
		PatientID:         req.PatientID,
		Amount:            req.Amount,
		Method:            req.Method,
		InvoiceNumber:     req.InvoiceNumber,
		InsuranceProvider: req.InsuranceProvider,
		Status:            status,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Internal(err)
	}
	return payment, nil
}
