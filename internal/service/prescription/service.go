package prescription

import (
	"context"
	"time"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
)

type Service struct {
	prescriptionRepo repository.PrescriptionRepository
}

func NewService(prescriptionRepo repository.PrescriptionRepository) *Service {
	return &Service{prescriptionRepo: prescriptionRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePrescriptionRequest) (*model.Prescription, error) {
	issuedAt := time.Now().UTC()
	if req.IssuedAt != nil {
		issuedAt = *req.IssuedAt
	}

	prescription := &model.Prescription{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Items:     req.Items,
		IssuedAt:  issuedAt,
	}

	if err := s.prescriptionRepo.Create(ctx, prescription); err != nil {
		return nil, errors.Internal(err)
	}
	return prescription, nil
}

// ListByPatient returns a patient's prescriptions newest-first by issue
// time.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*model.Prescription, error) {
	prescriptions, err := s.prescriptionRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return prescriptions, nil
}
