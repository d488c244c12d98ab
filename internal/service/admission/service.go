package admission

import (
	"context"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
)

type Service struct {
	admissionRepo repository.AdmissionRepository
}

func NewService(admissionRepo repository.AdmissionRepository) *Service {
	return &Service{admissionRepo: admissionRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreateAdmissionRequest) (*model.Admission, error) {
	status := req.Status
	if status == "" {
		status = model.AdmissionStatusAdmitted
	}

	admission := &model.Admission{
		PatientID:   req.PatientID,
		RoomNumber:  req.RoomNumber,
		BedNumber:   req.BedNumber,
		AdmittedAt:  req.AdmittedAt,
		DischargeAt: req.DischargeAt,
		Status:      status,
	}

	if err := s.admissionRepo.Create(ctx, admission); err != nil {
		return nil, errors.Internal(err)
	}
	return admission, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Admission, error) {
	admissions, err := s.admissionRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return admissions, nil
}
