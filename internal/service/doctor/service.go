package doctor

import (
	"context"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
)

type Service struct {
	doctorRepo repository.DoctorRepository
}

func NewService(doctorRepo repository.DoctorRepository) *Service {
	return &Service{doctorRepo: doctorRepo}
}

func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return doctors, nil
}
