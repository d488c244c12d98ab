package ambulance

import (
	"context"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
)

type Service struct {
	ambulanceRepo repository.AmbulanceRepository
}

func NewService(ambulanceRepo repository.AmbulanceRepository) *Service {
	return &Service{ambulanceRepo: ambulanceRepo}
}

func (s *Service) Request(ctx context.Context, req *model.CreateAmbulanceRequest) (*model.AmbulanceRequest, error) {
	status := req.Status
	if status == "" {
		status = model.AmbulanceStatusRequested
	}

	request := &model.AmbulanceRequest{
		PatientName: req.PatientName,
		Phone:       req.Phone,
		Location:    req.Location,
		Destination: req.Destination,
		ETAMinutes:  req.ETAMinutes,
		Status:      status,
	}

	if err := s.ambulanceRepo.Create(ctx, request); err != nil {
		return nil, errors.Internal(err)
	}
	return request, nil
}
