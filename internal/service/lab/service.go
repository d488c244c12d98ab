package lab

import (
	"context"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
)

type Service struct {
	labRepo repository.LabTestRepository
}

func NewService(labRepo repository.LabTestRepository) *Service {
	return &Service{labRepo: labRepo}
}

func (s *Service) Order(ctx context.Context, req *model.CreateLabTestRequest) (*model.LabTest, error) {
	status := req.Status
	if status == "" {
		status = model.LabTestStatusOrdered
	}

	test := &model.LabTest{
		PatientID:     req.PatientID,
		OrderedBy:     req.OrderedBy,
		TestType:      req.TestType,
		Status:        status,
		ResultSummary: req.ResultSummary,
	}

	if err := s.labRepo.Create(ctx, test); err != nil {
		return nil, errors.Internal(err)
	}
	return test, nil
}

// UploadResult marks the test completed and records the derived result
// path in one atomic update.
func (s *Service) UploadResult(ctx context.Context, testID, filename string) error {
	if err := s.labRepo.Complete(ctx, testID, "/files/"+filename); err != nil {
		return errors.Internal(err)
	}
	return nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*model.LabTest, error) {
	tests, err := s.labRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return tests, nil
}
