package patient

import (
	"context"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	"github.com/aayaanhealth/hospital-api/pkg/errors"
)

const defaultListLimit = 50

type Service struct {
	patientRepo repository.PatientRepository
	recordRepo  repository.MedicalRecordRepository
}

func NewService(patientRepo repository.PatientRepository, recordRepo repository.MedicalRecordRepository) *Service {
	return &Service{patientRepo: patientRepo, recordRepo: recordRepo}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		UserID:              req.UserID,
		MedicalRecordNumber: req.MedicalRecordNumber,
		BloodGroup:          req.BloodGroup,
		Allergies:           req.Allergies,
		ChronicConditions:   req.ChronicConditions,
		EmergencyContact:    req.EmergencyContact,
		InsuranceProvider:   req.InsuranceProvider,
		InsuranceNumber:     req.InsuranceNumber,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, errors.Internal(err)
	}
	return patient, nil
}

func (s *Service) List(ctx context.Context, limit int) ([]*model.Patient, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	patients, err := s.patientRepo.List(ctx, limit)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return patients, nil
}

func (s *Service) AddRecord(ctx context.Context, patientID, notes string) (*model.MedicalRecord, error) {
	record := &model.MedicalRecord{
		PatientID: patientID,
		Notes:     notes,
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, errors.Internal(err)
	}
	return record, nil
}

// ListRecords returns a patient's clinical notes newest-first.
func (s *Service) ListRecords(ctx context.Context, patientID string) ([]*model.MedicalRecord, error) {
	records, err := s.recordRepo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, errors.Internal(err)
	}
	return records, nil
}
