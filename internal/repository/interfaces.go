package repository

import (
	"context"
	"errors"

	"github.com/aayaanhealth/hospital-api/internal/model"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	List(ctx context.Context, limit int) ([]*model.Patient, error)
	Count(ctx context.Context) (int64, error)
}

type MedicalRecordRepository interface {
	Create(ctx context.Context, record *model.MedicalRecord) error
	ListByPatient(ctx context.Context, patientID string) ([]*model.MedicalRecord, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	List(ctx context.Context) ([]*model.Doctor, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	ListByDate(ctx context.Context, date string) ([]*model.Appointment, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *model.Prescription) error
	ListByPatient(ctx context.Context, patientID string) ([]*model.Prescription, error)
}

type LabTestRepository interface {
	Create(ctx context.Context, test *model.LabTest) error
	ListByPatient(ctx context.Context, patientID string) ([]*model.LabTest, error)
	Complete(ctx context.Context, id, resultURL string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type MedicineRepository interface {
	Create(ctx context.Context, medicine *model.Medicine) error
	List(ctx context.Context) ([]*model.Medicine, error)
	DecrementStock(ctx context.Context, id string, quantity int) error
}

type DispenseRepository interface {
	Create(ctx context.Context, dispense *model.Dispense) error
}

type AdmissionRepository interface {
	Create(ctx context.Context, admission *model.Admission) error
	List(ctx context.Context) ([]*model.Admission, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) error
}

type AmbulanceRepository interface {
	Create(ctx context.Context, request *model.AmbulanceRequest) error
}
