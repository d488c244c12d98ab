package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			id, user_id, medical_record_number, blood_group, allergies,
			chronic_conditions, emergency_contact, insurance_provider,
			insurance_number, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	stamp(&patient.Base)

	_, err := r.db.ExecContext(ctx, query,
		patient.ID,
		patient.UserID,
		patient.MedicalRecordNumber,
		patient.BloodGroup,
		patient.Allergies,
		patient.ChronicConditions,
		patient.EmergencyContact,
		patient.InsuranceProvider,
		patient.InsuranceNumber,
		patient.CreatedAt,
		patient.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context, limit int) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY created_at DESC LIMIT $1`

	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM patients`); err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}
