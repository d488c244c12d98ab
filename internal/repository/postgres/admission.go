package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
)

type admissionRepository struct {
	db *sqlx.DB
}

func NewAdmissionRepository(db *sqlx.DB) repository.AdmissionRepository {
	return &admissionRepository{db: db}
}

func (r *admissionRepository) Create(ctx context.Context, admission *model.Admission) error {
	query := `
		INSERT INTO admissions (
			id, patient_id, room_number, bed_number, admitted_at,
			discharge_at, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	stamp(&admission.Base)

	_, err := r.db.ExecContext(ctx, query,
		admission.ID,
		admission.PatientID,
		admission.RoomNumber,
		admission.BedNumber,
		admission.AdmittedAt,
		admission.DischargeAt,
		admission.Status,
		admission.CreatedAt,
		admission.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create admission: %w", err)
	}
	return nil
}

func (r *admissionRepository) List(ctx context.Context) ([]*model.Admission, error) {
	query := `SELECT * FROM admissions ORDER BY created_at DESC`

	admissions := []*model.Admission{}
	if err := r.db.SelectContext(ctx, &admissions, query); err != nil {
		return nil, fmt.Errorf("failed to list admissions: %w", err)
	}
	return admissions, nil
}
