package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
)

type ambulanceRepository struct {
	db *sqlx.DB
}

func NewAmbulanceRepository(db *sqlx.DB) repository.AmbulanceRepository {
	return &ambulanceRepository{db: db}
}

func (r *ambulanceRepository) Create(ctx context.Context, request *model.AmbulanceRequest) error {
	query := `
		INSERT INTO ambulance_requests (
			id, patient_name, phone, location, destination,
			eta_minutes, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	stamp(&request.Base)

	_, err := r.db.ExecContext(ctx, query,
		request.ID,
		request.PatientName,
		request.Phone,
		request.Location,
		request.Destination,
		request.ETAMinutes,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ambulance request: %w", err)
	}
	return nil
}
