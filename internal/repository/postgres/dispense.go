package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
)

type dispenseRepository struct {
	db *sqlx.DB
}

func NewDispenseRepository(db *sqlx.DB) repository.DispenseRepository {
	return &dispenseRepository{db: db}
}

func (r *dispenseRepository) Create(ctx context.Context, dispense *model.Dispense) error {
	query := `
		INSERT INTO dispenses (
			id, patient_id, prescription_id, items, total, paid, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	stamp(&dispense.Base)

	_, err := r.db.ExecContext(ctx, query,
		dispense.ID,
		dispense.PatientID,
		dispense.PrescriptionID,
		dispense.Items,
		dispense.Total,
		dispense.Paid,
		dispense.CreatedAt,
		dispense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create dispense: %w", err)
	}
	return nil
}
