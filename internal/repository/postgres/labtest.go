package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
)

type labTestRepository struct {
	db *sqlx.DB
}

func NewLabTestRepository(db *sqlx.DB) repository.LabTestRepository {
	return &labTestRepository{db: db}
}

func (r *labTestRepository) Create(ctx context.Context, test *model.LabTest) error {
	query := `
		INSERT INTO lab_tests (
			id, patient_id, ordered_by, test_type, status,
			result_summary, result_pdf_url, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	stamp(&test.Base)

	_, err := r.db.ExecContext(ctx, query,
		test.ID,
		test.PatientID,
		test.OrderedBy,
		test.TestType,
		test.Status,
		test.ResultSummary,
		test.ResultPDFURL,
		test.CreatedAt,
		test.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lab test: %w", err)
	}
	return nil
}

func (r *labTestRepository) ListByPatient(ctx context.Context, patientID string) ([]*model.LabTest, error) {
	query := `
		SELECT * FROM lab_tests
		WHERE patient_id = $1
		ORDER BY created_at DESC
	`

	tests := []*model.LabTest{}
	if err := r.db.SelectContext(ctx, &tests, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list lab tests: %w", err)
	}
	return tests, nil
}

// Complete marks a test completed and records the result pointer in a
// single statement, so the two fields never diverge.
func (r *labTestRepository) Complete(ctx context.Context, id, resultURL string) error {
	tid, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrNotFound
	}

	query := `
		UPDATE lab_tests
		SET status = $1, result_pdf_url = $2, updated_at = NOW()
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, model.LabTestStatusCompleted, resultURL, tid)
	if err != nil {
		return fmt.Errorf("failed to complete lab test: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *labTestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM lab_tests WHERE status = $1`, status); err != nil {
		return 0, fmt.Errorf("failed to count lab tests: %w", err)
	}
	return count, nil
}
