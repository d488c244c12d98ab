package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
)

func TestLabTestComplete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLabTestRepository(db)

	id := uuid.New()
	mock.ExpectExec("UPDATE lab_tests").
		WithArgs(model.LabTestStatusCompleted, "/files/cbc_report.pdf", id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Complete(context.Background(), id.String(), "/files/cbc_report.pdf")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLabTestCompleteUnknownTest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLabTestRepository(db)

	id := uuid.New()
	mock.ExpectExec("UPDATE lab_tests").
		WithArgs(model.LabTestStatusCompleted, "/files/report.pdf", id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Complete(context.Background(), id.String(), "/files/report.pdf")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLabTestCompleteMalformedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLabTestRepository(db)

	err := repo.Complete(context.Background(), "not-a-uuid", "/files/report.pdf")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLabTestCountByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLabTestRepository(db)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(model.LabTestStatusOrdered).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountByStatus(context.Background(), model.LabTestStatusOrdered)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
