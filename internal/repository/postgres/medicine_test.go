package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestMedicineCreateStampsRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMedicineRepository(db)

	mock.ExpectExec("INSERT INTO medicines").
		WillReturnResult(sqlmock.NewResult(0, 1))

	medicine := &model.Medicine{Name: "Paracetamol 500mg", Stock: 100, Price: 1.2}
	require.NoError(t, repo.Create(context.Background(), medicine))

	assert.NotEqual(t, uuid.Nil, medicine.ID)
	assert.False(t, medicine.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMedicineRepository(db)

	id := uuid.New()
	mock.ExpectExec("UPDATE medicines").
		WithArgs(3, id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DecrementStock(context.Background(), id.String(), 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStockUnknownMedicine(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMedicineRepository(db)

	id := uuid.New()
	mock.ExpectExec("UPDATE medicines").
		WithArgs(5, id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DecrementStock(context.Background(), id.String(), 5)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStockMalformedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMedicineRepository(db)

	err := repo.DecrementStock(context.Background(), "not-a-uuid", 1)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
