package postgres

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
)

// stamp assigns a fresh identifier and creation timestamps before an
// insert.
func stamp(b *model.Base) {
	b.ID = uuid.New()
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
}

// asRepoErr maps driver-level row misses onto the repository sentinel.
func asRepoErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
