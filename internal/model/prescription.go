package model

import (
	"database/sql/driver"
	"time"
)

// PrescriptionItem is one medicine line on a prescription.
type PrescriptionItem struct {
	MedicineID string `json:"medicine_id"`
	Name       string `json:"name"`
	Dosage     string `json:"dosage"`
	Frequency  string `json:"frequency"`
	Days       int    `json:"days"`
	Notes      string `json:"notes,omitempty"`
}

// PrescriptionItems is an ordered line-item list stored as a JSON
// document.
type PrescriptionItems []PrescriptionItem

func (i PrescriptionItems) Value() (driver.Value, error) {
	return jsonValue(i)
}

func (i *PrescriptionItems) Scan(src interface{}) error {
	return jsonScan(i, src)
}

type Prescription struct {
	Base
	PatientID string            `json:"patient_id" db:"patient_id"`
	DoctorID  string            `json:"doctor_id" db:"doctor_id"`
	Items     PrescriptionItems `json:"items" db:"items"`
	IssuedAt  time.Time         `json:"issued_at" db:"issued_at"`
}

// CreatePrescriptionRequest represents prescription creation parameters
type CreatePrescriptionRequest struct {
	PatientID string             `json:"patient_id" binding:"required"`
	DoctorID  string             `json:"doctor_id" binding:"required"`
	Items     []PrescriptionItem `json:"items" binding:"required,min=1"`
	IssuedAt  *time.Time         `json:"issued_at"`
}
