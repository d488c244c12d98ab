package model

import "github.com/lib/pq"

// Patient holds the clinical profile linked to a user with role
// patient. The user reference is an opaque identifier string and is
// not existence-checked.
type Patient struct {
	Base
	UserID              string         `json:"user_id" db:"user_id"`
	MedicalRecordNumber string         `json:"medical_record_number" db:"medical_record_number"`
	BloodGroup          *string        `json:"blood_group,omitempty" db:"blood_group"`
	Allergies           pq.StringArray `json:"allergies,omitempty" db:"allergies"`
	ChronicConditions   pq.StringArray `json:"chronic_conditions,omitempty" db:"chronic_conditions"`
	EmergencyContact    *string        `json:"emergency_contact,omitempty" db:"emergency_contact"`
	InsuranceProvider   *string        `json:"insurance_provider,omitempty" db:"insurance_provider"`
	InsuranceNumber     *string        `json:"insurance_number,omitempty" db:"insurance_number"`
}

// CreatePatientRequest represents patient creation parameters
type CreatePatientRequest struct {
	UserID              string   `json:"user_id" binding:"required"`
	MedicalRecordNumber string   `json:"medical_record_number" binding:"required"`
	BloodGroup          *string  `json:"blood_group"`
	Allergies           []string `json:"allergies"`
	ChronicConditions   []string `json:"chronic_conditions"`
	EmergencyContact    *string  `json:"emergency_contact"`
	InsuranceProvider   *string  `json:"insurance_provider"`
	InsuranceNumber     *string  `json:"insurance_number"`
}

// MedicalRecord is a free-text clinical note attached to a patient.
type MedicalRecord struct {
	Base
	PatientID string `json:"patient_id" db:"patient_id"`
	Notes     string `json:"notes" db:"notes"`
}
