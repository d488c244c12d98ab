package model

// Admission status constants
const (
	AdmissionStatusAdmitted   = "admitted"
	AdmissionStatusDischarged = "discharged"
)

type Admission struct {
	Base
	PatientID   string  `json:"patient_id" db:"patient_id"`
	RoomNumber  string  `json:"room_number" db:"room_number"`
	BedNumber   *string `json:"bed_number,omitempty" db:"bed_number"`
	AdmittedAt  string  `json:"admitted_at" db:"admitted_at"`
	DischargeAt *string `json:"discharge_at,omitempty" db:"discharge_at"`
	Status      string  `json:"status" db:"status"`
}

// CreateAdmissionRequest represents admission creation parameters
type CreateAdmissionRequest struct {
	PatientID   string  `json:"patient_id" binding:"required"`
	RoomNumber  string  `json:"room_number" binding:"required"`
	BedNumber   *string `json:"bed_number"`
	AdmittedAt  string  `json:"admitted_at" binding:"required"`
	DischargeAt *string `json:"discharge_at"`
	Status      string  `json:"status" binding:"omitempty,oneof=admitted discharged"`
}
