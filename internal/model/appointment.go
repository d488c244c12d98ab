package model

// Appointment status constants
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusNoShow    = "no_show"
)

// Appointment is a pure booking record: no overlap or double-booking
// rule is enforced.
type Appointment struct {
	Base
	PatientID string  `json:"patient_id" db:"patient_id"`
	DoctorID  string  `json:"doctor_id" db:"doctor_id"`
	Date      string  `json:"date" db:"date"`
	Time      string  `json:"time" db:"time"`
	Status    string  `json:"status" db:"status"`
	Reason    *string `json:"reason,omitempty" db:"reason"`
	Notes     *string `json:"notes,omitempty" db:"notes"`
}

// CreateAppointmentRequest represents appointment creation parameters.
// Date is an ISO calendar date string (2006-01-02).
type CreateAppointmentRequest struct {
	PatientID string  `json:"patient_id" binding:"required"`
	DoctorID  string  `json:"doctor_id" binding:"required"`
	Date      string  `json:"date" binding:"required,isodate"`
	Time      string  `json:"time" binding:"required"`
	Status    string  `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no_show"`
	Reason    *string `json:"reason"`
	Notes     *string `json:"notes"`
}
