package model

// Ambulance request status constants
const (
	AmbulanceStatusRequested = "requested"
	AmbulanceStatusEnroute   = "enroute"
	AmbulanceStatusArrived   = "arrived"
	AmbulanceStatusCancelled = "cancelled"
)

// AmbulanceRequest is the only entity creatable without authentication.
type AmbulanceRequest struct {
	Base
	PatientName string  `json:"patient_name" db:"patient_name"`
	Phone       string  `json:"phone" db:"phone"`
	Location    string  `json:"location" db:"location"`
	Destination *string `json:"destination,omitempty" db:"destination"`
	ETAMinutes  *int    `json:"eta_minutes,omitempty" db:"eta_minutes"`
	Status      string  `json:"status" db:"status"`
}

// CreateAmbulanceRequest represents ambulance dispatch parameters
type CreateAmbulanceRequest struct {
	PatientName string  `json:"patient_name" binding:"required"`
	Phone       string  `json:"phone" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Destination *string `json:"destination"`
	ETAMinutes  *int    `json:"eta_minutes"`
	Status      string  `json:"status" binding:"omitempty,oneof=requested enroute arrived cancelled"`
}
