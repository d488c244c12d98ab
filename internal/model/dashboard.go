package model

// DashboardSummary aggregates operational counts for the landing view.
type DashboardSummary struct {
	AppointmentsToday int64    `json:"appointments_today"`
	PatientsTotal     int64    `json:"patients_total"`
	LabPending        int64    `json:"lab_pending"`
	Alerts            []string `json:"alerts"`
}
