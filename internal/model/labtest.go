package model

// Lab test status constants
const (
	LabTestStatusOrdered    = "ordered"
	LabTestStatusInProgress = "in_progress"
	LabTestStatusCompleted  = "completed"
	LabTestStatusCancelled  = "cancelled"
)

// LabTest moves from ordered to completed exactly once, via result
// upload, which sets the status and the result pointer together.
type LabTest struct {
	Base
	PatientID     string  `json:"patient_id" db:"patient_id"`
	OrderedBy     string  `json:"ordered_by" db:"ordered_by"`
	TestType      string  `json:"test_type" db:"test_type"`
	Status        string  `json:"status" db:"status"`
	ResultSummary *string `json:"result_summary,omitempty" db:"result_summary"`
	ResultPDFURL  *string `json:"result_pdf_url,omitempty" db:"result_pdf_url"`
}

// CreateLabTestRequest represents lab order parameters
type CreateLabTestRequest struct {
	PatientID     string  `json:"patient_id" binding:"required"`
	OrderedBy     string  `json:"ordered_by" binding:"required"`
	TestType      string  `json:"test_type" binding:"required"`
	Status        string  `json:"status" binding:"omitempty,oneof=ordered in_progress completed cancelled"`
	ResultSummary *string `json:"result_summary"`
}
