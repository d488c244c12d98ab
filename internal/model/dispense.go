package model

import "database/sql/driver"

// DispenseItem is one medicine line on a dispense record.
type DispenseItem struct {
	MedicineID string  `json:"medicine_id"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// DispenseItems is an ordered line-item list stored as a JSON document.
type DispenseItems []DispenseItem

func (i DispenseItems) Value() (driver.Value, error) {
	return jsonValue(i)
}

func (i *DispenseItems) Scan(src interface{}) error {
	return jsonScan(i, src)
}

type Dispense struct {
	Base
	PatientID      string        `json:"patient_id" db:"patient_id"`
	PrescriptionID string        `json:"prescription_id" db:"prescription_id"`
	Items          DispenseItems `json:"items" db:"items"`
	Total          float64       `json:"total" db:"total"`
	Paid           bool          `json:"paid" db:"paid"`
}

// CreateDispenseRequest represents dispense creation parameters
type CreateDispenseRequest struct {
	PatientID      string         `json:"patient_id" binding:"required"`
	PrescriptionID string         `json:"prescription_id" binding:"required"`
	Items          []DispenseItem `json:"items" binding:"required,min=1"`
	Total          float64        `json:"total"`
	Paid           bool           `json:"paid"`
}

// StockUpdate reports the outcome of one stock decrement attempted
// while dispensing. A failed decrement never aborts the dispense.
type StockUpdate struct {
	MedicineID string `json:"medicine_id"`
	Quantity   int    `json:"quantity"`
	Applied    bool   `json:"applied"`
	Reason     string `json:"reason,omitempty"`
}

// DispenseReceipt is the response for a dispense operation.
type DispenseReceipt struct {
	ID           string        `json:"id"`
	StockUpdates []StockUpdate `json:"stock_updates"`
}
