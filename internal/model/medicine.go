package model

// Medicine is a pharmacy stock entry. Stock may go negative: dispensing
// decrements it without a floor check.
type Medicine struct {
	Base
	Name         string  `json:"name" db:"name"`
	Stock        int     `json:"stock" db:"stock"`
	Price        float64 `json:"price" db:"price"`
	Manufacturer *string `json:"manufacturer,omitempty" db:"manufacturer"`
	ExpiryDate   *string `json:"expiry_date,omitempty" db:"expiry_date"`
}

// CreateMedicineRequest represents medicine creation parameters
type CreateMedicineRequest struct {
	Name         string  `json:"name" binding:"required"`
	Stock        *int    `json:"stock" binding:"required"`
	Price        float64 `json:"price" binding:"required"`
	Manufacturer *string `json:"manufacturer"`
	ExpiryDate   *string `json:"expiry_date"`
}
