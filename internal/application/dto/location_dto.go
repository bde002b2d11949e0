package dto

import "time"

// CreateLocationRequest body para POST /api/locations. Los cuatro campos son
// obligatorios.
type CreateLocationRequest struct {
	BuildingNumber string `json:"building_number"`
	Location       string `json:"location"`
	Pincode        string `json:"pincode"`
	Phone          string `json:"phone"`
}

// LocationResponse ubicación registrada.
type LocationResponse struct {
	ID             string    `json:"id"`
	BuildingNumber string    `json:"building_number"`
	Location       string    `json:"location"`
	Pincode        string    `json:"pincode"`
	Phone          string    `json:"phone"`
	MerchantID     string    `json:"merchant_id"`
	CreatedAt      time.Time `json:"created_at"`
}
