package entity

import "time"

// Location dirección de recogida/entrega registrada por un comerciante.
// Visible únicamente para su dueño; las solicitudes la referencian por ID.
type Location struct {
	ID             string
	BuildingNumber string
	Location       string
	Pincode        string
	Phone          string
	MerchantID     string
	CreatedAt      time.Time
}
