package entity

import "time"

// Roles de usuario. El gating por rol es asesor (UI/rutas), no un control duro.
const (
	RoleAdmin    = "admin"
	RoleMerchant = "merchant"
)

// User usuario de la aplicación. Para rol merchant, MerchantID delimita qué
// lotes, solicitudes y ubicaciones puede ver.
type User struct {
	ID           string
	MerchantID   string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
