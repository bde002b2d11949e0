package dto

// ThemeRequest cambio de la preferencia de tema de interfaz.
type ThemeRequest struct {
	Theme string `json:"theme"` // light | dark
}

// ThemeResponse preferencia de tema vigente (vacío: default del cliente).
type ThemeResponse struct {
	Theme string `json:"theme"`
}
