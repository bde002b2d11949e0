package entity

import (
	"strings"
	"time"
)

// AdjustmentReason tipo cerrado para el motivo de un ajuste de inventario.
// El motor de ajustes hace switch exhaustivo sobre estos valores: un motivo
// desconocido es un error, nunca un caso silencioso.
type AdjustmentReason string

// Motivos de ajuste. Outbound lo usa únicamente el despacho de solicitudes.
const (
	ReasonAdjustment AdjustmentReason = "adjustment" // signo libre, tal como se capturó
	ReasonDamage     AdjustmentReason = "damage"     // siempre deducción
	ReasonLoss       AdjustmentReason = "loss"       // siempre deducción
	ReasonSale       AdjustmentReason = "sale"       // siempre deducción
	ReasonPurchase   AdjustmentReason = "purchase"   // siempre adición
	ReasonReturn     AdjustmentReason = "return"     // siempre adición
	ReasonCorrection AdjustmentReason = "correction" // siempre adición
	ReasonFound      AdjustmentReason = "found"      // siempre adición
	ReasonOutbound   AdjustmentReason = "outbound"   // salida por solicitud despachada
)

// Valid reporta si el motivo pertenece al conjunto cerrado.
func (r AdjustmentReason) Valid() bool {
	switch r {
	case ReasonAdjustment, ReasonDamage, ReasonLoss, ReasonSale,
		ReasonPurchase, ReasonReturn, ReasonCorrection, ReasonFound, ReasonOutbound:
		return true
	}
	return false
}

// Label devuelve la etiqueta capitalizada del motivo ("damage" -> "Damage").
// Se usa como nota por defecto cuando el usuario no escribe ninguna.
func (r AdjustmentReason) Label() string {
	s := string(r)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Transaction es el registro de auditoría de un cambio de cantidad sobre un lote.
// Inmutable una vez creado; el log es append-only. Quantity lleva el delta con
// signo ya normalizado: sumado a la cantidad previa del lote da la posterior.
type Transaction struct {
	ID         string
	MerchantID string
	ProductID  string
	Type       AdjustmentReason
	Quantity   int64 // delta con signo
	Date       time.Time
	Notes      string
	CreatedAt  time.Time
}
