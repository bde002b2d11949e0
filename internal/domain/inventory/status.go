package inventory

import (
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// Variantes visuales del estado de un lote (badge en el cliente).
const (
	VariantDefault     = "default"
	VariantWarning     = "warning"
	VariantDestructive = "destructive"
)

// BatchStatus estado derivado de un lote para presentación: banderas de
// umbral, etiqueta de vencimiento y el badge resultante.
type BatchStatus struct {
	IsLowStock    bool
	IsOverStock   bool
	ExpiryLabel   string
	ExpiryStatus  string
	StatusVariant string
	StatusText    string
}

// expiryLayouts formatos aceptados para la fecha de vencimiento capturada.
var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// Classify deriva el estado de un lote a partir de umbrales y vencimiento.
// Reglas:
//   - low  <=> MinStockLevel > 0 y Quantity <= MinStockLevel
//   - over <=> MaxStockLevel > 0 y Quantity > MaxStockLevel
//   - base: OK -> Low (prioridad sobre Over) -> Over
//   - el vencimiento manda sobre el estado de umbral: expired fuerza
//     Expired/destructive y about_to_expire fuerza "Expiring Soon"/warning.
//
// Umbral en 0 significa "no configurado" y queda fuera del cómputo.
func Classify(batch *entity.InventoryBatch) BatchStatus {
	st := BatchStatus{
		IsLowStock:    batch.MinStockLevel > 0 && batch.Quantity <= batch.MinStockLevel,
		IsOverStock:   batch.MaxStockLevel > 0 && batch.Quantity > batch.MaxStockLevel,
		ExpiryLabel:   expiryLabel(batch.ExpiryDate),
		ExpiryStatus:  batch.ExpiryStatus,
		StatusVariant: VariantDefault,
		StatusText:    "OK",
	}

	if st.IsLowStock {
		st.StatusVariant = VariantDestructive
		st.StatusText = "Low Stock"
	} else if st.IsOverStock {
		st.StatusVariant = VariantWarning
		st.StatusText = "Over Stock"
	}

	// El vencimiento tiene precedencia sobre Low/Over.
	switch batch.ExpiryStatus {
	case entity.ExpiryStatusExpired:
		st.StatusVariant = VariantDestructive
		st.StatusText = "Expired"
	case entity.ExpiryStatusAboutToExpire:
		st.StatusVariant = VariantWarning
		st.StatusText = "Expiring Soon"
	}

	return st
}

// expiryLabel devuelve la fecha ISO (YYYY-MM-DD) si la cruda es parseable,
// la cadena cruda si no lo es, y "-" si está vacía.
func expiryLabel(raw string) string {
	if raw == "" {
		return "-"
	}
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}

// ProductGroup lotes de un mismo producto agregados para el listado colapsable.
type ProductGroup struct {
	ProductID     string
	Batches       []*entity.InventoryBatch
	TotalQuantity int64
}

// GroupByProduct agrupa lotes por producto conservando el orden de primera
// aparición del ProductID; TotalQuantity suma las cantidades del grupo.
func GroupByProduct(batches []*entity.InventoryBatch) []ProductGroup {
	groups := make([]ProductGroup, 0)
	index := make(map[string]int)
	for _, b := range batches {
		i, ok := index[b.ProductID]
		if !ok {
			i = len(groups)
			index[b.ProductID] = i
			groups = append(groups, ProductGroup{ProductID: b.ProductID})
		}
		groups[i].Batches = append(groups[i].Batches, b)
		groups[i].TotalQuantity += b.Quantity
	}
	return groups
}
