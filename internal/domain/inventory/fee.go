package inventory

import "github.com/shopspring/decimal"

// Tarifa de movimiento: cargo plano por bloque de 10 kg iniciado, con mínimo
// de un bloque incluso para cargas menores a 1 kg.
var (
	feeBlockKg  = decimal.NewFromInt(10)
	feePerBlock = decimal.NewFromInt(150)
	feeMinKg    = decimal.NewFromInt(1)
)

// RequestFee calcula la tarifa de una solicitud:
//
//	fee = ceil(max(1, totalWeightKg) / 10) * 150
func RequestFee(totalWeightKg decimal.Decimal) decimal.Decimal {
	w := totalWeightKg
	if w.LessThan(feeMinKg) {
		w = feeMinKg
	}
	blocks := w.Div(feeBlockKg).Ceil()
	return blocks.Mul(feePerBlock)
}
