package inventory

import (
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// EffectiveDelta normaliza el signo de una cantidad capturada según el motivo
// del ajuste (servicio de dominio, regla de negocio crítica):
//
//	damage, loss, sale, outbound  -> siempre -abs(raw)
//	purchase, return, correction, found -> siempre +abs(raw)
//	adjustment -> raw tal como se capturó (signo libre)
//
// El switch es exhaustivo sobre el tipo cerrado: un motivo fuera del conjunto
// retorna ErrInvalidInput en lugar de colarse como caso sin normalizar.
func EffectiveDelta(reason entity.AdjustmentReason, raw int64) (int64, error) {
	switch reason {
	case entity.ReasonDamage, entity.ReasonLoss, entity.ReasonSale, entity.ReasonOutbound:
		return -abs(raw), nil
	case entity.ReasonPurchase, entity.ReasonReturn, entity.ReasonCorrection, entity.ReasonFound:
		return abs(raw), nil
	case entity.ReasonAdjustment:
		return raw, nil
	}
	return 0, domain.ErrInvalidInput
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
