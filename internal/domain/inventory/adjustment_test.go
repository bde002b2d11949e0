package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// EffectiveDelta es la regla de negocio crítica del motor de ajustes: el signo
// efectivo lo decide el motivo, no el signo capturado en el formulario.
// ──────────────────────────────────────────────────────────────────────────────

func TestEffectiveDelta_MotivosNegativos(t *testing.T) {
	// damage, loss y sale siempre restan, sin importar el signo capturado.
	for _, reason := range []entity.AdjustmentReason{
		entity.ReasonDamage, entity.ReasonLoss, entity.ReasonSale, entity.ReasonOutbound,
	} {
		for _, raw := range []int64{5, -5, 0} {
			delta, err := inventory.EffectiveDelta(reason, raw)
			require.NoError(t, err)
			assert.LessOrEqual(t, delta, int64(0),
				"motivo %s con raw %d debe producir delta <= 0", reason, raw)
			if raw != 0 {
				assert.Equal(t, int64(-5), delta,
					"motivo %s siempre normaliza a -abs(raw)", reason)
			}
		}
	}
}

func TestEffectiveDelta_MotivosPositivos(t *testing.T) {
	// purchase, return, correction y found siempre suman.
	for _, reason := range []entity.AdjustmentReason{
		entity.ReasonPurchase, entity.ReasonReturn, entity.ReasonCorrection, entity.ReasonFound,
	} {
		for _, raw := range []int64{7, -7} {
			delta, err := inventory.EffectiveDelta(reason, raw)
			require.NoError(t, err)
			assert.Equal(t, int64(7), delta,
				"motivo %s siempre normaliza a +abs(raw)", reason)
		}
	}
}

func TestEffectiveDelta_AdjustmentConservaSigno(t *testing.T) {
	// adjustment es el único motivo de signo libre: se aplica tal como se capturó.
	for _, raw := range []int64{12, -12, 0} {
		delta, err := inventory.EffectiveDelta(entity.ReasonAdjustment, raw)
		require.NoError(t, err)
		assert.Equal(t, raw, delta, "adjustment debe conservar el valor crudo")
	}
}

func TestEffectiveDelta_MotivoDesconocido(t *testing.T) {
	_, err := inventory.EffectiveDelta(entity.AdjustmentReason("transfer"), 3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un motivo fuera del conjunto cerrado debe rechazarse")
}

func TestAdjustmentReason_Label(t *testing.T) {
	assert.Equal(t, "Damage", entity.ReasonDamage.Label())
	assert.Equal(t, "Adjustment", entity.ReasonAdjustment.Label())
}
