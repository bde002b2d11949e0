package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bodega-api/internal/domain/inventory"
)

// TestRequestFee_Vector valida la tarifa por bloques de 10 kg con el vector de
// referencia: cargas menores a 1 kg pagan el bloque mínimo, y 10.01 kg ya abre
// un segundo bloque.
func TestRequestFee_Vector(t *testing.T) {
	cases := []struct {
		weight   string
		expected int64
	}{
		{"0", 150},
		{"0.5", 150},
		{"1", 150},
		{"10", 150},
		{"10.01", 300},
		{"20", 300},
		{"25", 450},
		{"100", 1500},
	}
	for _, tc := range cases {
		w, err := decimal.NewFromString(tc.weight)
		assert.NoError(t, err)
		fee := inventory.RequestFee(w)
		assert.True(t, decimal.NewFromInt(tc.expected).Equal(fee),
			"peso %s kg debe costar %d, obtuvo %s", tc.weight, tc.expected, fee)
	}
}
