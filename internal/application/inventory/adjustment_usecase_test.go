package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

const (
	testMerchantID = "00000000-0000-0000-0000-00000000000a"
	otherMerchant  = "00000000-0000-0000-0000-00000000000b"
)

func testBatch(qty int64) *entity.InventoryBatch {
	return &entity.InventoryBatch{
		ID:         "batch-1",
		ProductID:  "prod-1",
		MerchantID: testMerchantID,
		Quantity:   qty,
	}
}

func TestApplyAdjustment_DamageResta(t *testing.T) {
	batchRepo := newFakeBatchRepo(testBatch(10))
	txRepo := &fakeTxRepo{}
	uc := inventory.NewAdjustmentUseCase(batchRepo, txRepo)

	// El formulario manda "5" positivo; damage lo normaliza a -5.
	out, err := uc.ApplyAdjustment(context.Background(), testMerchantID, dto.AdjustStockRequest{
		BatchID:  "batch-1",
		Quantity: "5",
		Reason:   "damage",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), out.Batch.Quantity, "10 - 5 = 5")
	require.Len(t, txRepo.created, 1)
	assert.Equal(t, int64(-5), txRepo.created[0].Quantity, "la transacción lleva el delta con signo")
	assert.Equal(t, "Damage", txRepo.created[0].Notes, "notes vacío usa la etiqueta del motivo")

	// Conservación: nueva cantidad = vieja + delta de la transacción.
	assert.Equal(t, int64(10)+txRepo.created[0].Quantity, out.Batch.Quantity)
}

func TestApplyAdjustment_PuedeQuedarNegativo(t *testing.T) {
	batchRepo := newFakeBatchRepo(testBatch(3))
	txRepo := &fakeTxRepo{}
	uc := inventory.NewAdjustmentUseCase(batchRepo, txRepo)

	out, err := uc.ApplyAdjustment(context.Background(), testMerchantID, dto.AdjustStockRequest{
		BatchID:  "batch-1",
		Quantity: "8",
		Reason:   "loss",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-5), out.Batch.Quantity,
		"la cantidad no se trunca en cero: queda negativa")
}

func TestApplyAdjustment_AdjustmentSignoLibre(t *testing.T) {
	batchRepo := newFakeBatchRepo(testBatch(10))
	txRepo := &fakeTxRepo{}
	uc := inventory.NewAdjustmentUseCase(batchRepo, txRepo)

	out, err := uc.ApplyAdjustment(context.Background(), testMerchantID, dto.AdjustStockRequest{
		BatchID:  "batch-1",
		Quantity: "-4",
		Reason:   "adjustment",
		Notes:    "conteo físico",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), out.Batch.Quantity)
	assert.Equal(t, "conteo físico", out.Transaction.Notes)
}

func TestApplyAdjustment_CantidadNoEntera(t *testing.T) {
	uc := inventory.NewAdjustmentUseCase(newFakeBatchRepo(testBatch(10)), &fakeTxRepo{})

	for _, raw := range []string{"", "abc", "1.5", "½"} {
		_, err := uc.ApplyAdjustment(context.Background(), testMerchantID, dto.AdjustStockRequest{
			BatchID:  "batch-1",
			Quantity: raw,
			Reason:   "damage",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %q debe rechazarse", raw)
	}
}

func TestApplyAdjustment_MotivoInvalido(t *testing.T) {
	uc := inventory.NewAdjustmentUseCase(newFakeBatchRepo(testBatch(10)), &fakeTxRepo{})

	// outbound está reservado al despacho; tampoco se acepta un motivo inventado.
	for _, reason := range []string{"outbound", "transfer", ""} {
		_, err := uc.ApplyAdjustment(context.Background(), testMerchantID, dto.AdjustStockRequest{
			BatchID:  "batch-1",
			Quantity: "1",
			Reason:   reason,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "motivo %q debe rechazarse", reason)
	}
}

func TestApplyAdjustment_LoteAjeno(t *testing.T) {
	uc := inventory.NewAdjustmentUseCase(newFakeBatchRepo(testBatch(10)), &fakeTxRepo{})

	_, err := uc.ApplyAdjustment(context.Background(), otherMerchant, dto.AdjustStockRequest{
		BatchID:  "batch-1",
		Quantity: "1",
		Reason:   "damage",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApplyAdjustment_LoteInexistente(t *testing.T) {
	uc := inventory.NewAdjustmentUseCase(newFakeBatchRepo(), &fakeTxRepo{})

	_, err := uc.ApplyAdjustment(context.Background(), testMerchantID, dto.AdjustStockRequest{
		BatchID:  "no-existe",
		Quantity: "1",
		Reason:   "damage",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApplyAdjustment_FechaGranularidadDia(t *testing.T) {
	txRepo := &fakeTxRepo{}
	uc := inventory.NewAdjustmentUseCase(newFakeBatchRepo(testBatch(10)), txRepo)

	_, err := uc.ApplyAdjustment(context.Background(), testMerchantID, dto.AdjustStockRequest{
		BatchID:  "batch-1",
		Quantity: "1",
		Reason:   "found",
	})
	require.NoError(t, err)
	require.Len(t, txRepo.created, 1)
	date := txRepo.created[0].Date
	assert.Zero(t, date.Hour())
	assert.Zero(t, date.Minute())
	assert.Zero(t, date.Second())
}
