package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Arnés: un comerciante con dos productos, sus lotes y una ubicación.
// ──────────────────────────────────────────────────────────────────────────────

type requestHarness struct {
	uc          *inventory.RequestUseCase
	batchRepo   *fakeBatchRepo
	txRepo      *fakeTxRepo
	requestRepo *fakeRequestRepo
	paymentRepo *fakePaymentRepo
	txRunner    *fakeTxRunner
	remote      *fakeRemoteClient
	orders      *fakeOrderClient
}

func newRequestHarness(t *testing.T) *requestHarness {
	t.Helper()

	productRepo := newFakeProductRepo(
		&entity.Product{ID: "prod-1", MerchantID: testMerchantID, Name: "Café", WeightKg: decimal.NewFromInt(5)},
		&entity.Product{ID: "prod-2", MerchantID: testMerchantID, Name: "Panela", WeightKg: decimal.NewFromInt(2)},
	)
	batchRepo := newFakeBatchRepo(
		&entity.InventoryBatch{ID: "batch-1", ProductID: "prod-1", MerchantID: testMerchantID, Quantity: 10},
		&entity.InventoryBatch{ID: "batch-2", ProductID: "prod-2", MerchantID: testMerchantID, Quantity: 4},
	)
	locationRepo := newFakeLocationRepo(
		&entity.Location{ID: "loc-1", MerchantID: testMerchantID, BuildingNumber: "12", Location: "Bodega Norte", Pincode: "110111", Phone: "3001234567"},
		&entity.Location{ID: "loc-ajena", MerchantID: otherMerchant, BuildingNumber: "1", Location: "Otra", Pincode: "0", Phone: "0"},
	)

	txRepo := &fakeTxRepo{}
	requestRepo := newFakeRequestRepo()
	paymentRepo := &fakePaymentRepo{}
	txRunner := &fakeTxRunner{requestRepo: requestRepo, paymentRepo: paymentRepo}
	remote := newFakeRemoteClient()
	orders := &fakeOrderClient{}

	uc := inventory.NewRequestUseCase(
		batchRepo, txRepo, productRepo, locationRepo, requestRepo,
		remote, orders, txRunner, testLogger(),
	)
	return &requestHarness{
		uc:          uc,
		batchRepo:   batchRepo,
		txRepo:      txRepo,
		requestRepo: requestRepo,
		paymentRepo: paymentRepo,
		txRunner:    txRunner,
		remote:      remote,
		orders:      orders,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas (inbound)
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitRequest_InboundExitoso(t *testing.T) {
	h := newRequestHarness(t)

	out, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "inbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 2}, {ProductID: "prod-2", Quantity: 5}},
		LocationID: "loc-1",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RequestStatusPending, out.Status)
	assert.Equal(t, "loc-1", out.PickupLocationID, "inbound llena pickup")
	assert.Empty(t, out.DeliveryLocationID, "delivery queda vacío en inbound")

	// Peso: 2x5 + 5x2 = 20 kg -> 2 bloques -> 300.
	assert.True(t, decimal.NewFromInt(20).Equal(out.TotalWeightKg), "peso total %s", out.TotalWeightKg)
	assert.True(t, decimal.NewFromInt(300).Equal(out.Fee), "tarifa %s", out.Fee)

	// Solicitud y cargo persistidos como unidad, espejo de orden enviado.
	assert.Equal(t, 1, h.txRunner.runs)
	require.Len(t, h.paymentRepo.created, 1)
	assert.True(t, out.Fee.Equal(h.paymentRepo.created[0].Amount))
	assert.Equal(t, out.ID, h.paymentRepo.created[0].RequestID)
	require.Len(t, h.orders.created, 1)

	// Una entrada no toca el inventario ni el remoto.
	assert.Zero(t, h.batchRepo.updates)
	assert.Empty(t, h.remote.updateCalls)
	assert.Empty(t, h.txRepo.created)
}

func TestSubmitRequest_PesoDesconocidoCuentaCero(t *testing.T) {
	h := newRequestHarness(t)

	// Producto inexistente: su línea pesa 0, la tarifa cae al bloque mínimo.
	out, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "inbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-fantasma", Quantity: 3}},
		LocationID: "loc-1",
	})
	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(out.TotalWeightKg))
	assert.True(t, decimal.NewFromInt(150).Equal(out.Fee), "peso 0 paga el bloque mínimo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de validación: comerciante -> ubicación -> ítems -> inventario.
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitRequest_SinComerciante(t *testing.T) {
	h := newRequestHarness(t)
	_, err := h.uc.SubmitRequest(context.Background(), "", dto.SubmitRequestRequest{
		Type: "inbound", Items: nil, LocationID: "",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"sin comerciante gana a cualquier otro fallo")
}

func TestSubmitRequest_UbicacionFaltante(t *testing.T) {
	h := newRequestHarness(t)

	// Sin ubicación y con ítems inválidos a la vez: la ubicación se reporta primero.
	_, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "outbound",
		Items:      []dto.RequestItemDTO{{ProductID: "", Quantity: 0}},
		LocationID: "",
	})
	assert.ErrorIs(t, err, domain.ErrMissingLocation)

	// Una ubicación de otro comerciante equivale a no tener ubicación.
	_, err = h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "inbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 1}},
		LocationID: "loc-ajena",
	})
	assert.ErrorIs(t, err, domain.ErrMissingLocation)
}

func TestSubmitRequest_ItemsInvalidos(t *testing.T) {
	h := newRequestHarness(t)

	cases := [][]dto.RequestItemDTO{
		{},
		{{ProductID: "prod-1", Quantity: 0}},
		{{ProductID: "prod-1", Quantity: -1}},
		{{ProductID: "", Quantity: 3}},
	}
	for _, items := range cases {
		_, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
			Type: "inbound", Items: items, LocationID: "loc-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "items %v deben rechazarse", items)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas (outbound)
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmitRequest_OutboundInsuficiente_SinMutaciones(t *testing.T) {
	h := newRequestHarness(t)

	// prod-2 tiene 4 en lote; pedir 5 corta antes de tocar nada, aun cuando
	// prod-1 sí alcanza.
	_, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "outbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 1}, {ProductID: "prod-2", Quantity: 5}},
		LocationID: "loc-1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Empty(t, h.remote.updateCalls, "cero llamadas remotas")
	assert.Empty(t, h.remote.createCalls)
	assert.Zero(t, h.batchRepo.updates, "cero escrituras locales")
	assert.Empty(t, h.txRepo.created)
	assert.Zero(t, h.txRunner.runs, "no se creó solicitud ni cargo")
}

func TestSubmitRequest_OutboundExitoso(t *testing.T) {
	h := newRequestHarness(t)

	out, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "outbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 4}},
		LocationID: "loc-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "loc-1", out.DeliveryLocationID, "outbound llena delivery")
	assert.Empty(t, out.PickupLocationID)

	// Actualización remota: nueva cantidad y lastAdjustment con delta negativo.
	require.Len(t, h.remote.updateCalls, 1)
	patch := h.remote.updateCalls[0]
	require.NotNil(t, patch.Quantity)
	assert.Equal(t, int64(6), *patch.Quantity, "10 - 4 = 6")
	require.NotNil(t, patch.LastAdjustment)
	assert.Equal(t, entity.ReasonOutbound, patch.LastAdjustment.Type)
	assert.Equal(t, int64(-4), patch.LastAdjustment.Quantity)

	// Espejo local + auditoría.
	local, _ := h.batchRepo.GetByID("batch-1")
	assert.Equal(t, int64(6), local.Quantity)
	require.Len(t, h.txRepo.created, 1)
	assert.Equal(t, entity.ReasonOutbound, h.txRepo.created[0].Type)
	assert.Equal(t, int64(-4), h.txRepo.created[0].Quantity)
}

func TestSubmitRequest_OutboundRemotoAusente_CreaYReintenta(t *testing.T) {
	h := newRequestHarness(t)
	h.remote.missing["batch-1"] = true

	out, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "outbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 3}},
		LocationID: "loc-1",
	})
	require.NoError(t, err, "not-found remoto se recupera con create + un reintento")

	assert.Len(t, h.remote.updateCalls, 2, "update original + reintento")
	require.Len(t, h.remote.createCalls, 1)
	assert.Equal(t, int64(7), h.remote.createCalls[0].Quantity,
		"el lote se crea ya descontado")
	assert.Equal(t, entity.RequestStatusPending, out.Status)
}

func TestSubmitRequest_OutboundRemotoFalla(t *testing.T) {
	h := newRequestHarness(t)
	h.remote.updateErr = errors.New("HTTP 500")

	_, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "outbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 1}},
		LocationID: "loc-1",
	})
	require.ErrorIs(t, err, domain.ErrRemoteFailure)
	assert.Zero(t, h.txRunner.runs, "no se crea la solicitud si el remoto falla")
}

func TestSubmitRequest_OutboundParcial_SinCompensacion(t *testing.T) {
	h := newRequestHarness(t)
	// El segundo ítem está ausente en el remoto y además el create falla:
	// el primer ítem ya quedó descontado y no se revierte.
	h.remote.missing["batch-2"] = true
	h.remote.createErr = errors.New("HTTP 500")

	_, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "outbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 2}, {ProductID: "prod-2", Quantity: 1}},
		LocationID: "loc-1",
	})
	require.ErrorIs(t, err, domain.ErrRemoteFailure)

	first, _ := h.batchRepo.GetByID("batch-1")
	assert.Equal(t, int64(8), first.Quantity, "el primer ítem quedó descontado")
	second, _ := h.batchRepo.GetByID("batch-2")
	assert.Equal(t, int64(4), second.Quantity, "el segundo no se tocó")
	assert.Zero(t, h.txRunner.runs, "la solicitud no se creó")
}

func TestSubmitRequest_EspejoDeOrdenNoTumbaLaSolicitud(t *testing.T) {
	h := newRequestHarness(t)
	h.orders.err = errors.New("almacenamiento de órdenes caído")

	out, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "inbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 1}},
		LocationID: "loc-1",
	})
	require.NoError(t, err, "el espejo es best-effort")
	assert.NotNil(t, out)
	assert.Equal(t, 1, h.txRunner.runs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración de solicitudes
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	h := newRequestHarness(t)
	err := h.uc.UpdateStatus(context.Background(), "req-1", "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_SolicitudInexistente(t *testing.T) {
	h := newRequestHarness(t)
	err := h.uc.UpdateStatus(context.Background(), "no-existe", entity.RequestStatusCompleted)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_Exitoso(t *testing.T) {
	h := newRequestHarness(t)

	out, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "inbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 1}},
		LocationID: "loc-1",
	})
	require.NoError(t, err)

	require.NoError(t, h.uc.UpdateStatus(context.Background(), out.ID, entity.RequestStatusCompleted))
	stored, _ := h.requestRepo.GetByID(out.ID)
	assert.Equal(t, entity.RequestStatusCompleted, stored.Status)
}

func TestGetByID_ScopePorComerciante(t *testing.T) {
	h := newRequestHarness(t)

	out, err := h.uc.SubmitRequest(context.Background(), testMerchantID, dto.SubmitRequestRequest{
		Type:       "inbound",
		Items:      []dto.RequestItemDTO{{ProductID: "prod-1", Quantity: 1}},
		LocationID: "loc-1",
	})
	require.NoError(t, err)

	_, err = h.uc.GetByID(context.Background(), otherMerchant, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	req, err := h.uc.GetByID(context.Background(), "", out.ID)
	require.NoError(t, err, "merchantID vacío = acceso admin")
	assert.Equal(t, out.ID, req.ID)
}
