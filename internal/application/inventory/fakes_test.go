package inventory_test

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/bodega-api/internal/application/inventory"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
	"github.com/jhoicas/bodega-api/pkg/logger"
)

// testLogger logger silencioso para los tests.
func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

// Fakes en memoria de los puertos de dominio para los tests de casos de uso.

type fakeBatchRepo struct {
	batches map[string]*entity.InventoryBatch
	updates int
}

func newFakeBatchRepo(batches ...*entity.InventoryBatch) *fakeBatchRepo {
	m := make(map[string]*entity.InventoryBatch)
	for _, b := range batches {
		m[b.ID] = b
	}
	return &fakeBatchRepo{batches: m}
}

func (r *fakeBatchRepo) Create(b *entity.InventoryBatch) error {
	r.batches[b.ID] = b
	return nil
}

func (r *fakeBatchRepo) GetByID(id string) (*entity.InventoryBatch, error) {
	return r.batches[id], nil
}

func (r *fakeBatchRepo) GetByMerchantAndProduct(merchantID, productID string) (*entity.InventoryBatch, error) {
	for _, b := range r.batches {
		if b.MerchantID == merchantID && b.ProductID == productID {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBatchRepo) ListByMerchant(merchantID string) ([]*entity.InventoryBatch, error) {
	var out []*entity.InventoryBatch
	for _, b := range r.batches {
		if b.MerchantID == merchantID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) Update(b *entity.InventoryBatch) error {
	r.updates++
	r.batches[b.ID] = b
	return nil
}

type fakeTxRepo struct {
	created []*entity.Transaction
}

func (r *fakeTxRepo) Create(tx *entity.Transaction) error {
	r.created = append(r.created, tx)
	return nil
}

func (r *fakeTxRepo) ListByMerchant(merchantID string, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.created {
		if tx.MerchantID == merchantID {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (r *fakeTxRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.created {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) ListByMerchant(merchantID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.MerchantID == merchantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func newFakeLocationRepo(locations ...*entity.Location) *fakeLocationRepo {
	m := make(map[string]*entity.Location)
	for _, l := range locations {
		m[l.ID] = l
	}
	return &fakeLocationRepo{locations: m}
}

func (r *fakeLocationRepo) Create(l *entity.Location) error {
	r.locations[l.ID] = l
	return nil
}

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return r.locations[id], nil
}

func (r *fakeLocationRepo) ListByMerchant(merchantID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.locations {
		if l.MerchantID == merchantID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeRequestRepo struct {
	requests  map[string]*entity.InventoryRequest
	createErr error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*entity.InventoryRequest)}
}

func (r *fakeRequestRepo) Create(req *entity.InventoryRequest) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.requests[req.ID] = req
	return nil
}

func (r *fakeRequestRepo) GetByID(id string) (*entity.InventoryRequest, error) {
	return r.requests[id], nil
}

func (r *fakeRequestRepo) ListByMerchant(merchantID string, limit, offset int) ([]*entity.InventoryRequest, error) {
	var out []*entity.InventoryRequest
	for _, req := range r.requests {
		if req.MerchantID == merchantID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListAll(limit, offset int) ([]*entity.InventoryRequest, error) {
	var out []*entity.InventoryRequest
	for _, req := range r.requests {
		out = append(out, req)
	}
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatus(id, status string) error {
	req, ok := r.requests[id]
	if !ok {
		return errors.New("no existe")
	}
	req.Status = status
	return nil
}

type fakePaymentRepo struct {
	created []*entity.Payment
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error {
	r.created = append(r.created, p)
	return nil
}

func (r *fakePaymentRepo) ListByMerchant(merchantID string, limit, offset int) ([]*entity.Payment, error) {
	return r.created, nil
}

func (r *fakePaymentRepo) SummarizeByMerchant() ([]*entity.PaymentSummary, error) {
	return nil, nil
}

// fakeTxRunner ejecuta la función con los repos del test, sin transacción real.
type fakeTxRunner struct {
	requestRepo *fakeRequestRepo
	paymentRepo *fakePaymentRepo
	runs        int
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	requestRepo repository.RequestRepository,
	paymentRepo repository.PaymentRepository,
) error) error {
	r.runs++
	return fn(r.requestRepo, r.paymentRepo)
}

// fakeRemoteClient guion programable del servicio remoto de inventario.
type fakeRemoteClient struct {
	updateCalls []inventory.BatchPatch
	createCalls []*entity.InventoryBatch

	// missing marca lotes ausentes en el remoto: el primer UpdateBatch de ese
	// ID responde not-found; tras CreateBatch el reintento pasa.
	missing map[string]bool
	// updateErr falla todos los UpdateBatch; createErr falla los CreateBatch.
	updateErr error
	createErr error
}

func newFakeRemoteClient() *fakeRemoteClient {
	return &fakeRemoteClient{missing: make(map[string]bool)}
}

func (c *fakeRemoteClient) UpdateBatch(ctx context.Context, batchID string, patch inventory.BatchPatch) error {
	c.updateCalls = append(c.updateCalls, patch)
	if c.missing[batchID] {
		return inventory.ErrRemoteNotFound
	}
	return c.updateErr
}

func (c *fakeRemoteClient) CreateBatch(ctx context.Context, batch *entity.InventoryBatch) error {
	c.createCalls = append(c.createCalls, batch)
	if c.createErr != nil {
		return c.createErr
	}
	delete(c.missing, batch.ID)
	return nil
}

// fakeOrderClient espejo de órdenes programable.
type fakeOrderClient struct {
	created []*entity.InventoryRequest
	err     error
}

func (c *fakeOrderClient) CreateOrder(ctx context.Context, req *entity.InventoryRequest) error {
	if c.err != nil {
		return c.err
	}
	c.created = append(c.created, req)
	return nil
}

func (c *fakeOrderClient) ListOrders(ctx context.Context, merchantID string) ([]*entity.InventoryRequest, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.created, nil
}
