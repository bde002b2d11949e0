package inventory

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ReceiptItem línea de la solicitud enriquecida con el nombre del producto
// para el comprobante.
type ReceiptItem struct {
	ProductName string
	Quantity    int64
}

// ReceiptPDFGenerator puerto hacia la generación del comprobante en PDF.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, req *entity.InventoryRequest, merchantName string, items []ReceiptItem) ([]byte, error)
}

// ReceiptUseCase genera el comprobante PDF de una solicitud.
type ReceiptUseCase struct {
	requestRepo repository.RequestRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	requestRepo repository.RequestRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		requestRepo: requestRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		generator:   generator,
	}
}

// GenerateReceipt arma los datos del comprobante y delega al generador.
// Solo el comerciante dueño de la solicitud puede descargarla.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, merchantID, requestID string) ([]byte, error) {
	req, err := uc.requestRepo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	if req.MerchantID != merchantID {
		return nil, domain.ErrForbidden
	}

	merchantName := merchantID
	if user, err := uc.userRepo.GetByMerchantID(merchantID); err == nil && user != nil {
		merchantName = user.Name
	}

	items := make([]ReceiptItem, 0, len(req.Items))
	for _, it := range req.Items {
		name := it.ProductID
		if product, err := uc.productRepo.GetByID(it.ProductID); err == nil && product != nil {
			name = product.Name
		}
		items = append(items, ReceiptItem{ProductName: name, Quantity: it.Quantity})
	}

	return uc.generator.GenerateReceiptPDF(ctx, req, merchantName, items)
}
