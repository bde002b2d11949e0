package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// LocationUseCase registro de ubicaciones de recogida/entrega por comerciante.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Add valida que los cuatro campos vengan no vacíos, estampa el comerciante y
// persiste.
func (uc *LocationUseCase) Add(merchantID string, in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	if merchantID == "" {
		return nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(in.BuildingNumber) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.Pincode) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return nil, domain.ErrIncompleteLocation
	}
	location := &entity.Location{
		ID:             uuid.New().String(),
		BuildingNumber: strings.TrimSpace(in.BuildingNumber),
		Location:       strings.TrimSpace(in.Location),
		Pincode:        strings.TrimSpace(in.Pincode),
		Phone:          strings.TrimSpace(in.Phone),
		MerchantID:     merchantID,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// ListForMerchant filtra por comerciante preservando el orden almacenado.
func (uc *LocationUseCase) ListForMerchant(merchantID string) ([]dto.LocationResponse, error) {
	if merchantID == "" {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListByMerchant(merchantID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	if l == nil {
		return nil
	}
	return &dto.LocationResponse{
		ID:             l.ID,
		BuildingNumber: l.BuildingNumber,
		Location:       l.Location,
		Pincode:        l.Pincode,
		Phone:          l.Phone,
		MerchantID:     l.MerchantID,
		CreatedAt:      l.CreatedAt,
	}
}
