package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

type fakeLocationRepo struct {
	created []*entity.Location
}

func (r *fakeLocationRepo) Create(l *entity.Location) error {
	r.created = append(r.created, l)
	return nil
}

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	for _, l := range r.created {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

func (r *fakeLocationRepo) ListByMerchant(merchantID string) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.created {
		if l.MerchantID == merchantID {
			out = append(out, l)
		}
	}
	return out, nil
}

func validLocation() dto.CreateLocationRequest {
	return dto.CreateLocationRequest{
		BuildingNumber: "12-34",
		Location:       "Bodega Norte, Bogotá",
		Pincode:        "110111",
		Phone:          "3001234567",
	}
}

func TestAddLocation_Exitoso(t *testing.T) {
	repo := &fakeLocationRepo{}
	uc := usecase.NewLocationUseCase(repo)

	out, err := uc.Add("m1", validLocation())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "m1", out.MerchantID, "la ubicación queda estampada con el comerciante")
	require.Len(t, repo.created, 1)
}

func TestAddLocation_CamposIncompletos(t *testing.T) {
	uc := usecase.NewLocationUseCase(&fakeLocationRepo{})

	// Cada campo vacío (o solo espacios) rechaza por separado.
	mutations := []func(*dto.CreateLocationRequest){
		func(in *dto.CreateLocationRequest) { in.BuildingNumber = "" },
		func(in *dto.CreateLocationRequest) { in.Location = "   " },
		func(in *dto.CreateLocationRequest) { in.Pincode = "" },
		func(in *dto.CreateLocationRequest) { in.Phone = "\t" },
	}
	for i, mutate := range mutations {
		in := validLocation()
		mutate(&in)
		_, err := uc.Add("m1", in)
		assert.ErrorIs(t, err, domain.ErrIncompleteLocation, "caso %d debe rechazarse", i)
	}
}

func TestAddLocation_SinComerciante(t *testing.T) {
	uc := usecase.NewLocationUseCase(&fakeLocationRepo{})
	_, err := uc.Add("", validLocation())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestListLocations_FiltraPorComerciante(t *testing.T) {
	repo := &fakeLocationRepo{}
	uc := usecase.NewLocationUseCase(repo)

	_, err := uc.Add("m1", validLocation())
	require.NoError(t, err)
	_, err = uc.Add("m2", validLocation())
	require.NoError(t, err)

	list, err := uc.ListForMerchant("m1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "m1", list[0].MerchantID)
}
