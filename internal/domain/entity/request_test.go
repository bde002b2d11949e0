package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

func TestInventoryRequest_LocationID(t *testing.T) {
	inbound := &entity.InventoryRequest{
		Type:             entity.RequestInbound,
		PickupLocationID: "loc-retiro",
	}
	assert.Equal(t, "loc-retiro", inbound.LocationID(),
		"inbound usa la ubicación de retiro")

	outbound := &entity.InventoryRequest{
		Type:               entity.RequestOutbound,
		DeliveryLocationID: "loc-entrega",
	}
	assert.Equal(t, "loc-entrega", outbound.LocationID(),
		"outbound usa la ubicación de entrega")
}

func TestRequestType_Valid(t *testing.T) {
	assert.True(t, entity.RequestInbound.Valid())
	assert.True(t, entity.RequestOutbound.Valid())
	assert.False(t, entity.RequestType("transfer").Valid())
	assert.False(t, entity.RequestType("").Valid())
}
