package service_test

import (
	"context"
	"testing"

	"heladosupply/internal/dto"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"
	"heladosupply/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCustomer_DejaPedidosIntactos(t *testing.T) {
	orderSvc, stores := buildOrderSvc(t)
	customerSvc := service.NewCustomerService(stores.Customers, notify.NewPublisher(nil))

	p := seedProduct(t, stores, "Pote Térmico 1kg", 150, 500, 100)
	c := seedCustomer(t, stores, "Heladería Delizia")

	resp, err := orderSvc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: c.ID.String(),
		Items: []dto.OrderItemRequest{
			{ProductID: p.ID.String(), Quantity: 3, PriceAtSale: decimal.NewFromInt(150)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, customerSvc.Delete(context.Background(), c.ID))

	// The customer is gone but the historical order keeps its data
	customers, _ := stores.Customers.List(context.Background())
	assert.Empty(t, customers)

	stored, err := orderSvc.Get(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, c.ID.String(), stored.CustomerID)
	assert.Equal(t, "Heladería Delizia", stored.CustomerName)
	assert.Equal(t, "450", stored.Total.String())
}

func TestCustomerUpsert_CreaYActualiza(t *testing.T) {
	stores := repository.NewMemoryStores()
	svc := service.NewCustomerService(stores.Customers, notify.NewPublisher(nil))

	created, err := svc.Upsert(context.Background(), dto.UpsertCustomerRequest{
		Name: "Ice Cream Joy", Address: "Calle 50 Nro 400", Email: "manager@joy.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updated, err := svc.Upsert(context.Background(), dto.UpsertCustomerRequest{
		ID: created.ID, Name: "Ice Cream Joy SRL", Address: "Calle 50 Nro 400", Email: "manager@joy.com",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	all, _ := svc.List(context.Background())
	require.Len(t, all, 1)
	assert.Equal(t, "Ice Cream Joy SRL", all[0].Name)
}
