package service_test

import (
	"context"
	"testing"

	"heladosupply/internal/dto"
	"heladosupply/internal/model"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"
	"heladosupply/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrderSvc(t *testing.T) (service.OrderService, *repository.Stores) {
	t.Helper()
	stores := repository.NewMemoryStores()
	svc := service.NewOrderService(
		stores.Orders, stores.Products, stores.Customers,
		notify.NewPublisher(nil), nil, t.TempDir(),
	)
	return svc, stores
}

func seedProduct(t *testing.T, stores *repository.Stores, name string, price int64, stock, minStock int) model.Product {
	t.Helper()
	p := model.Product{
		Name:     name,
		Category: "Potes",
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
		MinStock: minStock,
		Unit:     "unidades",
	}
	require.NoError(t, stores.Products.Upsert(context.Background(), &p))
	return p
}

func seedCustomer(t *testing.T, stores *repository.Stores, name string) model.Customer {
	t.Helper()
	c := model.Customer{Name: name, Address: "Av. Siempre Viva 742", Email: "compras@" + "cliente.com"}
	require.NoError(t, stores.Customers.Upsert(context.Background(), &c))
	return c
}

func TestCreateOrder_TotalYDescuentoDeStock(t *testing.T) {
	svc, stores := buildOrderSvc(t)
	p := seedProduct(t, stores, "Pote Térmico 1kg", 150, 500, 100)
	c := seedCustomer(t, stores, "Heladería Delizia")

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: c.ID.String(),
		Items: []dto.OrderItemRequest{
			{ProductID: p.ID.String(), Quantity: 3, PriceAtSale: decimal.NewFromInt(150)},
		},
	})
	require.NoError(t, err)

	// total = 3 × 150 = 450
	assert.Equal(t, "450", resp.Total.String())
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "Heladería Delizia", resp.CustomerName)

	// stock 500 → 497
	stored, err := stores.Products.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 497, stored.Stock)
}

func TestCreateOrder_StockInsuficiente(t *testing.T) {
	svc, stores := buildOrderSvc(t)
	p := seedProduct(t, stores, "Pote Térmico 1kg", 150, 500, 100)

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: "walk-in",
		Items: []dto.OrderItemRequest{
			{ProductID: p.ID.String(), Quantity: 600, PriceAtSale: decimal.NewFromInt(150)},
		},
	})
	require.Error(t, err)

	var insufficient *service.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Pote Térmico 1kg", insufficient.ProductName)
	assert.Equal(t, 500, insufficient.Available)
	assert.Equal(t, 600, insufficient.Requested)

	// Nothing written: no order, stock untouched
	orders, err := stores.Orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
	stored, _ := stores.Products.FindByID(context.Background(), p.ID)
	assert.Equal(t, 500, stored.Stock)
}

func TestCreateOrder_MultiItemFailureDejaStockIntacto(t *testing.T) {
	svc, stores := buildOrderSvc(t)
	ok := seedProduct(t, stores, "Servilletas Blancas", 800, 30, 15)
	scarce := seedProduct(t, stores, "Cucurucho Crocante Grande", 1200, 2, 10)

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: "walk-in",
		Items: []dto.OrderItemRequest{
			{ProductID: ok.ID.String(), Quantity: 5, PriceAtSale: decimal.NewFromInt(800)},
			{ProductID: scarce.ID.String(), Quantity: 10, PriceAtSale: decimal.NewFromInt(1200)},
		},
	})
	var insufficient *service.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Cucurucho Crocante Grande", insufficient.ProductName)

	// The passing line must not have been decremented either
	first, _ := stores.Products.FindByID(context.Background(), ok.ID)
	assert.Equal(t, 30, first.Stock)
	second, _ := stores.Products.FindByID(context.Background(), scarce.ID)
	assert.Equal(t, 2, second.Stock)
}

func TestCreateOrder_ConsumidorFinal(t *testing.T) {
	svc, stores := buildOrderSvc(t)
	p := seedProduct(t, stores, "Cucharitas Color Surtido", 500, 50, 10)

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: "walk-in",
		Items: []dto.OrderItemRequest{
			{ProductID: p.ID.String(), Quantity: 1, PriceAtSale: decimal.NewFromInt(500)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Consumidor Final", resp.CustomerName)
	assert.Equal(t, "walk-in", resp.CustomerID)

	// No customer record was created
	customers, err := stores.Customers.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCreateOrder_ClienteNoEncontrado(t *testing.T) {
	svc, stores := buildOrderSvc(t)
	p := seedProduct(t, stores, "Pote Térmico 1/2kg", 90, 1200, 200)

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: uuid.NewString(),
		Items: []dto.OrderItemRequest{
			{ProductID: p.ID.String(), Quantity: 1, PriceAtSale: decimal.NewFromInt(90)},
		},
	})
	assert.ErrorIs(t, err, service.ErrCustomerNotFound)

	// Stock untouched
	stored, _ := stores.Products.FindByID(context.Background(), p.ID)
	assert.Equal(t, 1200, stored.Stock)
}

func TestCreateOrder_PrecioSnapshotNoSeRefresca(t *testing.T) {
	svc, stores := buildOrderSvc(t)
	p := seedProduct(t, stores, "Pote Térmico 1kg", 150, 100, 10)

	// The cart carries an older price than the catalog
	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		CustomerID: "walk-in",
		Items: []dto.OrderItemRequest{
			{ProductID: p.ID.String(), Quantity: 2, PriceAtSale: decimal.NewFromInt(120)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "240", resp.Total.String())
	assert.Equal(t, "120", resp.Items[0].PriceAtSale.String())
}

func TestGetOrder_NoEncontrado(t *testing.T) {
	svc, _ := buildOrderSvc(t)
	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrOrderNotFound)
}

func TestOrderList_MasRecientePrimero(t *testing.T) {
	svc, stores := buildOrderSvc(t)
	p := seedProduct(t, stores, "Pote Térmico 1kg", 150, 100, 10)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
			CustomerID: "walk-in",
			Items: []dto.OrderItemRequest{
				{ProductID: p.ID.String(), Quantity: 1, PriceAtSale: decimal.NewFromInt(150)},
			},
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	for i := 1; i < len(resp.Data); i++ {
		assert.GreaterOrEqual(t, resp.Data[i-1].Date, resp.Data[i].Date)
	}
}
