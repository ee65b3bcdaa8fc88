package service_test

import (
	"context"
	"testing"
	"time"

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

func seedFullDataset(t *testing.T, stores *repository.Stores) {
	t.Helper()
	ctx := context.Background()

	p := seedProduct(t, stores, "Pote Térmico 1kg", 150, 500, 100)
	c := seedCustomer(t, stores, "Heladería Delizia")

	order := model.Order{
		ID:           uuid.New(),
		CustomerID:   &c.ID,
		CustomerName: c.Name,
		Date:         time.Now().UTC().Truncate(time.Second),
		Status:       model.OrderStatusCompleted,
		Total:        decimal.NewFromInt(450),
		Items: []model.OrderItem{
			{ID: uuid.New(), ProductID: p.ID, ProductName: p.Name, Quantity: 3, PriceAtSale: decimal.NewFromInt(150)},
		},
	}
	require.NoError(t, stores.Orders.Upsert(ctx, &order))

	require.NoError(t, stores.Providers.Upsert(ctx, &model.Provider{
		Name: "Envases del Sur", Contact: "Marta", Category: "Potes",
	}))
	require.NoError(t, stores.Discounts.Upsert(ctx, &model.Discount{
		Name: "Efectivo", Value: "10%", Active: true, Color: "#00aa55",
	}))
	require.NoError(t, stores.Purchases.Upsert(ctx, &model.Purchase{
		Date: time.Now().UTC().Truncate(time.Second), ProviderName: "Envases del Sur",
		Status: model.PurchasePendiente, Total: decimal.NewFromInt(30000),
	}))
}

func TestBackup_RoundTrip(t *testing.T) {
	source := repository.NewMemoryStores()
	seedFullDataset(t, source)
	pub := notify.NewPublisher(nil)

	exported, err := service.NewBackupService(source, pub).Export(context.Background())
	require.NoError(t, err)
	require.Len(t, exported.Products, 1)
	require.Len(t, exported.Customers, 1)
	require.Len(t, exported.Orders, 1)
	require.Len(t, exported.Providers, 1)
	require.Len(t, exported.Discounts, 1)
	require.Len(t, exported.Purchases, 1)

	// Restore into a fresh store, then export again and compare
	target := repository.NewMemoryStores()
	counts, err := service.NewBackupService(target, pub).Restore(context.Background(), *exported)
	require.NoError(t, err)
	assert.Equal(t, &dto.RestoreResponse{
		Products: 1, Customers: 1, Orders: 1, Providers: 1, Discounts: 1, Purchases: 1,
	}, counts)

	reExported, err := service.NewBackupService(target, pub).Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, exported.Products, reExported.Products)
	assert.Equal(t, exported.Customers, reExported.Customers)
	assert.Equal(t, exported.Providers, reExported.Providers)
	assert.Equal(t, exported.Discounts, reExported.Discounts)
	assert.Equal(t, exported.Purchases, reExported.Purchases)

	require.Len(t, reExported.Orders, 1)
	assert.Equal(t, exported.Orders[0].ID, reExported.Orders[0].ID)
	assert.Equal(t, exported.Orders[0].CustomerID, reExported.Orders[0].CustomerID)
	assert.Equal(t, exported.Orders[0].CustomerName, reExported.Orders[0].CustomerName)
	assert.Equal(t, exported.Orders[0].Total.String(), reExported.Orders[0].Total.String())
	require.Len(t, reExported.Orders[0].Items, 1)
	assert.Equal(t, exported.Orders[0].Items[0].ProductName, reExported.Orders[0].Items[0].ProductName)
	assert.Equal(t, exported.Orders[0].Items[0].Quantity, reExported.Orders[0].Items[0].Quantity)
}

func TestBackup_RestoreReemplazaPorID(t *testing.T) {
	stores := repository.NewMemoryStores()
	p := seedProduct(t, stores, "Pote Térmico 1kg", 150, 500, 100)
	pub := notify.NewPublisher(nil)
	svc := service.NewBackupService(stores, pub)

	// Restore the same product id with an edited name and stock
	doc := dto.BackupDocument{
		Products: []dto.ProductResponse{{
			ID: p.ID.String(), Name: "Pote Térmico 1kg (nuevo)", Category: "Potes",
			Price: decimal.NewFromInt(180), Stock: 350, MinStock: 100, Unit: "unidades",
		}},
	}
	_, err := svc.Restore(context.Background(), doc)
	require.NoError(t, err)

	stored, err := stores.Products.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pote Térmico 1kg (nuevo)", stored.Name)
	assert.Equal(t, 350, stored.Stock)

	// Still exactly one product
	all, _ := stores.Products.List(context.Background())
	assert.Len(t, all, 1)
}
