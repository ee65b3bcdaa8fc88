package repository_test

import (
	"context"
	"sync"
	"testing"

	"heladosupply/internal/model"
	"heladosupply/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, repo repository.ProductRepository, name string, stock int) model.Product {
	t.Helper()
	p := model.Product{Name: name, Category: "Potes", Price: decimal.NewFromInt(100), Stock: stock, Unit: "unidades"}
	require.NoError(t, repo.Upsert(context.Background(), &p))
	return p
}

func TestMemoryDecrementStock_TodoONada(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	a := newProduct(t, repo, "A", 10)
	b := newProduct(t, repo, "B", 1)

	// B cannot cover its quantity, so A must stay untouched
	insufficient, err := repo.DecrementStockTx(nil, []repository.StockDelta{
		{ProductID: a.ID, Quantity: 5},
		{ProductID: b.ID, Quantity: 3},
	})
	require.NoError(t, err)
	require.NotNil(t, insufficient)
	assert.Equal(t, b.ID, *insufficient)

	storedA, _ := repo.FindByID(context.Background(), a.ID)
	assert.Equal(t, 10, storedA.Stock)
	storedB, _ := repo.FindByID(context.Background(), b.ID)
	assert.Equal(t, 1, storedB.Stock)

	// A valid batch applies every delta
	insufficient, err = repo.DecrementStockTx(nil, []repository.StockDelta{
		{ProductID: a.ID, Quantity: 5},
		{ProductID: b.ID, Quantity: 1},
	})
	require.NoError(t, err)
	assert.Nil(t, insufficient)
	storedA, _ = repo.FindByID(context.Background(), a.ID)
	assert.Equal(t, 5, storedA.Stock)
	storedB, _ = repo.FindByID(context.Background(), b.ID)
	assert.Equal(t, 0, storedB.Stock)
}

func TestMemoryDecrementStock_ConcurrenteNuncaNegativo(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	p := newProduct(t, repo, "Pote Térmico 1kg", 50)

	// 100 goroutines each try to take 1 unit; only 50 can win
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			insufficient, err := repo.DecrementStockTx(nil, []repository.StockDelta{
				{ProductID: p.ID, Quantity: 1},
			})
			if err == nil && insufficient == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, wins)
	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)
}

func TestMemoryUpsert_GeneraIDYReemplaza(t *testing.T) {
	repo := repository.NewMemoryCustomerRepository()
	c := model.Customer{Name: "Gelato Artesanal"}
	require.NoError(t, repo.Upsert(context.Background(), &c))
	require.NotEqual(t, [16]byte{}, [16]byte(c.ID))

	c.Name = "Gelato Artesanal SA"
	require.NoError(t, repo.Upsert(context.Background(), &c))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Gelato Artesanal SA", all[0].Name)
}

func TestMemoryList_OrdenPorNombre(t *testing.T) {
	repo := repository.NewMemoryProductRepository()
	newProduct(t, repo, "Servilletas", 1)
	newProduct(t, repo, "Cucuruchos", 1)
	newProduct(t, repo, "Potes", 1)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Cucuruchos", all[0].Name)
	assert.Equal(t, "Potes", all[1].Name)
	assert.Equal(t, "Servilletas", all[2].Name)
}

func TestMemoryDelete_Inexistente(t *testing.T) {
	repo := repository.NewMemoryDiscountRepository()
	d := model.Discount{Name: "Efectivo", Value: "10%"}
	require.NoError(t, repo.Upsert(context.Background(), &d))

	// Deleting an unknown id is a no-op, matching SQL DELETE semantics
	require.NoError(t, repo.Delete(context.Background(), d.ID))
	require.NoError(t, repo.Delete(context.Background(), d.ID))

	all, _ := repo.List(context.Background())
	assert.Empty(t, all)
}
