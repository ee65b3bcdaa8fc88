//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - Full order cycle: create product + customer → create order → stock
//     decremented → order listed
//   - Insufficient stock returns 409 and leaves stock unchanged
//   - Walk-in order carries the "Consumidor Final" label
//   - Backup export / restore round-trip
//   - Dashboard stats reflect the data

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"heladosupply/internal/config"
	"heladosupply/internal/infra"
	"heladosupply/internal/repository"
	"heladosupply/internal/router"
	"heladosupply/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("heladosupply_test"),
		tcPostgres.WithUsername("heladosupply"),
		tcPostgres.WithPassword("heladosupply"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:           8000,
		Env:            "test",
		StoreDriver:    "postgres",
		DatabaseURL:    pgURL,
		RedisURL:       rdURL,
		WorkerPoolSize: 1,
		PDFStoragePath: t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	stores := repository.NewGormStores(db)
	dispatcher := worker.NewDispatcher(rdb)

	testCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)

	r := router.New(testCtx, cfg, db, rdb, stores, dispatcher)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

type productBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

func createProduct(t *testing.T, srv *httptest.Server, name string, price float64, stock int) productBody {
	t.Helper()
	resp := do(t, srv, "POST", "/v1/products", jsonBody(t, map[string]any{
		"name": name, "category": "Potes", "price": price,
		"stock": stock, "min_stock": 10, "unit": "unidades",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p productBody
	decodeJSON(t, resp, &p)
	return p
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullOrderCycle(t *testing.T) {
	srv := setupTestServer(t)

	p := createProduct(t, srv, "Pote Térmico 1kg", 150, 500)

	custResp := do(t, srv, "POST", "/v1/customers", jsonBody(t, map[string]any{
		"name": "Heladería Delizia", "address": "Av. Libertador 1234", "email": "contacto@delizia.com",
	}))
	require.Equal(t, http.StatusCreated, custResp.StatusCode)
	var cust struct {
		ID string `json:"id"`
	}
	decodeJSON(t, custResp, &cust)

	orderResp := do(t, srv, "POST", "/v1/orders", jsonBody(t, map[string]any{
		"customer_id": cust.ID,
		"items": []map[string]any{
			{"product_id": p.ID, "quantity": 3, "price_at_sale": 150},
		},
	}))
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)
	var order struct {
		ID           string `json:"id"`
		CustomerName string `json:"customer_name"`
		Status       string `json:"status"`
		Total        string `json:"total"`
	}
	decodeJSON(t, orderResp, &order)
	assert.Equal(t, "completed", order.Status)
	assert.Equal(t, "Heladería Delizia", order.CustomerName)
	assert.Equal(t, "450", order.Total)

	// Stock 500 → 497
	prodResp := do(t, srv, "GET", "/v1/products/"+p.ID, nil)
	require.Equal(t, http.StatusOK, prodResp.StatusCode)
	var updated productBody
	decodeJSON(t, prodResp, &updated)
	assert.Equal(t, 497, updated.Stock)

	// Listed newest first
	listResp := do(t, srv, "GET", "/v1/orders", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Total int `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	assert.Equal(t, 1, list.Total)
}

func TestE2E_InsufficientStock(t *testing.T) {
	srv := setupTestServer(t)
	p := createProduct(t, srv, "Cucurucho Crocante Grande", 1200, 500)

	orderResp := do(t, srv, "POST", "/v1/orders", jsonBody(t, map[string]any{
		"customer_id": "walk-in",
		"items": []map[string]any{
			{"product_id": p.ID, "quantity": 600, "price_at_sale": 1200},
		},
	}))
	require.Equal(t, http.StatusConflict, orderResp.StatusCode)
	var errBody struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, orderResp, &errBody)
	assert.Contains(t, errBody.Detail, "Cucurucho Crocante Grande")
	assert.Contains(t, errBody.Detail, "500")

	// Stock unchanged, no order stored
	prodResp := do(t, srv, "GET", "/v1/products/"+p.ID, nil)
	var unchanged productBody
	decodeJSON(t, prodResp, &unchanged)
	assert.Equal(t, 500, unchanged.Stock)

	listResp := do(t, srv, "GET", "/v1/orders", nil)
	var list struct {
		Total int `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	assert.Equal(t, 0, list.Total)
}

func TestE2E_WalkInOrder(t *testing.T) {
	srv := setupTestServer(t)
	p := createProduct(t, srv, "Cucharitas Color Surtido", 500, 50)

	orderResp := do(t, srv, "POST", "/v1/orders", jsonBody(t, map[string]any{
		"customer_id": "walk-in",
		"items": []map[string]any{
			{"product_id": p.ID, "quantity": 1, "price_at_sale": 500},
		},
	}))
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)
	var order struct {
		CustomerID   string `json:"customer_id"`
		CustomerName string `json:"customer_name"`
	}
	decodeJSON(t, orderResp, &order)
	assert.Equal(t, "walk-in", order.CustomerID)
	assert.Equal(t, "Consumidor Final", order.CustomerName)
}

func TestE2E_BackupRoundTrip(t *testing.T) {
	srv := setupTestServer(t)
	createProduct(t, srv, "Servilletas Blancas", 800, 30)

	exportResp := do(t, srv, "GET", "/v1/backup", nil)
	require.Equal(t, http.StatusOK, exportResp.StatusCode)
	var doc map[string]json.RawMessage
	decodeJSON(t, exportResp, &doc)
	require.Contains(t, doc, "products")
	require.Contains(t, doc, "orders")

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	restoreResp := do(t, srv, "POST", "/v1/backup/restore", bytes.NewBuffer(raw))
	require.Equal(t, http.StatusOK, restoreResp.StatusCode)
	var counts struct {
		Products int `json:"products"`
	}
	decodeJSON(t, restoreResp, &counts)
	assert.Equal(t, 1, counts.Products)
}

func TestE2E_DashboardStats(t *testing.T) {
	srv := setupTestServer(t)
	p := createProduct(t, srv, "Pote Térmico 1kg", 150, 500)

	orderResp := do(t, srv, "POST", "/v1/orders", jsonBody(t, map[string]any{
		"customer_id": "walk-in",
		"items": []map[string]any{
			{"product_id": p.ID, "quantity": 3, "price_at_sale": 150},
		},
	}))
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)

	statsResp := do(t, srv, "GET", "/v1/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, statsResp.StatusCode)
	var stats struct {
		TotalSales string `json:"total_sales"`
		OrderCount int64  `json:"order_count"`
		TopProduct string `json:"top_product"`
	}
	decodeJSON(t, statsResp, &stats)
	assert.Equal(t, "450", stats.TotalSales)
	assert.Equal(t, int64(1), stats.OrderCount)
	assert.Equal(t, "Pote Térmico 1kg", stats.TopProduct)
}
