package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"heladosupply/internal/dto"
	"heladosupply/internal/infra"
	"heladosupply/internal/model"
	"heladosupply/internal/notify"
	"heladosupply/internal/repository"
	"heladosupply/internal/worker"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalkInCustomerID is the sentinel the presentation layer sends for orders
// without a registered customer.
const WalkInCustomerID = "walk-in"

var (
	ErrCustomerNotFound = errors.New("Cliente no encontrado")
	ErrOrderNotFound    = errors.New("Pedido no encontrado")
)

// InsufficientStockError reports which product could not cover the requested
// quantity. Available reflects the stock at the time of failure.
type InsufficientStockError struct {
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Stock insuficiente para %q: disponible %d, solicitado %d",
		e.ProductName, e.Available, e.Requested)
}

type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	List(ctx context.Context) (*dto.OrderListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error)
	// Receipt renders the order note PDF and returns its file path.
	Receipt(ctx context.Context, id uuid.UUID) (string, error)
}

type orderService struct {
	orders     repository.OrderRepository
	products   repository.ProductRepository
	customers  repository.CustomerRepository
	publisher  *notify.Publisher
	dispatcher *worker.Dispatcher
	pdfPath    string
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	publisher *notify.Publisher,
	dispatcher *worker.Dispatcher,
	pdfPath string,
) OrderService {
	return &orderService{
		orders:     orders,
		products:   products,
		customers:  customers,
		publisher:  publisher,
		dispatcher: dispatcher,
		pdfPath:    pdfPath,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (memory driver / unit tests).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Create ────────────────────────────────────────────────────────────────────
// Order creation:
//   1. Pre-flight: resolve products, check requested quantities against live
//      stock, resolve the customer.
//   2. Total = Σ quantity × priceAtSale, prices taken from the request
//      snapshot (never re-fetched).
//   3. TX: conditionally decrement stock (stock >= qty guard per item, all or
//      nothing), then insert order + items. Decrement runs first so the
//      memory driver, which has no rollback, never stores a partial order.
//   4. Post-commit, best effort: change event + low-stock alert jobs.

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	type resolvedItem struct {
		product model.Product
		qty     int
		price   decimal.Decimal
	}

	// 1. Resolve products, pre-check stock
	resolved := make([]resolvedItem, 0, len(req.Items))
	total := decimal.Zero
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product_id inválido: %w", err)
		}
		p, err := s.products.FindByID(ctx, pid)
		if err != nil {
			return nil, fmt.Errorf("Producto %s no encontrado", item.ProductID)
		}
		if p.Stock < item.Quantity {
			return nil, &InsufficientStockError{
				ProductName: p.Name,
				Available:   p.Stock,
				Requested:   item.Quantity,
			}
		}
		total = total.Add(item.PriceAtSale.Mul(decimal.NewFromInt(int64(item.Quantity))))
		resolved = append(resolved, resolvedItem{product: *p, qty: item.Quantity, price: item.PriceAtSale})
	}

	// 2. Resolve customer — "walk-in" (or empty) means no linked record
	var customerID *uuid.UUID
	customerName := model.WalkInCustomerName
	if req.CustomerID != "" && req.CustomerID != WalkInCustomerID {
		cid, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("customer_id inválido: %w", err)
		}
		c, err := s.customers.FindByID(ctx, cid)
		if err != nil {
			return nil, ErrCustomerNotFound
		}
		customerID = &c.ID
		customerName = c.Name
	}

	// 3. Transaction: decrement stock, then persist the order
	order := model.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		CustomerName: customerName,
		Date:         time.Now().UTC(),
		Status:       model.OrderStatusCompleted,
		Total:        total,
	}
	for _, r := range resolved {
		order.Items = append(order.Items, model.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   r.product.ID,
			ProductName: r.product.Name,
			Quantity:    r.qty,
			PriceAtSale: r.price,
		})
	}

	deltas := make([]repository.StockDelta, 0, len(resolved))
	for _, r := range resolved {
		deltas = append(deltas, repository.StockDelta{ProductID: r.product.ID, Quantity: r.qty})
	}

	txErr := runTx(ctx, s.orders.DB(), func(tx *gorm.DB) error {
		insufficient, err := s.products.DecrementStockTx(tx, deltas)
		if err != nil {
			return err
		}
		if insufficient != nil {
			// Concurrent sale drained the stock between pre-check and
			// decrement; re-read for the current availability.
			requested := 0
			for _, r := range resolved {
				if r.product.ID == *insufficient {
					requested = r.qty
					break
				}
			}
			name, available := insufficient.String(), 0
			if p, ferr := s.products.FindByID(ctx, *insufficient); ferr == nil {
				name, available = p.Name, p.Stock
			}
			return &InsufficientStockError{ProductName: name, Available: available, Requested: requested}
		}
		return s.orders.CreateTx(ctx, tx, &order)
	})
	if txErr != nil {
		return nil, txErr
	}

	// 4. Best-effort side effects after commit
	s.publisher.Publish(ctx, notify.CollectionOrders, notify.CollectionProducts)
	if s.dispatcher != nil {
		for _, r := range resolved {
			remaining := r.product.Stock - r.qty
			if remaining <= r.product.MinStock {
				_ = s.dispatcher.EnqueueStockAlert(ctx, worker.StockAlertPayload{
					ProductID:   r.product.ID.String(),
					ProductName: r.product.Name,
					Stock:       remaining,
					MinStock:    r.product.MinStock,
				})
			}
		}
	}

	return orderToResponse(&order), nil
}

func (s *orderService) List(ctx context.Context) (*dto.OrderListResponse, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		data = append(data, *orderToResponse(&orders[i]))
	}
	return &dto.OrderListResponse{Data: data, Total: len(data)}, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return orderToResponse(order), nil
}

func (s *orderService) Receipt(ctx context.Context, id uuid.UUID) (string, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return "", ErrOrderNotFound
	}
	return infra.GenerateOrderPDF(order, s.pdfPath)
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			PriceAtSale: item.PriceAtSale,
		})
	}
	customerID := WalkInCustomerID
	if o.CustomerID != nil {
		customerID = o.CustomerID.String()
	}
	return &dto.OrderResponse{
		ID:           o.ID.String(),
		CustomerID:   customerID,
		CustomerName: o.CustomerName,
		Date:         o.Date.Format(time.RFC3339),
		Status:       o.Status,
		Total:        o.Total,
		Items:        items,
	}
}
