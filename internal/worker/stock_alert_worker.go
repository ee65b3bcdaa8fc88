package worker

// stock_alert_worker.go
// Processes low-stock alert jobs: sends a notification email to the
// configured address through the SMTP circuit breaker.

import (
	"context"
	"encoding/json"
	"fmt"

	"heladosupply/internal/infra"

	"github.com/rs/zerolog/log"
)

// StockAlertPayload is the job envelope sent to QueueStockAlerts.
type StockAlertPayload struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"min_stock"`
}

// StockAlertWorker delivers low-stock emails.
type StockAlertWorker struct {
	mailer     *infra.Mailer
	cb         *infra.CircuitBreaker
	alertEmail string
}

func NewStockAlertWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, alertEmail string) *StockAlertWorker {
	return &StockAlertWorker{mailer: mailer, cb: cb, alertEmail: alertEmail}
}

// Process sends the alert mail. A returned error means the job should be
// retried; a skipped job (no recipient configured) returns nil.
func (w *StockAlertWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload StockAlertPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("stock_alert_worker: invalid payload")
		return nil // malformed jobs are not retryable
	}
	if w.alertEmail == "" {
		log.Warn().Str("product", payload.ProductName).Msg("stock_alert_worker: no alert email configured — skipping")
		return nil
	}

	subject := fmt.Sprintf("Stock bajo: %s", payload.ProductName)
	body := fmt.Sprintf(
		"El producto %q quedó con %d unidades (mínimo configurado: %d).\nReponer stock cuanto antes.",
		payload.ProductName, payload.Stock, payload.MinStock,
	)

	err := w.cb.Execute(func() error {
		return w.mailer.Send(w.alertEmail, subject, body, "")
	})
	if err != nil {
		log.Error().Err(err).Str("product", payload.ProductName).Msg("stock_alert_worker: failed to send alert")
		return err
	}

	log.Info().Str("product", payload.ProductName).Int("stock", payload.Stock).Msg("stock_alert_worker: alert sent")
	return nil
}
