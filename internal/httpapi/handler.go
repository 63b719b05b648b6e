// Package httpapi serves the calculator over a plain REST JSON API.
//
// Every route takes a JSON document in the body and answers with JSON:
//
//	POST /balance/calculate     transfers -> balances
//	POST /transaction/minimize  balances  -> settlement
//	POST /transaction/settle    transfers -> settlement of their balances
//	POST /expense/split         expense   -> transfers
//	GET  /healthz
package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/metrics"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/internal/models"
)

// DefaultMaxBodyBytes caps the size of a request body.
const DefaultMaxBodyBytes = 10 << 20

// Handler exposes the calculator engine over HTTP.
type Handler struct {
	engine       *calculator.Engine
	metrics      *metrics.Metrics
	maxBodyBytes int64
}

// NewHandler creates a Handler. m may be nil.
func NewHandler(engine *calculator.Engine, m *metrics.Metrics) *Handler {
	return &Handler{engine: engine, metrics: m, maxBodyBytes: DefaultMaxBodyBytes}
}

// Register adds the API routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /balance/calculate", h.handle("CalculateBalances", h.calculateBalances))
	mux.HandleFunc("POST /transaction/minimize", h.handle("MinimizeTransfers", h.minimizeTransfers))
	mux.HandleFunc("POST /transaction/settle", h.handle("SettleTransfers", h.settleTransfers))
	mux.HandleFunc("POST /expense/split", h.handle("SplitExpense", h.splitExpense))
	mux.HandleFunc("GET /healthz", healthz)
}

// apiFunc handles a decoded request and returns the value to encode.
type apiFunc func(r *http.Request) (any, error)

func (h *Handler) handle(operation string, fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := middleware.GetRequestID(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

		status := http.StatusOK
		result, err := fn(r)
		if err != nil {
			status = statusFor(err)
			if status >= http.StatusInternalServerError {
				slog.Error(operation+" failed", "error", err, "request_id", requestID)
			} else {
				slog.Warn(operation+" rejected", "error", err, "request_id", requestID)
			}
			http.Error(w, err.Error(), status)
		} else {
			writeJSON(w, status, result)
		}

		h.metrics.ObserveRequest(metrics.SurfaceHTTP, operation, strconv.Itoa(status), time.Since(start))
	}
}

func (h *Handler) calculateBalances(r *http.Request) (any, error) {
	var transfers []models.Transfer
	if err := decode(r, &transfers); err != nil {
		return nil, err
	}
	if transfers == nil {
		return nil, ErrNullBody
	}

	slog.Info("CalculateBalances request received", "transfers_count", len(transfers))

	balances, err := h.engine.Balances(r.Context(), transfers)
	if err != nil {
		return nil, err
	}

	slog.Info("CalculateBalances successful", "balances_count", len(balances))
	return balances, nil
}

func (h *Handler) minimizeTransfers(r *http.Request) (any, error) {
	var balances []models.Balance
	if err := decode(r, &balances); err != nil {
		return nil, err
	}
	if balances == nil {
		return nil, ErrNullBody
	}

	slog.Info("MinimizeTransfers request received", "balances_count", len(balances))

	settlement := h.engine.Minimize(balances)
	h.metrics.ObserveSettlement(len(settlement.Transfers))
	if !settlement.IsSettled() {
		slog.Warn("MinimizeTransfers left residual balances", "balances_count", len(balances))
	}

	slog.Info("MinimizeTransfers successful", "transfers_count", len(settlement.Transfers))
	return settlement, nil
}

func (h *Handler) settleTransfers(r *http.Request) (any, error) {
	var transfers []models.Transfer
	if err := decode(r, &transfers); err != nil {
		return nil, err
	}
	if transfers == nil {
		return nil, ErrNullBody
	}

	slog.Info("SettleTransfers request received", "transfers_count", len(transfers))

	_, settlement, err := h.engine.Settle(r.Context(), transfers)
	if err != nil {
		return nil, err
	}
	h.metrics.ObserveSettlement(len(settlement.Transfers))

	slog.Info("SettleTransfers successful", "transfers_count", len(settlement.Transfers))
	return settlement, nil
}

func (h *Handler) splitExpense(r *http.Request) (any, error) {
	var expense *models.Expense
	if err := decode(r, &expense); err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrNullBody
	}

	slog.Info("SplitExpense request received",
		"payer", expense.Payer,
		"participants_count", len(expense.Participants),
		"items_count", len(expense.Items),
	)

	transfers, err := h.engine.Split(*expense)
	if err != nil {
		return nil, err
	}

	slog.Info("SplitExpense successful", "transfers_count", len(transfers))
	return transfers, nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode checks the content type and unmarshals the request body into v.
func decode(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return ErrInvalidContentType
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("failed to read body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return fmt.Errorf("%w: empty body", ErrMalformedBody)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidContentType),
		errors.Is(err, ErrNullBody),
		errors.Is(err, ErrMalformedBody),
		errors.Is(err, calculator.ErrMissingPayer),
		errors.Is(err, calculator.ErrNoParticipants),
		errors.Is(err, calculator.ErrZeroSubtotal):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
