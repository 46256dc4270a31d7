package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Priya8975/board-notify/internal/domain"
	"github.com/Priya8975/board-notify/internal/format"
	"github.com/Priya8975/board-notify/internal/forward"
	"github.com/Priya8975/board-notify/internal/metrics"
	"github.com/Priya8975/board-notify/internal/signature"
	"github.com/google/uuid"
)

// Forwarder delivers a formatted message to the chat endpoint.
type Forwarder interface {
	Forward(ctx context.Context, msg *domain.Message) error
}

// WebhookHandler receives tracker notifications and relays them to chat.
// Each request is processed independently; nothing is stored or retried.
type WebhookHandler struct {
	forwarder Forwarder
	secret    string
	logger    *slog.Logger
}

func NewWebhookHandler(f Forwarder, secret string, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{forwarder: f, secret: secret, logger: logger}
}

// Receive runs the full pipeline for one notification: method check, raw body
// read, signature verification, parse, format, forward.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		metrics.EventsRejected.WithLabelValues("method").Inc()
		respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// The exact bytes are kept for the signature check before any parsing.
	body, err := io.ReadAll(r.Body)
	if err != nil {
		metrics.EventsRejected.WithLabelValues("body_read").Inc()
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	// Verification runs only when both sides of the handshake exist. A
	// deployment without a configured secret accepts unauthenticated posts.
	sig := r.Header.Get("X-Webhook-Signature")
	if sig != "" && h.secret != "" && !signature.Verify(body, sig, h.secret) {
		metrics.EventsRejected.WithLabelValues("signature").Inc()
		respondError(w, http.StatusUnauthorized, "invalid signature")
		return
	}

	var ev domain.Event
	if err := json.Unmarshal(body, &ev); err != nil {
		metrics.EventsRejected.WithLabelValues("parse").Inc()
		respondError(w, http.StatusBadRequest, "invalid event payload")
		return
	}
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}

	msg, err := format.Format(&ev)
	if err != nil {
		metrics.EventsRejected.WithLabelValues("target").Inc()
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.EventsReceived.WithLabelValues(string(ev.Action)).Inc()

	if err := h.forwarder.Forward(r.Context(), msg); err != nil {
		args := []any{
			"error", err,
			"event_id", ev.ID,
			"action", ev.Action,
		}
		var statusErr *forward.StatusError
		if errors.As(err, &statusErr) {
			args = append(args,
				"status_code", statusErr.StatusCode,
				"response_body", statusErr.Body,
			)
		}
		h.logger.Error("forward failed", args...)
		respondError(w, http.StatusBadGateway, "failed to forward message")
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
