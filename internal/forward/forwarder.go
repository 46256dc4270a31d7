package forward

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Priya8975/board-notify/internal/domain"
	"github.com/Priya8975/board-notify/internal/metrics"
)

// StatusError is returned when the chat endpoint answers with a non-2xx
// status. It carries the downstream detail for diagnostic logging.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("destination returned status %d: %s", e.StatusCode, e.Body)
}

// Forwarder posts formatted messages to the chat webhook endpoint.
type Forwarder struct {
	httpClient *http.Client
	webhookURL string
	logger     *slog.Logger
}

// New creates a forwarder with a configured HTTP client.
func New(webhookURL string, timeout time.Duration, logger *slog.Logger) *Forwarder {
	return &Forwarder{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		webhookURL: webhookURL,
		logger:     logger,
	}
}

// Forward sends the message as a JSON POST. Exactly one attempt is made; any
// transport fault or non-2xx response is an error and nothing is retried.
func (f *Forwarder) Forward(ctx context.Context, msg *domain.Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := f.httpClient.Do(req)
	if err != nil {
		metrics.ForwardsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("forward request: %w", err)
	}
	defer resp.Body.Close()

	// Read response body (limit to 1KB to prevent memory issues)
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	elapsed := time.Since(start).Milliseconds()
	metrics.ForwardDuration.Observe(float64(elapsed))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ForwardsTotal.WithLabelValues("failed").Inc()
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	metrics.ForwardsTotal.WithLabelValues("success").Inc()
	f.logger.Debug("forward successful",
		"status_code", resp.StatusCode,
		"response_time_ms", elapsed,
	)
	return nil
}
