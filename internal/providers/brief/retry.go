package brief

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"modcon/internal/domain"
)

const defaultBackoff = 750 * time.Millisecond

var (
	agentRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modcon_agent_requests_total",
		Help: "Brief agent upstream calls by provider and outcome.",
	}, []string{"provider", "result"})
	agentRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modcon_agent_retries_total",
		Help: "Brief agent retries by provider.",
	}, []string{"provider"})
)

var retryableStatus = map[int]bool{
	http.StatusRequestTimeout:      true,
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// poster sends JSON payloads, retrying transient upstream failures with exponential backoff.
type poster struct {
	provider   string
	client     *http.Client
	maxRetries int
	backoff    time.Duration
	sleep      func(ctx context.Context, d time.Duration) error
}

func (p *poster) post(ctx context.Context, url string, payload any, headers map[string]string) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	for attempt := 0; ; attempt++ {
		raw, status, retryable, err := p.once(ctx, url, body, headers)
		if err == nil {
			agentRequests.WithLabelValues(p.provider, "ok").Inc()
			return raw, nil
		}
		if !retryable || attempt >= p.maxRetries || ctx.Err() != nil {
			agentRequests.WithLabelValues(p.provider, "error").Inc()
			if status != 0 {
				return nil, fmt.Errorf("%w: API error %d: %s", domain.ErrProviderFailure, status, raw)
			}
			return nil, fmt.Errorf("%w: Request failed: %v", domain.ErrProviderFailure, err)
		}
		agentRetries.WithLabelValues(p.provider).Inc()
		if err := p.sleep(ctx, p.backoff<<attempt); err != nil {
			return nil, fmt.Errorf("%w: Request failed: %v", domain.ErrProviderFailure, err)
		}
	}
}

// once performs a single request. A non-zero status means the upstream
// answered with an error. Only transport failures and retryableStatus codes
// are worth another attempt; a request that cannot be built or read is not.
func (p *poster) once(ctx context.Context, url string, body []byte, headers map[string]string) ([]byte, int, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, 0, true, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, false, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return raw, resp.StatusCode, retryableStatus[resp.StatusCode], errors.New(http.StatusText(resp.StatusCode))
	}
	return raw, 0, false, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
