package transport

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/DanielPopoola/moolah-go/config"
)

type RetryPoster struct {
	inner       Poster
	baseDelay   time.Duration
	maxDelay    time.Duration
	maxAttempts int
	logger      *slog.Logger
}

func NewRetryPoster(inner Poster, cfg config.RetryConfig, logger *slog.Logger) *RetryPoster {
	if logger == nil {
		logger = slog.Default()
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	maxDelay := cfg.MaxDelay
	if maxDelay <= 0 {
		maxDelay = config.DefaultRetryMaxDelay
	}
	return &RetryPoster{
		inner:       inner,
		baseDelay:   cfg.BaseDelay,
		maxDelay:    maxDelay,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// Post retries transport errors and 5xx replies. Other replies, including
// 4xx, are returned on the first attempt. When every attempt ends in a 5xx
// the last response is returned so the caller can inspect it.
func (r *RetryPoster) Post(ctx context.Context, pathWithQuery string, body []byte) (*Response, error) {
	var lastErr error
	var lastResp *Response

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := r.inner.Post(ctx, pathWithQuery, body)
		if err == nil && !isRetryableStatus(resp) {
			return resp, nil
		}

		lastResp, lastErr = resp, err

		if attempt < r.maxAttempts-1 {
			delay := r.backoff(attempt)
			r.logger.Warn("retrying moolah request",
				"attempt", attempt+1,
				"delay", delay,
				"error", err,
			)
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
	}
	return lastResp, nil
}

func isRetryableStatus(resp *Response) bool {
	return resp != nil && resp.StatusCode >= http.StatusInternalServerError
}

// Backoff calculation with exponential delay and jitter, capped at maxDelay
func (r *RetryPoster) backoff(attempt int) time.Duration {
	if r.baseDelay <= 0 {
		return 0
	}

	delay := r.baseDelay
	for i := 0; i < attempt && delay < r.maxDelay; i++ {
		if delay > r.maxDelay/2 {
			delay = r.maxDelay
			break
		}
		delay *= 2
	}

	jitter := time.Duration(rand.Int63n(int64(r.baseDelay)))
	if delay > r.maxDelay-jitter {
		return r.maxDelay
	}
	return delay + jitter
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
