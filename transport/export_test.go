package transport

import "time"

func (r *RetryPoster) Backoff(attempt int) time.Duration {
	return r.backoff(attempt)
}
