package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/DanielPopoola/moolah-go/config"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

type RestyPoster struct {
	client *resty.Client
	logger *slog.Logger
}

func NewRestyPoster(cfg config.Config, logger *slog.Logger) *RestyPoster {
	if logger == nil {
		logger = slog.Default()
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetLogger(NewRestyLogger(logger)).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &RestyPoster{
		client: client,
		logger: logger,
	}
}

// NewRestyPosterWithClient wraps an already configured resty client, e.g. one
// sharing a transport with the rest of the application.
func NewRestyPosterWithClient(client *resty.Client, logger *slog.Logger) *RestyPoster {
	if client == nil {
		panic("resty client instance is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RestyPoster{client: client, logger: logger}
}

func (p *RestyPoster) Post(ctx context.Context, pathWithQuery string, body []byte) (*Response, error) {
	requestID := uuid.NewString()

	req := p.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if len(body) > 0 {
		req.SetBody(body)
	}

	resp, err := req.Post(pathWithQuery)
	if err != nil {
		err = stripQuery(err)
		p.logger.Debug("moolah request failed",
			"request_id", requestID,
			"error", err,
		)
		return nil, fmt.Errorf("error making request: %w", err)
	}

	p.logger.Debug("moolah request completed",
		"request_id", requestID,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
	)

	header := resp.Header()
	if header == nil {
		header = http.Header{}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     header,
		Body:       resp.Body(),
	}, nil
}

// stripQuery drops the query string, which carries the API credentials, from
// the URL embedded in a net/http error. The error chain is otherwise kept.
func stripQuery(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL, _, _ = strings.Cut(urlErr.URL, "?")
	}
	return err
}
