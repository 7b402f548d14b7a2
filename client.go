// Package moolah is a client for the Moolah cryptocurrency payment API.
//
// A Client creates payment transactions and queries their status:
//
//	cfg, err := config.LoadConfig()
//	...
//	client, err := moolah.NewClient(*cfg, moolah.WithIPN("https://shop.example/ipn"))
//	...
//	resp, err := client.CreateTransaction(ctx, moolah.TransactionRequest{
//		Coin:     "dogecoin",
//		Amount:   "20",
//		Currency: "USD",
//		Product:  "Coingecko Pro",
//	})
//
// A transaction the remote side rejects is not an error: resp.Status is
// "failure" and resp.Payment is nil.
package moolah

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/moolah-go/config"
	"github.com/DanielPopoola/moolah-go/internal/querystring"
	"github.com/DanielPopoola/moolah-go/transport"
	"github.com/go-resty/resty/v2"
)

const (
	CreatePath = "/private/merchant/create"
	StatusPath = "/private/merchant/status"
)

type Client struct {
	apiKey    string
	apiSecret string
	ipn       string
	poster    transport.Poster
	resty     *resty.Client
	logger    *slog.Logger
}

type Option func(*Client)

// WithAPISecret overrides cfg.APISecret for this client.
func WithAPISecret(secret string) Option {
	return func(c *Client) {
		c.apiSecret = secret
	}
}

// WithIPN overrides cfg.IPN for this client.
func WithIPN(url string) Option {
	return func(c *Client) {
		c.ipn = url
	}
}

// WithPoster replaces the default resty transport.
func WithPoster(p transport.Poster) Option {
	return func(c *Client) {
		c.poster = p
	}
}

// WithRestyClient sends requests through an application's own resty client
// instead of one built from cfg. The client keeps its base URL, timeout and
// headers; retries from cfg.Retry still apply. WithPoster takes precedence.
func WithRestyClient(client *resty.Client) Option {
	return func(c *Client) {
		c.resty = client
	}
}

// WithLogger overrides the logger built from cfg.Logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient copies the credentials out of cfg; later changes to cfg do not
// reach the client. It fails with MISSING_CREDENTIAL before doing anything
// else when cfg.APIKey is empty.
func NewClient(cfg config.Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, NewMissingCredentialError()
	}

	c := &Client{
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		ipn:       cfg.IPN,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = cfg.Logger.NewLogger()
	}
	if c.poster == nil {
		var poster transport.Poster
		if c.resty != nil {
			poster = transport.NewRestyPosterWithClient(c.resty, c.logger)
		} else {
			poster = transport.NewRestyPoster(cfg, c.logger)
		}
		if cfg.Retry.MaxAttempts > 1 {
			poster = transport.NewRetryPoster(poster, cfg.Retry, c.logger)
		}
		c.poster = poster
	}

	return c, nil
}

func (c *Client) APISecret() string {
	return c.apiSecret
}

func (c *Client) IPN() string {
	return c.ipn
}

func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// CreateTransaction validates req, posts it to Moolah and decodes the reply.
// Validation failures are returned before any request is sent.
func (c *Client) CreateTransaction(ctx context.Context, req TransactionRequest) (*TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	target := querystring.Build(CreatePath, req.Params(), querystring.Credentials{
		APIKey:    c.apiKey,
		APISecret: c.apiSecret,
		IPN:       c.ipn,
	})

	body, err := c.post(ctx, CreatePath, target)
	if err != nil {
		return nil, err
	}

	resp, err := DecodeTransactionResponse(string(body))
	if err != nil {
		c.logger.Error("failed to decode transaction response", "error", err)
		return nil, err
	}

	c.logger.Debug("transaction created",
		"status", resp.Status,
		"coin", req.Coin,
	)
	return resp, nil
}

// CreateTransactionWith fills a zero TransactionRequest through build and
// then behaves like CreateTransaction.
func (c *Client) CreateTransactionWith(ctx context.Context, build func(t *TransactionRequest)) (*TransactionResponse, error) {
	req, err := BuildTransactionRequest(build)
	if err != nil {
		return nil, err
	}
	return c.CreateTransaction(ctx, req)
}

// QueryTransaction looks up a transaction by GUID and returns the reply as a
// generic tree, e.g. result.Get("transaction", "tx", "amount").
func (c *Client) QueryTransaction(ctx context.Context, req QueryRequest) (QueryResult, error) {
	if err := req.Validate(); err != nil {
		return QueryResult{}, err
	}

	target := querystring.Build(StatusPath, req.Params(), querystring.Credentials{
		APIKey:    c.apiKey,
		APISecret: c.apiSecret,
	})

	body, err := c.post(ctx, StatusPath, target)
	if err != nil {
		return QueryResult{}, err
	}

	result, err := ParseQueryResult(body)
	if err != nil {
		c.logger.Error("failed to decode query response", "error", err)
		return QueryResult{}, err
	}

	c.logger.Debug("transaction queried",
		"status", result.Get("status").String(),
	)
	return result, nil
}

// post sends target and returns the body of a 2xx reply. path is logged in
// place of target, which carries credentials; the default transport strips
// the query from its errors too. Transport errors are returned as they are.
func (c *Client) post(ctx context.Context, path, target string) ([]byte, error) {
	resp, err := c.poster.Post(ctx, target, nil)
	if err != nil {
		c.logger.Error("moolah request failed", "path", path, "error", err)
		return nil, err
	}
	if resp == nil {
		return nil, NewMalformedResponseError(errors.New("transport returned no response"))
	}

	c.logger.Debug("moolah response received",
		"path", path,
		"status_code", resp.StatusCode,
	)

	if !resp.IsSuccess() {
		return nil, NewUnexpectedStatusError(resp.StatusCode, string(resp.Body))
	}
	return resp.Body, nil
}
