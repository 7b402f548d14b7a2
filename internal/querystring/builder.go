// Package querystring assembles the canonical request targets sent to the
// Moolah API.
package querystring

import (
	"net/url"
)

const (
	KeyAPIKey    = "apiKey"
	KeyAPISecret = "apiSecret"
	KeyIPN       = "ipn"
)

// Credentials are injected into every query string. Empty optional
// values are left out entirely.
type Credentials struct {
	APIKey    string
	APISecret string
	IPN       string
}

// Build returns path followed by a query string holding params and the
// injected credentials. Keys are sorted lexicographically, so identical
// inputs always produce byte-identical output. Credentials win over any
// explicit param using the same key.
func Build(path string, params map[string]string, creds Credentials) string {
	values := make(url.Values, len(params)+3)
	for k, v := range params {
		values.Set(k, v)
	}

	values.Set(KeyAPIKey, creds.APIKey)
	if creds.APISecret != "" {
		values.Set(KeyAPISecret, creds.APISecret)
	}
	if creds.IPN != "" {
		values.Set(KeyIPN, creds.IPN)
	}

	return path + "?" + values.Encode()
}
