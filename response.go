package moolah

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// TransactionResponse is the decoded reply to CreateTransaction. Payment is
// set only when Status is "success"; every other status leaves it nil.
type TransactionResponse struct {
	Status      string
	Payment     *Payment
	RawResponse string
}

// Payment holds the details Moolah returns for a created transaction.
type Payment struct {
	Amount    string
	Coin      string
	GUID      string
	Address   string
	Timestamp int64
	URL       string
}

func (r *TransactionResponse) Succeeded() bool {
	return r.Payment != nil
}

// Time converts the unix timestamp to UTC.
func (p *Payment) Time() time.Time {
	return time.Unix(p.Timestamp, 0).UTC()
}

func (p *Payment) AmountDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(p.Amount)
}

type transactionBody struct {
	Status    json.RawMessage `json:"status"`
	Amount    json.RawMessage `json:"amount"`
	Coin      json.RawMessage `json:"coin"`
	GUID      json.RawMessage `json:"guid"`
	Address   json.RawMessage `json:"address"`
	Timestamp json.RawMessage `json:"timestamp"`
	URL       json.RawMessage `json:"url"`
}

// DecodeTransactionResponse parses a create-transaction reply. A failed
// transaction is a normal result; only a body that is not a JSON object, or a
// success whose timestamp is not numeric, is an error.
func DecodeTransactionResponse(body string) (*TransactionResponse, error) {
	var decoded transactionBody
	if err := decodeObject([]byte(body), &decoded); err != nil {
		return nil, NewMalformedResponseError(err)
	}

	resp := &TransactionResponse{
		Status:      scalarString(decoded.Status),
		RawResponse: body,
	}
	if resp.Status != StatusSuccess {
		return resp, nil
	}

	timestamp, err := coerceTimestamp(decoded.Timestamp)
	if err != nil {
		return nil, NewMalformedResponseError(err)
	}

	resp.Payment = &Payment{
		Amount:    scalarString(decoded.Amount),
		Coin:      scalarString(decoded.Coin),
		GUID:      scalarString(decoded.GUID),
		Address:   scalarString(decoded.Address),
		Timestamp: timestamp,
		URL:       scalarString(decoded.URL),
	}
	return resp, nil
}

// decodeObject rejects anything but a single JSON object.
func decodeObject(data []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("expected a JSON object")
	}
	return json.Unmarshal(trimmed, v)
}

// scalarString returns JSON strings unquoted and numbers or booleans as
// their literal text. null, objects and arrays give "".
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '{', '[', 'n':
		return ""
	default:
		return string(raw)
	}
}

func coerceTimestamp(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}

	text := strings.TrimSpace(scalarString(raw))
	if text == "" {
		return 0, fmt.Errorf("timestamp %s is not numeric", raw)
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("timestamp %s is not numeric", raw)
	}
	return int64(f), nil
}
