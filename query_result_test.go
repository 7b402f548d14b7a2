package moolah_test

import (
	"encoding/json"
	"testing"

	moolah "github.com/DanielPopoola/moolah-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nestedBody = `{
	"status": "success",
	"transaction": {
		"tx": {
			"amount": "26651.62068965",
			"coin": "dogecoin",
			"status": "cancelled",
			"tx": "-1",
			"confirmations": 12,
			"rate": 0.00012,
			"paid": false,
			"note": null,
			"outputs": ["a", 2, {"value": "3"}]
		}
	}
}`

func TestParseQueryResult(t *testing.T) {
	result, err := moolah.ParseQueryResult([]byte(nestedBody))
	require.NoError(t, err)

	tx := result.Get("transaction", "tx")

	t.Run("navigates nested objects", func(t *testing.T) {
		assert.Equal(t, moolah.KindObject, result.Kind())
		assert.Equal(t, "26651.62068965", result.Get("transaction", "tx", "amount").String())
		assert.Equal(t, []string{"status", "transaction"}, result.Keys())
		assert.Equal(t, 9, tx.Len())
	})

	t.Run("preserves JSON types", func(t *testing.T) {
		assert.Equal(t, moolah.KindString, tx.Get("tx").Kind())
		assert.Equal(t, "-1", tx.Get("tx").String())
		_, isNumber := tx.Get("tx").Int64()
		assert.False(t, isNumber)

		confirmations, ok := tx.Get("confirmations").Int64()
		assert.True(t, ok)
		assert.Equal(t, int64(12), confirmations)

		rate, ok := tx.Get("rate").Float64()
		assert.True(t, ok)
		assert.InDelta(t, 0.00012, rate, 1e-12)
		assert.Equal(t, "0.00012", tx.Get("rate").String())

		paid, ok := tx.Get("paid").Bool()
		assert.True(t, ok)
		assert.False(t, paid)
		assert.Equal(t, "false", tx.Get("paid").String())

		assert.Equal(t, moolah.KindNull, tx.Get("note").Kind())
		assert.False(t, tx.Get("note").Exists())
	})

	t.Run("indexes arrays", func(t *testing.T) {
		outputs := tx.Get("outputs")

		assert.Equal(t, moolah.KindArray, outputs.Kind())
		assert.Equal(t, 3, outputs.Len())
		assert.Equal(t, "a", outputs.Index(0).String())
		assert.Equal(t, moolah.KindNumber, outputs.Index(1).Kind())
		assert.Equal(t, "3", outputs.Index(2).Get("value").String())
		assert.False(t, outputs.Index(3).Exists())
		assert.False(t, outputs.Index(-1).Exists())
	})

	t.Run("missing paths yield null nodes", func(t *testing.T) {
		assert.False(t, result.Get("nope").Exists())
		assert.False(t, result.Get("transaction", "tx", "amount", "deeper").Exists())
		assert.False(t, result.Get("status", "x").Exists())
		assert.Equal(t, "", result.Get("nope").String())
		assert.Nil(t, result.Get("nope").Keys())
		assert.False(t, result.Index(0).Exists())
	})

	t.Run("converts back to plain values", func(t *testing.T) {
		value := tx.Value().(map[string]interface{})

		assert.Equal(t, "-1", value["tx"])
		assert.Equal(t, json.Number("12"), value["confirmations"])
		assert.Equal(t, false, value["paid"])
		assert.Nil(t, value["note"])
		assert.Equal(t, []interface{}{"a", json.Number("2"), map[string]interface{}{"value": "3"}}, value["outputs"])
	})
}

func TestParseQueryResult_Scalars(t *testing.T) {
	result, err := moolah.ParseQueryResult([]byte(`"just a string"`))

	require.NoError(t, err)
	assert.Equal(t, moolah.KindString, result.Kind())
	assert.Equal(t, "just a string", result.String())
	assert.False(t, result.Get("anything").Exists())
}

func TestParseQueryResult_Malformed(t *testing.T) {
	for _, body := range []string{"", "{", `{"a":1} {"b":2}`, "<html>"} {
		_, err := moolah.ParseQueryResult([]byte(body))

		assert.True(t, moolah.IsErrorCode(err, moolah.ErrCodeMalformedResponse), body)
	}
}

func TestQueryResult_ZeroValue(t *testing.T) {
	var result moolah.QueryResult

	assert.Equal(t, moolah.KindNull, result.Kind())
	assert.Equal(t, "null", result.Kind().String())
	assert.False(t, result.Exists())
	assert.Nil(t, result.Value())
	assert.Equal(t, 0, result.Len())
}
