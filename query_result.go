package moolah

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "null"
	}
}

// QueryResult is one node of a decoded JSON document. The zero value is a
// null node, which is also what lookups of missing keys return.
type QueryResult struct {
	kind   Kind
	text   string
	flag   bool
	fields map[string]QueryResult
	items  []QueryResult
}

// ParseQueryResult decodes body into a result tree. Numbers keep their
// literal text; nothing is converted to float on the way in.
func ParseQueryResult(body []byte) (QueryResult, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var decoded interface{}
	if err := dec.Decode(&decoded); err != nil {
		return QueryResult{}, NewMalformedResponseError(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return QueryResult{}, NewMalformedResponseError(fmt.Errorf("unexpected data after JSON value"))
	}

	return normalize(decoded), nil
}

func normalize(v interface{}) QueryResult {
	switch val := v.(type) {
	case nil:
		return QueryResult{}
	case string:
		return QueryResult{kind: KindString, text: val}
	case json.Number:
		return QueryResult{kind: KindNumber, text: val.String()}
	case bool:
		return QueryResult{kind: KindBool, flag: val}
	case map[string]interface{}:
		fields := make(map[string]QueryResult, len(val))
		for k, child := range val {
			fields[k] = normalize(child)
		}
		return QueryResult{kind: KindObject, fields: fields}
	case []interface{}:
		items := make([]QueryResult, len(val))
		for i, child := range val {
			items[i] = normalize(child)
		}
		return QueryResult{kind: KindArray, items: items}
	default:
		return QueryResult{}
	}
}

func (r QueryResult) Kind() Kind {
	return r.kind
}

// Exists is false for null nodes, including missing keys.
func (r QueryResult) Exists() bool {
	return r.kind != KindNull
}

// Get walks nested objects one key at a time. Any missing step yields a null
// node.
func (r QueryResult) Get(keys ...string) QueryResult {
	current := r
	for _, key := range keys {
		if current.kind != KindObject {
			return QueryResult{}
		}
		current = current.fields[key]
	}
	return current
}

// Index returns the i-th element of an array node.
func (r QueryResult) Index(i int) QueryResult {
	if r.kind != KindArray || i < 0 || i >= len(r.items) {
		return QueryResult{}
	}
	return r.items[i]
}

// Len is the number of fields of an object or items of an array.
func (r QueryResult) Len() int {
	switch r.kind {
	case KindObject:
		return len(r.fields)
	case KindArray:
		return len(r.items)
	default:
		return 0
	}
}

// Keys returns the object's keys in sorted order.
func (r QueryResult) Keys() []string {
	if r.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns the text of a string node, the literal of a number node and
// "true"/"false" for booleans. Other kinds give "".
func (r QueryResult) String() string {
	switch r.kind {
	case KindString, KindNumber:
		return r.text
	case KindBool:
		return strconv.FormatBool(r.flag)
	default:
		return ""
	}
}

func (r QueryResult) Int64() (int64, bool) {
	if r.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(r.text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (r QueryResult) Float64() (float64, bool) {
	if r.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(r.text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (r QueryResult) Bool() (bool, bool) {
	if r.kind != KindBool {
		return false, false
	}
	return r.flag, true
}

// Value converts the node back to plain Go values: map[string]interface{},
// []interface{}, string, json.Number, bool or nil.
func (r QueryResult) Value() interface{} {
	switch r.kind {
	case KindString:
		return r.text
	case KindNumber:
		return json.Number(r.text)
	case KindBool:
		return r.flag
	case KindObject:
		out := make(map[string]interface{}, len(r.fields))
		for k, child := range r.fields {
			out[k] = child.Value()
		}
		return out
	case KindArray:
		out := make([]interface{}, len(r.items))
		for i, child := range r.items {
			out[i] = child.Value()
		}
		return out
	default:
		return nil
	}
}
