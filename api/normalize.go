package api

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/bencyn-cli/bencyn/log"
	"github.com/samber/mo"
)

// ErrUnrecognizedShape is logged when a body is neither a list nor a
// {"results": [...]} envelope. It never reaches callers.
var ErrUnrecognizedShape = errors.New("unrecognized response shape")

// Kind tells the supported response shapes apart.
type Kind int

const (
	Unrecognized Kind = iota
	Array
	Paginated
)

func (k Kind) String() string {
	switch k {
	case Array:
		return "array"
	case Paginated:
		return "paginated"
	default:
		return "unrecognized"
	}
}

// Shape is a classified response body.
type Shape struct {
	Kind    Kind
	Records []json.RawMessage
}

// Classify inspects raw and extracts its records.
// It never fails: anything it does not understand is Unrecognized.
func Classify(raw []byte) Shape {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Shape{Kind: Unrecognized}
	}

	switch trimmed[0] {
	case '[':
		if records, ok := asArray(trimmed); ok {
			return Shape{Kind: Array, Records: records}
		}
	case '{':
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			break
		}
		if records, ok := asArray(envelope["results"]); ok {
			return Shape{Kind: Paginated, Records: records}
		}
	}

	return Shape{Kind: Unrecognized}
}

func asArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, true
}

// Normalize returns the records of raw. A bare list is returned as is,
// a paginated envelope yields its results, anything else yields an empty list.
// The result is never nil.
func Normalize(raw []byte) []json.RawMessage {
	shape := Classify(raw)
	switch shape.Kind {
	case Array, Paginated:
		return shape.Records
	default:
		if len(bytes.TrimSpace(raw)) > 0 {
			log.Debugf("normalize: %s", ErrUnrecognizedShape)
		}
		return []json.RawMessage{}
	}
}

// Decode normalizes raw and decodes each record into T.
// Records that do not fit T are skipped.
func Decode[T any](raw []byte) []T {
	records := Normalize(raw)
	decoded := make([]T, 0, len(records))
	for i, record := range records {
		var v T
		if err := json.Unmarshal(record, &v); err != nil {
			log.Warnf("decode: skipping record %d: %s", i, err)
			continue
		}
		decoded = append(decoded, v)
	}
	return decoded
}

// First decodes the first record of raw, if there is one.
func First[T any](raw []byte) mo.Option[T] {
	decoded := Decode[T](raw)
	if len(decoded) == 0 {
		return mo.None[T]()
	}
	return mo.Some(decoded[0])
}
