package cache

import (
	"encoding/json"
	"unicode/utf8"

	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
)

// Codec converts records to and from frame payloads.
type Codec[T any] interface {
	Encode(record T) ([]byte, error)
	Decode(payload []byte) (T, error)
}

// JSONCodec stores records as their JSON text.
type JSONCodec[T any] struct{}

// Encode marshals record to JSON.
func (JSONCodec[T]) Encode(record T) ([]byte, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheEncodeFailed.Error())
	}
	return data, nil
}

// Decode unmarshals a JSON payload. Payloads that are not UTF-8 are rejected.
func (JSONCodec[T]) Decode(payload []byte) (T, error) {
	var record T
	if !utf8.Valid(payload) {
		return record, zerr.With(domain.ErrCacheCorrupt, "reason", "payload is not valid UTF-8")
	}
	if err := json.Unmarshal(payload, &record); err != nil {
		return record, zerr.Wrap(err, domain.ErrCacheCorrupt.Error())
	}
	return record, nil
}
