// Package jsoncoll provides collections value codecs for plain Go structs
// that are stored as canonical JSON.
package jsoncoll

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

var _ collcodec.ValueCodec[struct{}] = valueCodec[struct{}]{}

type valueCodec[T any] struct {
	name string
}

// NewValueCodec returns a collections value codec storing T as JSON. The
// field order of T defines the byte layout, so T must not be reordered once
// values have been written.
func NewValueCodec[T any](name string) collcodec.ValueCodec[T] {
	return valueCodec[T]{name: name}
}

func (c valueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c valueCodec[T]) Decode(b []byte) (T, error) {
	var value T
	if err := json.Unmarshal(b, &value); err != nil {
		return value, fmt.Errorf("%s: %w", c.name, err)
	}

	return value, nil
}

func (c valueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return c.Encode(value)
}

func (c valueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c valueCodec[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%+v", value)
	}

	return string(bz)
}

func (c valueCodec[T]) ValueType() string {
	return c.name
}
