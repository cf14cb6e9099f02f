// Package codec serializes accumulated values, so that results produced in one process can be
// merged into an accumulator in another. Values are gob-encoded, then lz4-compressed.
package codec

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/pierrec/lz4"
)

// Encode serializes and compresses a value
func Encode[T any](v T) ([]byte, error) {
	raw := new(bytes.Buffer)
	if err := gob.NewEncoder(raw).Encode(v); err != nil {
		return nil, fmt.Errorf("Unable to encode value: %w", err)
	}
	out := new(bytes.Buffer)
	compressor := lz4.NewWriter(out)
	if _, err := compressor.Write(raw.Bytes()); err != nil {
		return nil, fmt.Errorf("Unable to compress value: %w", err)
	}
	if err := compressor.Close(); err != nil {
		return nil, fmt.Errorf("Unable to compress value: %w", err)
	}
	return out.Bytes(), nil
}

// Decode decompresses and deserializes a value produced by Encode
func Decode[T any](buf []byte) (T, error) {
	var v T
	decompressor := lz4.NewReader(bytes.NewReader(buf))
	if err := gob.NewDecoder(decompressor).Decode(&v); err != nil {
		return v, fmt.Errorf("Unable to decode value: %w", err)
	}
	return v, nil
}
