// Package compression wraps zstd for stored snapshot objects.
package compression

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

// Objects below this size are stored uncompressed.
const minCompressSize = 128

// zstd frame magic, used to tell compressed objects from plain ones.
var frameMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Codec compresses and decompresses stored objects. A disabled codec
// passes data through unchanged.
type Codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	enabled bool
}

// NewCodec creates a codec at the given zstd speed level (1 fastest,
// 3 best compression).
func NewCodec(level int, enabled bool) (*Codec, error) {
	if !enabled {
		return &Codec{}, nil
	}

	var encoderLevel zstd.EncoderLevel
	switch level {
	case 1:
		encoderLevel = zstd.SpeedFastest
	case 3:
		encoderLevel = zstd.SpeedBetterCompression
	default:
		encoderLevel = zstd.SpeedDefault
	}

	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(encoderLevel),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, err
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}

	return &Codec{encoder: encoder, decoder: decoder, enabled: true}, nil
}

// Compress returns the compressed form of data, or data itself when
// compression is disabled or would not shrink it.
func (c *Codec) Compress(data []byte) []byte {
	if !c.enabled || len(data) < minCompressSize {
		return data
	}
	compressed := c.encoder.EncodeAll(data, make([]byte, 0, len(data)))
	if len(compressed) >= len(data) {
		return data
	}
	return compressed
}

// Decompress reverses Compress. Objects written uncompressed are
// returned as-is.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	if !c.enabled || !bytes.HasPrefix(data, frameMagic) {
		return data, nil
	}
	return c.decoder.DecodeAll(data, nil)
}

// Close releases the encoder and decoder.
func (c *Codec) Close() error {
	if c.encoder != nil {
		c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}
	return nil
}
