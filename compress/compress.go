// SPDX-License-Identifier: MIT

// Package compress wraps encoded graph buffers in an optional compression
// envelope.
//
// Envelope layout:
//
//	[magic "GXC"][algorithm uint8][uncompressed length uint64 BE][payload...]
//
// Buffers that do not start with the magic are passed through unchanged by
// Decode, so plain codec output is always readable.
package compress

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm identifies the payload compression.
type Algorithm uint8

const (
	// None stores the payload as is inside the envelope.
	None Algorithm = 0
	// LZ4 uses LZ4 block compression (fast, modest ratio).
	LZ4 Algorithm = 1
	// Zstd uses Zstandard (slower, better ratio).
	Zstd Algorithm = 2
)

// HeaderSize is the envelope header length.
const HeaderSize = 12

var magic = []byte("GXC")

var (
	// ErrUnknownAlgorithm indicates an algorithm byte or name this package
	// does not implement.
	ErrUnknownAlgorithm = errors.New("compress: unknown algorithm")

	// ErrCorrupt indicates a truncated envelope or a payload that does not
	// decompress to its declared length.
	ErrCorrupt = errors.New("compress: corrupt envelope")
)

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm maps "none", "lz4" or "zstd" (any case) to an Algorithm.
// The empty string means None.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// zstdCodec holds one encoder and one decoder. Both are built without a
// stream and only used through EncodeAll/DecodeAll, which are safe for
// concurrent use.
type zstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func newZstdCodec(eopts []zstd.EOption, dopts []zstd.DOption) (*zstdCodec, error) {
	enc, err := zstd.NewWriter(nil, eopts...)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil, dopts...)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("compress: zstd decoder: %w", err)
	}

	return &zstdCodec{enc: enc, dec: dec}, nil
}

// loadZstd builds the shared codec on first use and caches the result,
// error included.
var loadZstd = sync.OnceValues(func() (*zstdCodec, error) {
	return newZstdCodec(
		[]zstd.EOption{zstd.WithEncoderLevel(zstd.SpeedDefault)},
		[]zstd.DOption{zstd.WithDecoderConcurrency(0)},
	)
})

// IsEnvelope reports whether b starts with the envelope magic.
func IsEnvelope(b []byte) bool { return bytes.HasPrefix(b, magic) }

// Encode compresses data with algo and returns the envelope. When LZ4 finds
// the data incompressible the envelope falls back to None.
func Encode(data []byte, algo Algorithm) ([]byte, error) {
	var payload []byte
	if len(data) == 0 && algo != None && algo <= Zstd {
		algo = None
	}
	switch algo {
	case None:
		payload = data
	case LZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, fmt.Errorf("compress: lz4: %w", err)
		}
		if n == 0 {
			algo, payload = None, data
		} else {
			payload = buf[:n]
		}
	case Zstd:
		zc, err := loadZstd()
		if err != nil {
			return nil, err
		}
		payload = zc.enc.EncodeAll(data, nil)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}

	out := make([]byte, HeaderSize, HeaderSize+len(payload))
	copy(out, magic)
	out[3] = byte(algo)
	binary.BigEndian.PutUint64(out[4:], uint64(len(data)))

	return append(out, payload...), nil
}

// Decode unwraps an envelope produced by Encode. Input without the magic is
// returned unchanged (it is assumed to be a raw codec buffer).
func Decode(b []byte) ([]byte, Algorithm, error) {
	if !IsEnvelope(b) {
		return b, None, nil
	}
	if len(b) < HeaderSize {
		return nil, None, fmt.Errorf("%w: %d byte header", ErrCorrupt, len(b))
	}
	algo := Algorithm(b[3])
	size := binary.BigEndian.Uint64(b[4:])
	payload := b[HeaderSize:]

	switch algo {
	case None:
		if uint64(len(payload)) != size {
			return nil, algo, fmt.Errorf("%w: payload %d bytes, header says %d", ErrCorrupt, len(payload), size)
		}
		return payload, algo, nil
	case LZ4:
		// An LZ4 block never expands input by more than 255x.
		if size > uint64(len(payload))*255+16 {
			return nil, algo, fmt.Errorf("%w: implausible lz4 size %d", ErrCorrupt, size)
		}
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(payload, out)
		if err != nil {
			return nil, algo, fmt.Errorf("%w: lz4: %w", ErrCorrupt, err)
		}
		if uint64(n) != size {
			return nil, algo, fmt.Errorf("%w: lz4 size mismatch", ErrCorrupt)
		}
		return out, algo, nil
	case Zstd:
		zc, err := loadZstd()
		if err != nil {
			return nil, algo, err
		}
		out, err := zc.dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, algo, fmt.Errorf("%w: zstd: %w", ErrCorrupt, err)
		}
		if uint64(len(out)) != size {
			return nil, algo, fmt.Errorf("%w: zstd size mismatch", ErrCorrupt)
		}
		return out, algo, nil
	default:
		return nil, algo, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}
}
