// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Encode/Decode of the canonical graph buffer and io helpers.
// Decode is all-or-nothing: no partially built graph is ever returned.

package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/graphrox/core"
	"github.com/katalvlaran/graphrox/matrix"
)

const (
	// HeaderSize is the fixed length of the buffer header in bytes.
	HeaderSize = 26

	// EntrySize is the number of bytes one stored coordinate occupies
	// (a row id plus a column id).
	EntrySize = 16

	offFlag      = 0
	offDirected  = 1
	offDimension = 16

	flagUndirected byte = 0
	flagDirected   byte = 1
)

// ErrInvalidFormat indicates a buffer that is not a well-formed graph encoding.
var ErrInvalidFormat = errors.New("codec: invalid format")

// EncodedLen returns the exact size of Encode(g).
func EncodedLen(g *core.Graph) int {
	return HeaderSize + EntrySize*g.CoordinateCount()
}

// Encode returns the canonical encoding of g.
// Complexity: O(E) time and space.
func Encode(g *core.Graph) []byte {
	return AppendEncode(nil, g)
}

// AppendEncode appends the canonical encoding of g to dst and returns the
// extended slice.
func AppendEncode(dst []byte, g *core.Graph) []byte {
	n := g.CoordinateCount()

	start := len(dst)
	dst = append(dst, make([]byte, HeaderSize+EntrySize*n)...)
	buf := dst[start:]

	buf[offFlag] = 0
	if g.Directed() {
		buf[offDirected] = flagDirected
	}
	binary.BigEndian.PutUint64(buf[offDimension:], g.Dimension())

	rows := buf[HeaderSize : HeaderSize+8*n]
	cols := buf[HeaderSize+8*n:]
	i := 0
	for r, c := range g.Edges() {
		binary.BigEndian.PutUint64(rows[8*i:], r)
		binary.BigEndian.PutUint64(cols[8*i:], c)
		i++
	}

	return dst
}

// Decode parses b into a new Graph. b is not retained.
//
// Errors (all wrap ErrInvalidFormat):
//   - len(b) < HeaderSize, or len(b)-HeaderSize not a multiple of EntrySize.
//   - a directedness byte other than 0 or 1.
//   - a coordinate >= dimension (including any entry with dimension 0).
//   - duplicate coordinates, or an undirected entry without its mirror.
func Decode(b []byte) (*core.Graph, error) {
	const method = "Decode"
	if len(b) < HeaderSize {
		return nil, fmt.Errorf("%s: %d bytes, need at least %d: %w", method, len(b), HeaderSize, ErrInvalidFormat)
	}
	body := len(b) - HeaderSize
	if body%EntrySize != 0 {
		return nil, fmt.Errorf("%s: body of %d bytes is not a whole number of entries: %w", method, body, ErrInvalidFormat)
	}

	var directed bool
	switch b[offDirected] {
	case flagUndirected:
	case flagDirected:
		directed = true
	default:
		return nil, fmt.Errorf("%s: directedness byte %#x: %w", method, b[offDirected], ErrInvalidFormat)
	}
	dimension := binary.BigEndian.Uint64(b[offDimension:])

	n := body / EntrySize
	rows := make([]uint64, n)
	cols := make([]uint64, n)
	rowBytes := b[HeaderSize : HeaderSize+8*n]
	colBytes := b[HeaderSize+8*n:]
	for i := 0; i < n; i++ {
		rows[i] = binary.BigEndian.Uint64(rowBytes[8*i:])
		cols[i] = binary.BigEndian.Uint64(colBytes[8*i:])
	}

	adj, err := matrix.FromEntries(directed, dimension, rows, cols)
	if err != nil {
		// Keep the detail, surface the codec sentinel.
		return nil, fmt.Errorf("%s: %w: %w", method, ErrInvalidFormat, err)
	}

	return core.FromAdjacency(adj), nil
}

// Write encodes g to w in a single Write call.
func Write(w io.Writer, g *core.Graph) error {
	if _, err := w.Write(Encode(g)); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// Read consumes r to EOF and decodes the result.
func Read(r io.Reader) (*core.Graph, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return Decode(b)
}
