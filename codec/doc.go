// SPDX-License-Identifier: MIT

// Package codec converts a core.Graph to and from its canonical binary form.
//
// Layout (all integers big-endian, fixed width):
//
//	offset  size  field
//	0       1     format flag (written 0, ignored on read)
//	1       1     directedness: 0 undirected, 1 directed
//	2       14    reserved, zero
//	16      8     dimension (uint64)
//	24      2     reserved, zero
//	26      8·n   rows[0..n)
//	26+8n   8·n   cols[0..n)
//
// n = (len-26)/16 is the number of stored coordinates; undirected graphs
// store both orientations of every non-loop edge. Entries are written in
// storage order, so Encode(Decode(b)) == b for any valid b with zeroed
// reserved bytes.
package codec
