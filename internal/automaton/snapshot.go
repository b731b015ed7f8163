package automaton

import (
	"encoding/binary"
	"fmt"
)

// Snapshot record layout (big endian):
//
//	magic "LIFE" | version u8 | kind u8 | layers u32 | rows u32 | cols u32 |
//	generation u64 | cells, one bit each, LSB first, padded to a byte
const (
	snapshotMagic   = "LIFE"
	SnapshotVersion = 1

	snapshotHeaderLen = 4 + 1 + 1 + 3*4 + 8
)

// EncodeSnapshot serializes a frame into a versioned binary record.
func EncodeSnapshot(f Frame) []byte {
	g := f.Grid
	ext := g.Extents()
	buf := make([]byte, 0, snapshotHeaderLen+(g.Len()+7)/8)
	buf = append(buf, snapshotMagic...)
	buf = append(buf, SnapshotVersion, byte(g.Kind()))
	buf = binary.BigEndian.AppendUint32(buf, uint32(ext.Layers))
	buf = binary.BigEndian.AppendUint32(buf, uint32(ext.Rows))
	buf = binary.BigEndian.AppendUint32(buf, uint32(ext.Cols))
	buf = binary.BigEndian.AppendUint64(buf, uint64(f.Generation))

	packed := make([]byte, (g.Len()+7)/8)
	for i, v := range g.cells {
		packed[i/8] |= v << (i % 8)
	}
	return append(buf, packed...)
}

// DecodeSnapshot parses a record produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (Frame, error) {
	if len(data) < snapshotHeaderLen || string(data[:4]) != snapshotMagic {
		return Frame{}, fmt.Errorf("%w: bad header", ErrSnapshotFormat)
	}
	if v := data[4]; v != SnapshotVersion {
		return Frame{}, fmt.Errorf("%w: unsupported version %d", ErrSnapshotFormat, v)
	}
	kind := Kind(data[5])
	ext := Extents{
		Layers: int(binary.BigEndian.Uint32(data[6:])),
		Rows:   int(binary.BigEndian.Uint32(data[10:])),
		Cols:   int(binary.BigEndian.Uint32(data[14:])),
	}
	generation := binary.BigEndian.Uint64(data[18:])

	avail := uint64(len(data)-snapshotHeaderLen) * 8
	cells := uint64(1)
	for _, d := range []uint32{uint32(ext.Layers), uint32(ext.Rows), uint32(ext.Cols)} {
		cells *= uint64(d)
		if cells > avail {
			return Frame{}, fmt.Errorf("%w: truncated cell data", ErrSnapshotFormat)
		}
	}

	g, err := NewGrid(kind, ext)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: %w", ErrSnapshotFormat, err)
	}
	packed := data[snapshotHeaderLen:]
	if len(packed) != (g.Len()+7)/8 {
		return Frame{}, fmt.Errorf("%w: expected %d cell bytes, got %d",
			ErrSnapshotFormat, (g.Len()+7)/8, len(packed))
	}
	for i := range g.cells {
		g.cells[i] = (packed[i/8] >> (i % 8)) & 1
	}
	return Frame{Grid: g, Generation: int(generation)}, nil
}
