// Package glb packs expanded mesh attributes into a single aligned
// binary payload and wraps it, together with its scene description,
// into a chunked binary container.
package glb

import (
	"bytes"
	"encoding/binary"

	"legacy2glb/internal/mesh"
)

// Segment is one typed byte range within the packed payload.
type Segment struct {
	ByteOffset uint32
	ByteLength uint32
}

// Packed is the single binary payload plus its layout. Segments appear
// in fixed order [positions, normals, uvs, indices]; every offset is a
// multiple of 4 and the payload length is the sum of the padded
// segment lengths. The scene document's buffer views must mirror this
// layout exactly.
type Packed struct {
	Data      []byte
	Positions Segment
	Normals   Segment
	UVs       Segment
	Indices   Segment
	IndexSize int
}

// Pack serializes ex's attribute and index buffers little-endian into
// one payload. Index elements take the width chosen by the expansion
// (16-bit when every corner fits, else 32-bit).
func Pack(ex *mesh.Expanded) *Packed {
	pk := &Packed{IndexSize: ex.IndexSize()}

	var buf bytes.Buffer
	pk.Positions = appendSegment(&buf, ex.Positions)
	pk.Normals = appendSegment(&buf, ex.Normals)
	pk.UVs = appendSegment(&buf, ex.UVs)
	if pk.IndexSize == 2 {
		narrow := make([]uint16, len(ex.Indices))
		for i, v := range ex.Indices {
			narrow[i] = uint16(v)
		}
		pk.Indices = appendSegment(&buf, narrow)
	} else {
		pk.Indices = appendSegment(&buf, ex.Indices)
	}

	pk.Data = buf.Bytes()
	return pk
}

// appendSegment writes data at the buffer's current (aligned) end and
// zero-pads to the next 4-byte boundary. The recorded length covers
// the data only, not the padding.
func appendSegment(buf *bytes.Buffer, data interface{}) Segment {
	off := uint32(buf.Len())
	binary.Write(buf, binary.LittleEndian, data)
	n := uint32(buf.Len()) - off
	for buf.Len()%4 != 0 {
		buf.WriteByte(0)
	}
	return Segment{ByteOffset: off, ByteLength: n}
}
