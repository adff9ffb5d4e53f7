package legacy

import "fmt"

// Face flag bits. Each face record in the flat integer stream starts
// with one flag integer; the set bits determine which optional fields
// follow and how many integers they occupy.
const (
	flagQuad = 1 << iota
	flagMaterial
	flagFaceUV
	flagVertexUV
	flagFaceNormal
	flagVertexNormal
	flagFaceColor
	flagVertexColor
)

// Corner is one vertex-instance of one decoded face. UV and Normal are
// -1 when the face carried no per-corner index for that attribute.
type Corner struct {
	Vertex int
	UV     int
	Normal int
}

// Face is one decoded face record: Count (3 or 4) corners in source
// winding order.
type Face struct {
	Corners [4]Corner
	Count   int
}

// FaceDecoder walks the flat face integer stream one record at a time.
// The cursor advances by exactly the number of integers implied by the
// flag bits, whether or not a field is kept, so a skipped field never
// misaligns the remainder of the stream.
type FaceDecoder struct {
	stream []int
	off    int
	face   int

	vertexCount int
	normalCount int
	uvChannels  [][]float32
}

// NewFaceDecoder returns a decoder over doc's face stream.
func NewFaceDecoder(doc *Document) *FaceDecoder {
	return &FaceDecoder{
		stream:      doc.Faces,
		vertexCount: len(doc.Vertices) / 3,
		normalCount: len(doc.Normals) / 3,
		uvChannels:  doc.uvChannels(),
	}
}

// More reports whether any integers remain in the stream.
func (d *FaceDecoder) More() bool {
	return d.off < len(d.stream)
}

// Next decodes the next face record. Call only while More reports true.
func (d *FaceDecoder) Next() (Face, error) {
	flagv, err := d.take(1)
	if err != nil {
		return Face{}, err
	}
	flag := flagv[0]

	var f Face
	f.Count = 3
	if flag&flagQuad != 0 {
		f.Count = 4
	}

	verts, err := d.take(f.Count)
	if err != nil {
		return Face{}, err
	}
	for i, v := range verts {
		if v < 0 || v >= d.vertexCount {
			return Face{}, fmt.Errorf("%w: face %d: vertex index %d out of range [0,%d)", ErrFormat, d.face, v, d.vertexCount)
		}
		f.Corners[i] = Corner{Vertex: v, UV: -1, Normal: -1}
	}

	if flag&flagMaterial != 0 {
		if _, err := d.take(1); err != nil {
			return Face{}, err
		}
	}

	// One face-UV integer and one per-corner index set per non-empty
	// UV channel. Only channel 0 is kept.
	if flag&flagFaceUV != 0 {
		if _, err := d.take(len(d.uvChannels)); err != nil {
			return Face{}, err
		}
	}
	if flag&flagVertexUV != 0 {
		for ch, uvs := range d.uvChannels {
			idx, err := d.take(f.Count)
			if err != nil {
				return Face{}, err
			}
			if ch != 0 {
				continue
			}
			count := len(uvs) / 2
			for i, u := range idx {
				if u < 0 || u >= count {
					return Face{}, fmt.Errorf("%w: face %d: uv index %d out of range [0,%d)", ErrFormat, d.face, u, count)
				}
				f.Corners[i].UV = u
			}
		}
	}

	if flag&flagFaceNormal != 0 {
		if _, err := d.take(1); err != nil {
			return Face{}, err
		}
	}
	if flag&flagVertexNormal != 0 {
		idx, err := d.take(f.Count)
		if err != nil {
			return Face{}, err
		}
		for i, n := range idx {
			if n < 0 || n >= d.normalCount {
				return Face{}, fmt.Errorf("%w: face %d: normal index %d out of range [0,%d)", ErrFormat, d.face, n, d.normalCount)
			}
			f.Corners[i].Normal = n
		}
	}

	if flag&flagFaceColor != 0 {
		if _, err := d.take(1); err != nil {
			return Face{}, err
		}
	}
	if flag&flagVertexColor != 0 {
		if _, err := d.take(f.Count); err != nil {
			return Face{}, err
		}
	}

	d.face++
	return f, nil
}

func (d *FaceDecoder) take(n int) ([]int, error) {
	if d.off+n > len(d.stream) {
		return nil, fmt.Errorf("%w: face %d: stream ends mid-record (need %d more integers, have %d)",
			ErrFormat, d.face, n, len(d.stream)-d.off)
	}
	s := d.stream[d.off : d.off+n]
	d.off += n
	return s, nil
}
