package mesh

import (
	dvec3 "github.com/flywave/go3d/float64/vec3"
	"github.com/flywave/go3d/vec2"
	"github.com/flywave/go3d/vec3"

	"legacy2glb/internal/legacy"
)

// Corners without a normal index point straight up rather than along a
// computed face normal.
var defaultNormal = vec3.T{0, 1, 0}

// Expanded holds flat, non-indexed-shared attribute buffers: one
// position/normal/uv triple per triangle corner, plus an index buffer
// referencing those corners. Positions carry the document scale.
type Expanded struct {
	Positions []vec3.T
	Normals   []vec3.T
	UVs       []vec2.T
	Indices   []uint32
	Bounds    dvec3.Box
}

// Expand decodes doc's face stream and expands every corner into the
// flat attribute buffers. Quads become two triangles by fan rule
// (0,1,2) and (0,2,3), preserving source winding.
func Expand(doc *legacy.Document) (*Expanded, error) {
	dec := legacy.NewFaceDecoder(doc)
	scale := float32(doc.Scale)
	uv0 := doc.UVChannel0()

	ex := &Expanded{Bounds: dvec3.MinBox}
	for dec.More() {
		f, err := dec.Next()
		if err != nil {
			return nil, err
		}
		base := uint32(len(ex.Positions))
		for i := 0; i < f.Count; i++ {
			c := f.Corners[i]
			p := vec3.T{
				doc.Vertices[3*c.Vertex] * scale,
				doc.Vertices[3*c.Vertex+1] * scale,
				doc.Vertices[3*c.Vertex+2] * scale,
			}
			ex.Positions = append(ex.Positions, p)
			ex.Bounds.Extend(&dvec3.T{float64(p[0]), float64(p[1]), float64(p[2])})

			n := defaultNormal
			if c.Normal >= 0 {
				n = vec3.T{
					doc.Normals[3*c.Normal],
					doc.Normals[3*c.Normal+1],
					doc.Normals[3*c.Normal+2],
				}
			}
			ex.Normals = append(ex.Normals, n)

			var uv vec2.T
			if c.UV >= 0 {
				uv = vec2.T{uv0[2*c.UV], uv0[2*c.UV+1]}
			}
			ex.UVs = append(ex.UVs, uv)
		}
		ex.Indices = append(ex.Indices, base, base+1, base+2)
		if f.Count == 4 {
			ex.Indices = append(ex.Indices, base, base+2, base+3)
		}
	}
	return ex, nil
}

// IndexSize reports the byte width of one index element: 2 when every
// corner index fits in 16 bits, else 4. Valid only after expansion is
// complete.
func (e *Expanded) IndexSize() int {
	if len(e.Positions) < 1<<16 {
		return 2
	}
	return 4
}

// BoundsMinMax returns the bounding box of the scaled positions as
// accessor min/max slices, or nil for an empty mesh (the ±inf
// sentinels never collapsed).
func (e *Expanded) BoundsMinMax() (min, max []float32) {
	if len(e.Positions) == 0 {
		return nil, nil
	}
	b := e.Bounds
	min = []float32{float32(b.Min[0]), float32(b.Min[1]), float32(b.Min[2])}
	max = []float32{float32(b.Max[0]), float32(b.Max[1]), float32(b.Max[2])}
	return min, max
}
