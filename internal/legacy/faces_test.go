package legacy

import (
	"errors"
	"testing"
)

func decodeAll(t *testing.T, doc *Document) []Face {
	t.Helper()
	dec := NewFaceDecoder(doc)
	var faces []Face
	for dec.More() {
		f, err := dec.Next()
		if err != nil {
			t.Fatalf("decode face %d: %v", len(faces), err)
		}
		faces = append(faces, f)
	}
	return faces
}

func TestDecodeTriangleNoFlags(t *testing.T) {
	doc := &Document{
		Scale:    1,
		Vertices: []float32{0, 0, 0, 1, 0, 0, 1, 1, 0},
		Faces:    []int{0, 0, 1, 2},
	}
	faces := decodeAll(t, doc)
	if len(faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(faces))
	}
	f := faces[0]
	if f.Count != 3 {
		t.Fatalf("expected 3 corners, got %d", f.Count)
	}
	for i, want := range []int{0, 1, 2} {
		c := f.Corners[i]
		if c.Vertex != want {
			t.Errorf("corner %d: vertex %d, want %d", i, c.Vertex, want)
		}
		if c.UV != -1 || c.Normal != -1 {
			t.Errorf("corner %d: expected no uv/normal, got uv=%d normal=%d", i, c.UV, c.Normal)
		}
	}
}

func TestDecodeQuad(t *testing.T) {
	doc := &Document{
		Vertices: make([]float32, 4*3),
		Faces:    []int{flagQuad, 0, 1, 2, 3},
	}
	faces := decodeAll(t, doc)
	if len(faces) != 1 || faces[0].Count != 4 {
		t.Fatalf("expected one quad, got %+v", faces)
	}
	for i := 0; i < 4; i++ {
		if faces[0].Corners[i].Vertex != i {
			t.Errorf("corner %d: vertex %d", i, faces[0].Corners[i].Vertex)
		}
	}
}

// A record with every optional field present must advance the cursor
// past all of them, leaving the following record aligned.
func TestDecodeAllOptionalFields(t *testing.T) {
	doc := &Document{
		Vertices: make([]float32, 5*3),
		Normals:  make([]float32, 5*3),
		UVs:      [][]float32{make([]float32, 5*2)},
		Faces: []int{
			flagQuad | flagMaterial | flagFaceUV | flagVertexUV |
				flagFaceNormal | flagVertexNormal | flagFaceColor | flagVertexColor,
			0, 1, 2, 3, // vertex indices
			7,          // material index (skipped)
			4,          // face uv index (skipped)
			0, 1, 2, 3, // per-corner uv indices
			4,          // face normal index (skipped)
			3, 2, 1, 0, // per-corner normal indices
			9,          // face color (skipped)
			5, 6, 7, 8, // per-corner colors (skipped)
			0, 4, 3, 2, // plain triangle follows
		},
	}
	faces := decodeAll(t, doc)
	if len(faces) != 2 {
		t.Fatalf("expected 2 faces, got %d", len(faces))
	}
	q := faces[0]
	if q.Count != 4 {
		t.Fatalf("first face: expected quad, got %d corners", q.Count)
	}
	for i := 0; i < 4; i++ {
		if q.Corners[i].UV != i {
			t.Errorf("corner %d: uv index %d, want %d", i, q.Corners[i].UV, i)
		}
		if q.Corners[i].Normal != 3-i {
			t.Errorf("corner %d: normal index %d, want %d", i, q.Corners[i].Normal, 3-i)
		}
	}
	tr := faces[1]
	if tr.Count != 3 {
		t.Fatalf("second face: expected triangle, got %d corners", tr.Count)
	}
	if tr.Corners[0].Vertex != 4 || tr.Corners[1].Vertex != 3 || tr.Corners[2].Vertex != 2 {
		t.Errorf("second face misaligned: %+v", tr.Corners)
	}
}

// The decoder must consume one face-UV integer and one per-corner set
// per non-empty UV channel, keeping only channel 0.
func TestDecodeTwoUVChannels(t *testing.T) {
	doc := &Document{
		Vertices: make([]float32, 3*3),
		UVs: [][]float32{
			make([]float32, 4*2),
			make([]float32, 4*2),
		},
		Faces: []int{
			flagVertexUV,
			0, 1, 2,
			1, 2, 3, // channel 0 indices
			3, 2, 1, // channel 1 indices (skipped)
			0, 2, 1, 0, // plain triangle follows
		},
	}
	faces := decodeAll(t, doc)
	if len(faces) != 2 {
		t.Fatalf("expected 2 faces, got %d", len(faces))
	}
	for i, want := range []int{1, 2, 3} {
		if faces[0].Corners[i].UV != want {
			t.Errorf("corner %d: uv index %d, want %d", i, faces[0].Corners[i].UV, want)
		}
	}
	if faces[1].Corners[0].Vertex != 2 {
		t.Errorf("second face misaligned: %+v", faces[1].Corners)
	}
}

func TestDecodeTruncatedQuad(t *testing.T) {
	doc := &Document{
		Vertices: make([]float32, 4*3),
		Faces:    []int{flagQuad, 0, 1}, // quad declared, two indices left
	}
	dec := NewFaceDecoder(doc)
	_, err := dec.Next()
	if err == nil {
		t.Fatal("expected error for truncated record")
	}
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestDecodeTruncatedOptionalField(t *testing.T) {
	doc := &Document{
		Vertices: make([]float32, 3*3),
		Normals:  make([]float32, 3*3),
		Faces:    []int{flagVertexNormal, 0, 1, 2, 0, 1}, // one normal index short
	}
	dec := NewFaceDecoder(doc)
	if _, err := dec.Next(); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestDecodeVertexIndexOutOfRange(t *testing.T) {
	doc := &Document{
		Vertices: make([]float32, 2*3),
		Faces:    []int{0, 0, 1, 2},
	}
	dec := NewFaceDecoder(doc)
	if _, err := dec.Next(); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for out-of-range index, got %v", err)
	}
}

func TestDecodeNormalIndexOutOfRange(t *testing.T) {
	doc := &Document{
		Vertices: make([]float32, 3*3),
		Normals:  make([]float32, 1*3),
		Faces:    []int{flagVertexNormal, 0, 1, 2, 0, 0, 5},
	}
	dec := NewFaceDecoder(doc)
	if _, err := dec.Next(); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for out-of-range normal, got %v", err)
	}
}
