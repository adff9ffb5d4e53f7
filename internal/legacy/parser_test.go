package legacy

import (
	"errors"
	"testing"
)

func TestDecodeDocument(t *testing.T) {
	data := []byte(`{
		"scale": 2.5,
		"vertices": [0,0,0, 1,0,0, 1,1,0],
		"normals": [0,0,1],
		"uvs": [[0,0, 1,0, 1,1]],
		"faces": [0, 0,1,2],
		"materials": [{"diffuseColor": [0.2, 0.4, 0.6]}]
	}`)
	doc, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Scale != 2.5 {
		t.Errorf("scale %v, want 2.5", doc.Scale)
	}
	if len(doc.Vertices) != 9 {
		t.Errorf("vertices %d, want 9", len(doc.Vertices))
	}
	if len(doc.Materials) != 1 || len(doc.Materials[0].DiffuseColor) != 3 {
		t.Errorf("materials not parsed: %+v", doc.Materials)
	}
}

func TestDecodeScaleDefaultsToOne(t *testing.T) {
	doc, err := Decode([]byte(`{"vertices": [], "faces": []}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Scale != 1 {
		t.Errorf("scale %v, want default 1", doc.Scale)
	}
}

func TestDecodeBadJSON(t *testing.T) {
	_, err := Decode([]byte(`{"vertices": [0,`))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestDecodeRaggedArrays(t *testing.T) {
	cases := []string{
		`{"vertices": [0,0]}`,
		`{"normals": [0,0,0,0]}`,
		`{"uvs": [[0,0,1]]}`,
	}
	for _, c := range cases {
		if _, err := Decode([]byte(c)); !errors.Is(err, ErrFormat) {
			t.Errorf("%s: expected ErrFormat, got %v", c, err)
		}
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse("/nonexistent/mesh.json"); err == nil {
		t.Error("expected error for missing file")
	}
}
