package legacy

// Document is one parsed legacy mesh file. All attribute arrays are
// flat: 3 floats per vertex/normal, 2 per UV. The document is
// read-only input for the duration of one conversion.
type Document struct {
	Scale     float64     `json:"scale"`
	Vertices  []float32   `json:"vertices"`
	Normals   []float32   `json:"normals"`
	UVs       [][]float32 `json:"uvs"`
	Faces     []int       `json:"faces"`
	Materials []Material  `json:"materials"`
}

// Material carries the subset of the legacy material model we extract.
type Material struct {
	DiffuseColor []float64 `json:"diffuseColor"`
}

// uvChannels returns the non-empty UV channels in declared order. The
// face stream stores one face-UV integer and one per-corner index set
// per non-empty channel, so this count drives the decode cursor.
func (d *Document) uvChannels() [][]float32 {
	var chans [][]float32
	for _, ch := range d.UVs {
		if len(ch) > 0 {
			chans = append(chans, ch)
		}
	}
	return chans
}

// UVChannel0 returns the first non-empty UV channel, or nil. Only
// channel 0 survives conversion.
func (d *Document) UVChannel0() []float32 {
	for _, ch := range d.UVs {
		if len(ch) > 0 {
			return ch
		}
	}
	return nil
}
