package mesh

import (
	"path/filepath"
	"strings"

	"legacy2glb/internal/legacy"
)

// RGBA is a resolved base color, components in [0,1]. Alpha is always 1.
type RGBA [4]float32

// keywordColors maps filename substrings to base colors. Iteration
// order is load-bearing: later entries override earlier matches, so
// "whiteoak" wins over the "white" that is also a substring of it.
var keywordColors = []struct {
	keyword string
	color   RGBA
}{
	{"white", RGBA{0.95, 0.95, 0.95, 1}},
	{"gray", RGBA{0.60, 0.60, 0.60, 1}},
	{"grey", RGBA{0.60, 0.60, 0.60, 1}},
	{"blue", RGBA{0.27, 0.45, 0.70, 1}},
	{"orange", RGBA{0.85, 0.45, 0.15, 1}},
	{"green", RGBA{0.30, 0.55, 0.34, 1}},
	{"brown", RGBA{0.45, 0.31, 0.21, 1}},
	{"walnut", RGBA{0.35, 0.24, 0.16, 1}},
	{"oak", RGBA{0.72, 0.56, 0.38, 1}},
	{"whiteoak", RGBA{0.83, 0.72, 0.55, 1}},
	{"smoke", RGBA{0.35, 0.35, 0.37, 1}},
	{"black", RGBA{0.12, 0.12, 0.12, 1}},
}

// DefaultColor is the fallback when neither filename nor materials
// yield a usable color: a generic wood tone.
var DefaultColor = RGBA{0.55, 0.40, 0.26, 1}

// ResolveColor derives the single base color for a mesh. Filename
// keywords win over material diffuse colors, which win over the
// default; there is no blending.
func ResolveColor(filename string, materials []legacy.Material) RGBA {
	name := strings.ToLower(filepath.Base(filename))

	var matched RGBA
	found := false
	for _, kc := range keywordColors {
		if strings.Contains(name, kc.keyword) {
			matched = kc.color
			found = true
		}
	}
	if found {
		return matched
	}

	// First diffuse color that is neither near-white nor near-gray.
	for _, m := range materials {
		if len(m.DiffuseColor) < 3 {
			continue
		}
		r, g, b := m.DiffuseColor[0], m.DiffuseColor[1], m.DiffuseColor[2]
		if nearWhite(r, g, b) || nearGray(r, g, b) {
			continue
		}
		return RGBA{float32(r), float32(g), float32(b), 1}
	}

	return DefaultColor
}

func nearWhite(r, g, b float64) bool {
	return r > 0.9 && g > 0.9 && b > 0.9
}

func nearGray(r, g, b float64) bool {
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	min := r
	if g < min {
		min = g
	}
	if b < min {
		min = b
	}
	return max-min < 0.05
}
