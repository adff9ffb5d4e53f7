package batch

import (
	"encoding/json"
	"os"
	"path/filepath"

	"legacy2glb/internal/mesh"
)

// ManifestEntry describes one converted mesh in the output manifest.
type ManifestEntry struct {
	Source    string    `json:"source"`
	Output    string    `json:"output"`
	Corners   int       `json:"corners"`
	Triangles int       `json:"triangles"`
	BaseColor mesh.RGBA `json:"base_color"`
}

// WriteManifest writes manifest.json listing every successful
// conversion of a batch run.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		entries = append(entries, ManifestEntry{
			Source:    filepath.Base(r.Source),
			Output:    filepath.Base(r.Output),
			Corners:   r.Stats.Corners,
			Triangles: r.Stats.Triangles,
			BaseColor: r.Stats.BaseColor,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
