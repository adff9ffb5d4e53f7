package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"legacy2glb/internal/glb"
	"legacy2glb/internal/legacy"
	"legacy2glb/internal/logger"
	"legacy2glb/internal/mesh"
)

// Stats summarizes one successful conversion.
type Stats struct {
	Corners   int
	Triangles int
	IndexSize int
	BaseColor mesh.RGBA
}

// ConvertFile converts one legacy mesh file into a binary container at
// dstPath. The conversion is stateless: decode, expand, resolve color,
// pack, build the scene document, write.
func ConvertFile(srcPath, dstPath string) (Stats, error) {
	doc, err := legacy.Parse(srcPath)
	if err != nil {
		return Stats{}, err
	}

	ex, err := mesh.Expand(doc)
	if err != nil {
		return Stats{}, fmt.Errorf("batch: expand %s: %w", srcPath, err)
	}
	if len(ex.Positions) == 0 {
		logger.Log.Warn("document has no faces, writing empty container",
			zap.String("file", srcPath))
	}

	color := mesh.ResolveColor(filepath.Base(srcPath), doc.Materials)
	pk := glb.Pack(ex)
	name := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	scene := glb.BuildDocument(name, ex, pk, color)

	if err := glb.WriteFile(dstPath, scene, pk.Data); err != nil {
		return Stats{}, err
	}

	return Stats{
		Corners:   len(ex.Positions),
		Triangles: len(ex.Indices) / 3,
		IndexSize: pk.IndexSize,
		BaseColor: color,
	}, nil
}
