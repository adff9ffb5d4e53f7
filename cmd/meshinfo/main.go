package main

import (
	"fmt"
	"os"

	"legacy2glb/internal/legacy"
	"legacy2glb/internal/mesh"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: meshinfo <mesh.json> ...")
		os.Exit(1)
	}

	for _, arg := range os.Args[1:] {
		doc, err := legacy.Parse(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", arg, err)
			continue
		}

		fmt.Printf("\n=== %s ===\n", arg)
		fmt.Printf("  scale=%g vertices=%d normals=%d uvChannels=%d materials=%d\n",
			doc.Scale, len(doc.Vertices)/3, len(doc.Normals)/3, len(doc.UVs), len(doc.Materials))

		ex, err := mesh.Expand(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Decode error: %v\n", err)
			continue
		}

		bits := 16
		if ex.IndexSize() == 4 {
			bits = 32
		}
		fmt.Printf("  corners=%d triangles=%d indexWidth=%d-bit\n",
			len(ex.Positions), len(ex.Indices)/3, bits)

		if min, max := ex.BoundsMinMax(); min != nil {
			fmt.Printf("  bbox min=(%g, %g, %g) max=(%g, %g, %g)\n",
				min[0], min[1], min[2], max[0], max[1], max[2])
		} else {
			fmt.Println("  bbox: empty mesh")
		}

		c := mesh.ResolveColor(arg, doc.Materials)
		fmt.Printf("  baseColor=(%.2f, %.2f, %.2f)\n", c[0], c[1], c[2])
	}
}
