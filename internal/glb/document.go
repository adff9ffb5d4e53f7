package glb

import (
	"github.com/qmuntal/gltf"

	"legacy2glb/internal/mesh"
)

// The legacy format carries no PBR data; every mesh gets the same
// fixed non-physical surface under its resolved base color.
const (
	materialMetallic  = 0
	materialRoughness = 0.8
)

// BuildDocument assembles the scene description: one scene, one node,
// one mesh with a single primitive over four accessors and four buffer
// views into the packed payload, and one material with the resolved
// base color.
func BuildDocument(name string, ex *mesh.Expanded, pk *Packed, color mesh.RGBA) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "legacy2glb"

	doc.Buffers = []*gltf.Buffer{{
		ByteLength: uint32(len(pk.Data)),
		Data:       pk.Data,
	}}

	doc.BufferViews = []*gltf.BufferView{
		bufferView(pk.Positions, gltf.TargetArrayBuffer),
		bufferView(pk.Normals, gltf.TargetArrayBuffer),
		bufferView(pk.UVs, gltf.TargetArrayBuffer),
		bufferView(pk.Indices, gltf.TargetElementArrayBuffer),
	}

	indexType := gltf.ComponentUshort
	if pk.IndexSize == 4 {
		indexType = gltf.ComponentUint
	}
	boundsMin, boundsMax := ex.BoundsMinMax()
	corners := uint32(len(ex.Positions))

	doc.Accessors = []*gltf.Accessor{
		{
			BufferView:    gltf.Index(0),
			ComponentType: gltf.ComponentFloat,
			Count:         corners,
			Type:          gltf.AccessorVec3,
			Min:           boundsMin,
			Max:           boundsMax,
		},
		{
			BufferView:    gltf.Index(1),
			ComponentType: gltf.ComponentFloat,
			Count:         corners,
			Type:          gltf.AccessorVec3,
		},
		{
			BufferView:    gltf.Index(2),
			ComponentType: gltf.ComponentFloat,
			Count:         corners,
			Type:          gltf.AccessorVec2,
		},
		{
			BufferView:    gltf.Index(3),
			ComponentType: indexType,
			Count:         uint32(len(ex.Indices)),
			Type:          gltf.AccessorScalar,
		},
	}

	doc.Materials = []*gltf.Material{{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{color[0], color[1], color[2], color[3]},
			MetallicFactor:  gltf.Float(materialMetallic),
			RoughnessFactor: gltf.Float(materialRoughness),
		},
	}}

	doc.Meshes = []*gltf.Mesh{{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{
				gltf.POSITION:   0,
				gltf.NORMAL:     1,
				gltf.TEXCOORD_0: 2,
			},
			Indices:  gltf.Index(3),
			Material: gltf.Index(0),
		}},
	}}

	doc.Nodes = []*gltf.Node{{Name: name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = []uint32{0}

	return doc
}

func bufferView(seg Segment, target gltf.Target) *gltf.BufferView {
	return &gltf.BufferView{
		Buffer:     0,
		ByteOffset: seg.ByteOffset,
		ByteLength: seg.ByteLength,
		Target:     target,
	}
}
