package main

import (
	"fmt"
	"math/bits"

	"github.com/Faultbox/gltfbundle/pkg/gltf"
)

func dumpNodes(bundle *gltf.SceneBundle, precision int) {
	for i, node := range bundle.Nodes {
		kind := "-"
		switch {
		case node.Type == gltf.NodeMesh && node.Index >= 0:
			kind = fmt.Sprintf("mesh %d", node.Index)
		case node.Type == gltf.NodeCamera && node.Index >= 0:
			kind = fmt.Sprintf("camera %d", node.Index)
		}
		fmt.Printf("node %d %q (%s)\n", i, node.Name, kind)
		fmt.Printf("  translation %s  rotation %s  scale %s\n",
			fmtVec(node.Translation[:], precision),
			fmtVec(node.Rotation[:], precision),
			fmtVec(node.Scale[:], precision))
		if len(node.Children) > 0 {
			fmt.Printf("  children %v\n", node.Children)
		}
	}
}

func dumpMeshes(bundle *gltf.SceneBundle) {
	for i, mesh := range bundle.Meshes {
		fmt.Printf("mesh %d %q, %d primitives\n", i, mesh.Name, len(mesh.Primitives))
		for pi, prim := range mesh.Primitives {
			fmt.Printf("  primitive %d: %d vertices, %d indices, material %d, attributes %s\n",
				pi, prim.NumVertices, prim.NumIndices, prim.Material, attribNames(prim.Attributes))
		}
	}
}

func dumpMaterials(bundle *gltf.SceneBundle) {
	modes := [...]string{"OPAQUE", "MASK", "BLEND"}
	for i, mat := range bundle.Materials {
		mode := "OPAQUE"
		if int(mat.AlphaMode) < len(modes) {
			mode = modes[mat.AlphaMode]
		}
		fmt.Printf("material %d %q: baseColor %08x metallic %.3f roughness %.3f alpha %s doubleSided %v\n",
			i, mat.Name, mat.BaseColorFactor,
			float32(mat.MetallicFactor)/400.0, float32(mat.RoughnessFactor)/400.0,
			mode, mat.DoubleSided)
	}
}

func dumpAnimations(bundle *gltf.SceneBundle) {
	paths := [...]string{"translation", "rotation", "scale"}
	for i, anim := range bundle.Animations {
		fmt.Printf("animation %d %q: %.3fs\n", i, anim.Name, anim.Duration)
		for ci, ch := range anim.Channels {
			path := "?"
			if int(ch.TargetPath) < len(paths) {
				path = paths[ch.TargetPath]
			}
			fmt.Printf("  channel %d: node %d %s via sampler %d\n", ci, ch.TargetNode, path, ch.Sampler)
		}
		for si, smp := range anim.Samplers {
			fmt.Printf("  sampler %d: %d keys x %d floats\n", si, smp.Count, smp.NumComponents)
		}
	}
}

var attribLabels = [...]string{
	"POSITION", "NORMAL", "TEXCOORD_0", "TANGENT", "TEXCOORD_1", "JOINTS_0", "WEIGHTS_0",
}

// attribNames renders an attribute mask in slot order.
func attribNames(mask uint32) string {
	if mask == 0 {
		return "none"
	}
	out := ""
	for mask != 0 {
		bit := mask & -mask
		i := bits.TrailingZeros32(bit)
		if out != "" {
			out += "+"
		}
		if i < len(attribLabels) {
			out += attribLabels[i]
		} else {
			out += "?"
		}
		mask &^= bit
	}
	return out
}

func fmtVec(v []float32, precision int) string {
	out := "("
	for i, f := range v {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%.*f", precision, f)
	}
	return out + ")"
}
