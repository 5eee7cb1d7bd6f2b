package gltf

import (
	"strings"
	"testing"

	"github.com/chewxy/math32"
)

func TestParseSkins(t *testing.T) {
	doc := `{"skins":[{"name":"rig","skeleton":2,"inverseBindMatrices":7,"joints":[1,2,3]}]}`
	bundle := mustParse(t, doc, 1)

	if len(bundle.Skins) != 1 {
		t.Fatalf("expected 1 skin, got %d", len(bundle.Skins))
	}
	skin := bundle.Skins[0]
	if skin.Name != "rig" {
		t.Errorf("name = %q", skin.Name)
	}
	if skin.Skeleton != 2 {
		t.Errorf("skeleton = %d", skin.Skeleton)
	}
	if skin.InverseBindAccessor != 7 {
		t.Errorf("inverse bind accessor = %d", skin.InverseBindAccessor)
	}
	if len(skin.Joints) != 3 || skin.Joints[0] != 1 || skin.Joints[2] != 3 {
		t.Errorf("joints = %v", skin.Joints)
	}
}

func TestParseSkinsDefaultSkeleton(t *testing.T) {
	doc := `{"skins":[{"joints":[0]}]}`
	bundle := mustParse(t, doc, 1)

	if got := bundle.Skins[0].Skeleton; got != -1 {
		t.Errorf("default skeleton = %d, want -1", got)
	}
}

func TestParseAnimations(t *testing.T) {
	doc := `{"animations":[{
		"name":"walk",
		"channels":[
			{"sampler":0,"target":{"node":3,"path":"rotation"}},
			{"sampler":1,"target":{"node":4,"path":"translation"}},
			{"target":{"path":"scale","node":5},"sampler":2}
		],
		"samplers":[
			{"input":0,"output":1,"interpolation":"LINEAR"},
			{"input":0,"output":2,"interpolation":"STEP"},
			{"input":0,"output":3,"interpolation":"CUBICSPLINE"}
		]
	}]}`
	bundle := mustParse(t, doc, 1)

	if len(bundle.Animations) != 1 {
		t.Fatalf("expected 1 animation, got %d", len(bundle.Animations))
	}
	anim := bundle.Animations[0]
	if anim.Name != "walk" {
		t.Errorf("name = %q", anim.Name)
	}

	wantChannels := []AnimChannel{
		{Sampler: 0, TargetNode: 3, TargetPath: TargetPathRotation},
		{Sampler: 1, TargetNode: 4, TargetPath: TargetPathTranslation},
		{Sampler: 2, TargetNode: 5, TargetPath: TargetPathScale},
	}
	if len(anim.Channels) != len(wantChannels) {
		t.Fatalf("expected %d channels, got %d", len(wantChannels), len(anim.Channels))
	}
	for i, want := range wantChannels {
		if anim.Channels[i] != want {
			t.Errorf("channel %d = %+v, want %+v", i, anim.Channels[i], want)
		}
	}

	wantInterp := []uint8{InterpolationLinear, InterpolationStep, InterpolationCubicSpline}
	if len(anim.Samplers) != len(wantInterp) {
		t.Fatalf("expected %d samplers, got %d", len(wantInterp), len(anim.Samplers))
	}
	for i, want := range wantInterp {
		if anim.Samplers[i].Interpolation != want {
			t.Errorf("sampler %d interpolation = %d, want %d", i, anim.Samplers[i].Interpolation, want)
		}
		if anim.Samplers[i].InputAccessor != 0 {
			t.Errorf("sampler %d input accessor = %d", i, anim.Samplers[i].InputAccessor)
		}
	}
	if anim.Samplers[1].OutputAccessor != 2 {
		t.Errorf("sampler 1 output accessor = %d", anim.Samplers[1].OutputAccessor)
	}
}

// timestampDoc carries three float32 keyframe times {0, 0.5, 1.25} in a
// data-URI buffer, an input accessor over them, and an output accessor.
const timestampDoc = `{
	"buffers":[{"uri":"data:application/octet-stream;base64,AAAAAAAAAD8AAKA/","byteLength":12}],
	"bufferViews":[{"buffer":0,"byteOffset":0,"byteLength":12}],
	"accessors":[
		{"bufferView":0,"componentType":5126,"count":3,"type":"SCALAR"},
		{"bufferView":0,"componentType":5126,"count":%COUNT%,"type":"VEC3"}
	],
	"animations":[{
		"channels":[{"sampler":0,"target":{"node":0,"path":"scale"}}],
		"samplers":[{"input":0,"output":1,"interpolation":"LINEAR"}]
	}]
}`

func timestampDocWithCount(count string) string {
	return strings.Replace(timestampDoc, "%COUNT%", count, 1)
}

func TestResolveAnimationDuration(t *testing.T) {
	bundle := mustParse(t, timestampDocWithCount("3"), 1)

	anim := bundle.Animations[0]
	smp := anim.Samplers[0]
	if smp.Count != 3 {
		t.Fatalf("sampler count = %d, want 3", smp.Count)
	}
	if smp.NumComponents != 3 {
		t.Errorf("numComponents = %d, want 3", smp.NumComponents)
	}
	if len(smp.Input) < 12 {
		t.Fatalf("input span = %d bytes", len(smp.Input))
	}
	if got := smp.InputAt(0); got != 0 {
		t.Errorf("input[0] = %v", got)
	}
	if got := smp.InputAt(1); got != 0.5 {
		t.Errorf("input[1] = %v", got)
	}
	if got := smp.InputAt(2); got != 1.25 {
		t.Errorf("input[2] = %v", got)
	}
	if math32.Abs(anim.Duration-1.25) > 0.0001 {
		t.Errorf("duration = %v, want 1.25", anim.Duration)
	}
}

func TestResolveAnimationCountClamped(t *testing.T) {
	// an output accessor shorter than the input caps the keyframe count
	bundle := mustParse(t, timestampDocWithCount("2"), 1)

	anim := bundle.Animations[0]
	if got := anim.Samplers[0].Count; got != 2 {
		t.Fatalf("sampler count = %d, want 2", got)
	}
	if math32.Abs(anim.Duration-0.5) > 0.0001 {
		t.Errorf("duration = %v, want input[1] = 0.5", anim.Duration)
	}
}

func TestResolveInverseBindMatrices(t *testing.T) {
	doc := `{
		"buffers":[{"uri":"data:application/octet-stream;base64,AAAAAAAAAD8AAKA/","byteLength":12}],
		"bufferViews":[{"buffer":0,"byteOffset":0,"byteLength":12}],
		"accessors":[{"bufferView":0,"byteOffset":4,"componentType":5126,"count":1,"type":"MAT4"}],
		"skins":[{"inverseBindMatrices":0,"joints":[0]}]
	}`
	bundle := mustParse(t, doc, 1)

	skin := bundle.Skins[0]
	if len(skin.InverseBindMatrices) != 8 {
		t.Fatalf("span = %d bytes, want 8 (offset 4 to view end)", len(skin.InverseBindMatrices))
	}
	// offset 4 lands on the little-endian bytes of 0.5
	if got := floatAt(skin.InverseBindMatrices, 0); got != 0.5 {
		t.Errorf("first float = %v, want 0.5", got)
	}

	buf := bundle.Buffers[0].Data
	if &skin.InverseBindMatrices[0] != &buf[4] {
		t.Error("span should alias the owning buffer's bytes")
	}
}
