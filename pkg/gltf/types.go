package gltf

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// componentTypeBase is subtracted from raw accessor component types so
// GL_BYTE (0x1400) becomes 0. The rebased value is what the bundle stores.
const componentTypeBase = 0x1400

// filterBase is subtracted from raw sampler filters so GL_NEAREST (0x2600)
// becomes 0 and GL_LINEAR becomes 1.
const filterBase = 0x2600

// Accessor is a typed, offset-bounded view into a BufferView.
type Accessor struct {
	BufferView    int32
	ComponentType int32 // raw componentType minus 0x1400
	Count         int32
	ByteOffset    int32
	Type          int32 // 1 SCALAR, 2 VEC2, 3 VEC3, 4 VEC4, 16 MAT4
}

// BufferView is an offset-and-length window inside a Buffer.
type BufferView struct {
	Buffer     int32
	ByteOffset int32
	ByteLength int32
	Target     int32 // opaque GL target tag
	ByteStride int32
}

// Buffer owns a contiguous byte payload, loaded from a sidecar file or
// decoded from an inline base64 data URL.
type Buffer struct {
	Data       []byte
	ByteLength int32
}

// Image stores the filesystem path of a texture image. Pixels are never
// decoded here.
type Image struct {
	Path string
}

// Texture pairs a sampler with an image source.
type Texture struct {
	Sampler int32
	Source  int32
	Name    string
}

// Sampler wrap modes, mapped from the GL enums to a compact range.
const (
	WrapRepeat         = 0 // GL_REPEAT          0x2901
	WrapClampToEdge    = 1 // GL_CLAMP_TO_EDGE   0x812F
	WrapClampToBorder  = 2 // GL_CLAMP_TO_BORDER 0x812D
	WrapMirroredRepeat = 3 // GL_MIRRORED_REPEAT 0x8370
)

// Sampler holds texture filtering and wrapping state.
type Sampler struct {
	MagFilter uint8 // raw filter minus 0x2600: 0 nearest, 1 linear
	MinFilter uint8
	WrapS     uint8
	WrapT     uint8
}

// MaterialTexture is one texture slot of a material. Scale and Strength
// are fixed-point shorts storing round(value * 400).
type MaterialTexture struct {
	Scale    int16
	Index    int8
	TexCoord int8
	Strength int16
}

// Fixed slots in Material.Textures.
const (
	NormalTexture    = 0
	OcclusionTexture = 1
	EmissiveTexture  = 2
)

// AlphaMode selects how the material's alpha channel is interpreted.
type AlphaMode uint8

const (
	AlphaOpaque AlphaMode = iota
	AlphaMask
	AlphaBlend
)

// Material holds a PBR metallic-roughness material. Factor fields are
// fixed-point shorts (round(value * 400)); BaseColorFactor is a packed
// little-endian RGBA8 word.
type Material struct {
	Name                     string
	BaseColorTexture         MaterialTexture
	MetallicRoughnessTexture MaterialTexture
	BaseColorFactor          uint32
	MetallicFactor           int16
	RoughnessFactor          int16
	Textures                 [3]MaterialTexture // normal, occlusion, emissive
	EmissiveFactor           [3]int16
	AlphaMode                AlphaMode
	AlphaCutoff              float32
	DoubleSided              bool
}

// Vertex attribute bits, in slot order. The bit ordering is the slot
// ordering: Position always precedes Normal, Normal precedes TexCoord0,
// and so on, regardless of the order attributes appear in the document.
const (
	AttribPosition  uint32 = 1 << iota // POSITION
	AttribNormal                       // NORMAL
	AttribTexCoord0                    // TEXCOORD_0
	AttribTangent                      // TANGENT
	AttribTexCoord1                    // TEXCOORD_1
	AttribJoints                       // JOINTS_0
	AttribWeights                      // WEIGHTS_0

	attribCount = 7
)

// AttribSlot is one vertex attribute of a primitive. Accessor is the
// accessor index read from the document; Data is filled by resolution and
// points into the owning buffer's bytes.
type AttribSlot struct {
	Accessor int32
	Data     []byte
}

// Primitive is one drawable submesh: indices plus a set of vertex
// attributes. Slots are kept in increasing attribute-bit order.
type Primitive struct {
	Attributes uint32
	Slots      []AttribSlot

	IndicesAccessor int32
	Indices         []byte // resolved span into a buffer
	IndexType       int32  // rebased component type of the indices
	Mode            int32
	Material        int32 // -1 if absent

	NumVertices int32
	NumIndices  int32

	// Joint and weight layout recorded for vertex assembly.
	JointType    int16
	JointCount   int16
	JointStride  int16
	WeightType   int16
	WeightStride int16
}

// slotIndex returns the slot position for an attribute bit: the number of
// lower attribute bits present. Only meaningful when bit is set.
func (p *Primitive) slotIndex(bit uint32) int {
	return bits.OnesCount32(p.Attributes & (bit - 1))
}

// setAttribute records bit as present and inserts its accessor index at
// the slot position dictated by the bit ordering.
func (p *Primitive) setAttribute(bit uint32, accessor int32) {
	p.Attributes |= bit
	i := p.slotIndex(bit)
	p.Slots = append(p.Slots, AttribSlot{})
	copy(p.Slots[i+1:], p.Slots[i:])
	p.Slots[i] = AttribSlot{Accessor: accessor}
}

// Slot returns the attribute slot for bit, or nil when the primitive does
// not carry that attribute.
func (p *Primitive) Slot(bit uint32) *AttribSlot {
	if p.Attributes&bit == 0 {
		return nil
	}
	return &p.Slots[p.slotIndex(bit)]
}

// Mesh is a named, ordered sequence of primitives.
type Mesh struct {
	Name       string
	Primitives []Primitive
}

// Node types.
const (
	NodeMesh   = 0
	NodeCamera = 1
)

// Node is one element of the scene graph. Index refers to a mesh or a
// camera depending on Type, -1 when the node references neither.
type Node struct {
	Name        string
	Type        int32
	Index       int32
	Children    []int32 // backed by the bundle's integer arena
	Translation [3]float32
	Rotation    [4]float32 // x, y, z, w quaternion
	Scale       [3]float32
	Skin        int32
}

// Camera carries either an orthographic or a perspective projection.
type Camera struct {
	Name        string
	Type        int32 // 0 orthographic, 1 perspective
	ZNear       float32
	ZFar        float32
	AspectRatio float32
	YFov        float32
	XMag        float32
	YMag        float32
}

// Scene is a named list of root node indices.
type Scene struct {
	Name  string
	Nodes []int32 // backed by the bundle's integer arena
}

// Skin binds a joint hierarchy to a mesh. InverseBindAccessor is the
// accessor index read from the document; InverseBindMatrices is resolved
// to the buffer bytes from the accessor's offset to the end of its buffer
// view, where the 4x4 float matrices of the joints begin. Its length is
// not trimmed to the joint count.
type Skin struct {
	Name                string
	Skeleton            int32 // -1 if absent
	InverseBindAccessor int32
	InverseBindMatrices []byte
	Joints              []int32 // backed by the bundle's integer arena
}

// Animation channel target paths.
const (
	TargetPathTranslation = 0
	TargetPathRotation    = 1
	TargetPathScale       = 2
)

// AnimChannel routes one sampler's output to a node property.
type AnimChannel struct {
	Sampler    int32
	TargetNode int32
	TargetPath uint8
}

// Animation sampler interpolation modes.
const (
	InterpolationLinear      = 0
	InterpolationStep        = 1
	InterpolationCubicSpline = 2
)

// AnimSampler maps timestamps to values. The accessor fields hold the
// indices read from the document; Input and Output are resolved to float
// spans inside a buffer. Count is the number of keyframes, clamped to the
// shorter of the two accessors. NumComponents is the per-keyframe float
// count of the output (1, 2, 3, 4 or 16).
type AnimSampler struct {
	InputAccessor  int32
	OutputAccessor int32
	Input          []byte
	Output         []byte
	Count          int32
	NumComponents  int32
	Interpolation  uint8
}

// InputAt returns the i-th keyframe timestamp.
func (s *AnimSampler) InputAt(i int) float32 {
	return floatAt(s.Input, i)
}

// OutputAt returns the i-th float of the output stream.
func (s *AnimSampler) OutputAt(i int) float32 {
	return floatAt(s.Output, i)
}

func floatAt(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
}

// Animation is a named set of channels driven by samplers. Duration is
// the largest final keyframe timestamp over all samplers.
type Animation struct {
	Name     string
	Duration float32
	Channels []AnimChannel
	Samplers []AnimSampler
}
