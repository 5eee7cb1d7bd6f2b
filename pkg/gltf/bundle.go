package gltf

// SceneBundle is the fully resolved output of a parse. It owns every
// entity slice, the buffer payloads, and the two arenas backing interned
// names and integer lists. After Parse returns, the bundle belongs
// exclusively to the caller; the library does not synchronize mutation.
type SceneBundle struct {
	Scenes      []Scene
	Nodes       []Node
	Meshes      []Mesh
	Materials   []Material
	Textures    []Texture
	Images      []Image
	Samplers    []Sampler
	Cameras     []Camera
	Skins       []Skin
	Animations  []Animation
	Buffers     []Buffer
	BufferViews []BufferView
	Accessors   []Accessor

	DefaultScene  int32
	TotalVertices int32
	TotalIndices  int32
	Scale         float32
	Error         ErrorKind

	strings *StringArena
	ints    *IntArena
}

// FreeBuffers releases only the raw buffer payloads, for callers that
// have copied all referenced data into their own vertex arrays. Resolved
// spans on primitives, skins and animation samplers must not be used
// afterwards.
func (b *SceneBundle) FreeBuffers() {
	for i := range b.Buffers {
		b.Buffers[i].Data = nil
	}
	b.Buffers = nil
}

// Free releases everything the bundle owns and zeroes it.
func (b *SceneBundle) Free() {
	for i := range b.Buffers {
		b.Buffers[i].Data = nil
	}
	if b.strings != nil {
		b.strings.Free()
	}
	if b.ints != nil {
		b.ints.Free()
	}
	for i := range b.Meshes {
		b.Meshes[i].Primitives = nil
	}
	for i := range b.Animations {
		b.Animations[i].Channels = nil
		b.Animations[i].Samplers = nil
	}
	*b = SceneBundle{}
}
