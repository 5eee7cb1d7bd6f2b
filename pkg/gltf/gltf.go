// Package gltf parses textual glTF scene descriptions into a fully
// resolved in-memory bundle. Mesh primitives, skins and animation
// samplers come out carrying byte spans into the loaded buffer payloads
// instead of accessor indices, so consumers can assemble vertex data
// without another dereference pass.
//
// The parser is specialized to the glTF schema rather than being a
// general JSON parser: it dispatches on key prefixes, tolerates
// permissive whitespace, and rejects unknown sibling keys inside most
// recognized sections; the scenes, skins, animations and images sections
// pass over keys they do not recognize. Extensions are not supported: the
// extensionsUsed and extensionsRequired lists, extension objects on
// materials and material texture slots, and asset metadata are skipped
// wholesale; an extensions key anywhere else is handled like any other
// unrecognized key. Parsing is single-threaded
// and synchronous, and reentrant across distinct bundles.
package gltf

import "os"

// Initial slab capacities for the two arenas. Both are powers of two; a
// new slab doubles the size until it can hold the request that opened it.
const (
	stringArenaInit = 2048
	intArenaInit    = 512
)

// parser carries the cursor, the arenas, and every section's output
// while a document is being walked.
type parser struct {
	cur   cursor
	dir   string // document directory including the trailing separator
	scale float32

	strings *StringArena
	ints    *IntArena

	accessors  []Accessor
	views      []BufferView
	buffers    []Buffer
	images     []Image
	textures   []Texture
	samplers   []Sampler
	materials  []Material
	meshes     []Mesh
	nodes      []Node
	cameras    []Camera
	scenes     []Scene
	skins      []Skin
	animations []Animation

	// scratch for the animation currently being parsed
	channels     []AnimChannel
	animSamplers []AnimSampler

	defaultScene  int32
	totalVertices int32
	totalIndices  int32
}

// run walks the document by top-level key dispatch, delegating to the
// section parsers. It terminates at end of input or on the first
// section error.
func (p *parser) run() *Error {
	c := &p.cur
	for {
		c.skipUntil('"')
		if c.eof() {
			return nil
		}
		c.pos++ // opening quote of the descriptor

		var err *Error
		switch {
		case c.keyIs("accessors"):
			err = p.parseAccessors()
		case c.keyIs("scenes"):
			err = p.parseScenes()
		case c.keyIs("scene"):
			p.defaultScene = c.parsePositiveInt()
		case c.keyIs("bufferViews"):
			err = p.parseBufferViews()
		case c.keyIs("buffers"):
			err = p.parseBuffers()
		case c.keyIs("images"):
			err = p.parseImages()
		case c.keyIs("textures"):
			err = p.parseTextures()
		case c.keyIs("meshes"):
			err = p.parseMeshes()
		case c.keyIs("materials"):
			err = p.parseMaterials()
		case c.keyIs("nodes"):
			err = p.parseNodes()
		case c.keyIs("samplers"):
			err = p.parseSamplers()
		case c.keyIs("cameras"):
			err = p.parseCameras()
		case c.keyIs("skins"):
			err = p.parseSkins()
		case c.keyIs("animations"):
			err = p.parseAnimations()
		case c.keyIs("asset"):
			c.skipBalanced('{', '}')
		case c.keyIs("extensionsUsed"), c.keyIs("extensionsRequ"): // extensionsRequired
			c.skipBalanced('[', ']')
		default:
			err = parseErr(ErrUnknownDescriptor, "")
		}
		if err != nil {
			return err
		}
	}
}

// Parse reads a glTF document held in data. Relative buffer and image
// URIs resolve against dir, which must either be empty or end with a
// path separator. Node scales are multiplied by scale, which also
// becomes the default scale of nodes without a transform.
//
// On failure no partial bundle is returned: the error is a *Error whose
// Kind identifies the failing section.
func Parse(data []byte, dir string, scale float32) (*SceneBundle, error) {
	p := &parser{
		cur:     cursor{src: data},
		dir:     dir,
		scale:   scale,
		strings: NewStringArena(stringArenaInit),
		ints:    NewIntArena(intArenaInit),
	}

	if err := p.run(); err != nil {
		return nil, err
	}
	p.resolve()

	return &SceneBundle{
		Scenes:      p.scenes,
		Nodes:       p.nodes,
		Meshes:      p.meshes,
		Materials:   p.materials,
		Textures:    p.textures,
		Images:      p.images,
		Samplers:    p.samplers,
		Cameras:     p.cameras,
		Skins:       p.skins,
		Animations:  p.animations,
		Buffers:     p.buffers,
		BufferViews: p.views,
		Accessors:   p.accessors,

		DefaultScene:  p.defaultScene,
		TotalVertices: p.totalVertices,
		TotalIndices:  p.totalIndices,
		Scale:         scale,
		Error:         ErrNone,

		strings: p.strings,
		ints:    p.ints,
	}, nil
}

// ParseFile loads and parses the document at path. Sidecar buffer files
// and image paths resolve relative to the document's directory.
func ParseFile(path string, scale float32) (*SceneBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: ErrFileNotFound, Detail: path, Err: err}
	}
	return Parse(data, docDir(path), scale)
}

// docDir returns the directory prefix of path up to and including the
// last path separator, or "" when path has none.
func docDir(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[:i+1]
		}
	}
	return ""
}
