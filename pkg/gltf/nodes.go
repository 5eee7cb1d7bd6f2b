package gltf

import (
	"bytes"

	mth "github.com/Faultbox/gltfbundle/pkg/math"
)

// parseIntArray reads a JSON integer array in two passes: the first
// counts elements by counting commas before the closing bracket, the
// second fills a block allocated from the integer arena. The cursor is
// left on the closing bracket. An empty array yields a nil slice.
func (c *cursor) parseIntArray(a *IntArena) []int32 {
	for c.pos < len(c.src) && !isDigit(c.src[c.pos]) {
		if c.src[c.pos] == ']' {
			return nil
		}
		c.pos++
	}
	begin := c.pos

	n := 1
	for c.pos < len(c.src) {
		ch := c.src[c.pos]
		c.pos++
		if ch == ',' {
			n++
		}
		if ch == ']' {
			break
		}
	}

	c.pos = begin
	out := a.Alloc(n)
	n = 0
	for c.pos < len(c.src) && c.src[c.pos] != ']' {
		if isDigit(c.src[c.pos]) {
			out[n] = c.parsePositiveInt()
			n++
		} else {
			c.pos++
		}
	}
	return out[:n]
}

// parseNodes reads the top-level nodes array. Non-zero defaults are
// restored after each record: identity rotation, document scale, and -1
// for the mesh/camera index. A matrix key is decomposed on the spot into
// translation, rotation and scale.
func (p *parser) parseNodes() *Error {
	c := &p.cur
	c.skipAfter('[')

	reset := func() Node {
		return Node{
			Index:    -1,
			Rotation: [4]float32{0, 0, 0, 1},
			Scale:    [3]float32{p.scale, p.scale, p.scale},
		}
	}
	node := reset()

	for {
		for {
			ch := c.peek()
			if ch == 0 {
				return nil
			}
			if ch == '"' {
				break
			}
			if ch == '}' {
				p.nodes = append(p.nodes, node)
				node = reset()
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("mesh"):
			node.Type = NodeMesh
			node.Index = c.parsePositiveInt()
			continue // scalar value, no bracket to skip
		case c.keyIs("camera"):
			node.Type = NodeCamera
			node.Index = c.parsePositiveInt()
			continue
		case c.keyIs("children"):
			node.Children = c.parseIntArray(p.ints)
		case c.keyIs("matrix"):
			var m mth.Mat4
			for i := 0; i < 16; i++ {
				m[i] = c.parseFloat()
			}
			// glTF matrices are column-major: translation is the last
			// column, i.e. elements 12..14 of the flat array.
			node.Translation = [3]float32{m[12], m[13], m[14]}
			t := m.Transposed()
			q := mth.QuatFromMat4(t)
			node.Rotation = [4]float32{q.X, q.Y, q.Z, q.W}
			node.Scale = [3]float32{
				t.RowLength(0) * p.scale,
				t.RowLength(1) * p.scale,
				t.RowLength(2) * p.scale,
			}
		case c.keyIs("translation"):
			node.Translation[0] = c.parseFloat()
			node.Translation[1] = c.parseFloat()
			node.Translation[2] = c.parseFloat()
		case c.keyIs("rotation"):
			node.Rotation[0] = c.parseFloat()
			node.Rotation[1] = c.parseFloat()
			node.Rotation[2] = c.parseFloat()
			node.Rotation[3] = c.parseFloat()
		case c.keyIs("scale"):
			node.Scale[0] = c.parseFloat() * p.scale
			node.Scale[1] = c.parseFloat() * p.scale
			node.Scale[2] = c.parseFloat() * p.scale
		case c.keyIs("name"):
			node.Name = c.copyQuotedValue(p.strings)
			continue
		case c.keyIs("skin"):
			node.Skin = c.parsePositiveInt()
			continue
		default:
			return parseErr(ErrUnknownNodeVar, "")
		}

		c.skipAfter(']')
	}
}

// parseCameras reads the top-level cameras array, including the nested
// orthographic or perspective projection block.
func (p *parser) parseCameras() *Error {
	c := &p.cur
	c.skipAfter('"') // closing quote of the section key
	var cam Camera
	for {
		for {
			ch := c.peek()
			if ch == 0 {
				return nil
			}
			if ch == '"' {
				break
			}
			if ch == '}' {
				p.cameras = append(p.cameras, cam)
				cam = Camera{}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		key := c.nextQuoted()

		if bytes.Equal(key, []byte("name")) {
			cam.Name = p.strings.Intern(c.nextQuoted())
			continue
		}
		if bytes.Equal(key, []byte("type")) {
			v := c.nextQuoted()
			cam.Type = 0
			if len(v) > 0 && v[0] == 'p' {
				cam.Type = 1
			}
			continue
		}
		if !bytes.Equal(key, []byte("orthographic")) && !bytes.Equal(key, []byte("perspective")) {
			return parseErr(ErrUnknownCameraVar, string(key))
		}
		if err := p.parseProjection(&cam); err != nil {
			return err
		}
	}
}

// parseProjection reads the orthographic or perspective block of a
// camera, terminating on its closing brace.
func (p *parser) parseProjection(cam *Camera) *Error {
	c := &p.cur
	for {
		for c.peek() != '"' {
			if c.eof() {
				return nil
			}
			ch := c.src[c.pos]
			c.pos++
			if ch == '}' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("zfar"):
			cam.ZFar = c.parseFloat()
		case c.keyIs("znear"):
			cam.ZNear = c.parseFloat()
		case c.keyIs("aspectRatio"):
			cam.AspectRatio = c.parseFloat()
		case c.keyIs("yfov"):
			cam.YFov = c.parseFloat()
		case c.keyIs("xmag"):
			cam.XMag = c.parseFloat()
		case c.keyIs("ymag"):
			cam.YMag = c.parseFloat()
		default:
			return parseErr(ErrUnknownCameraVar, "projection")
		}
	}
}

// parseScenes reads the top-level scenes array. Node lists come from the
// integer arena; unrecognized keys are ignored.
func (p *parser) parseScenes() *Error {
	c := &p.cur
	c.skipAfter('[')
	var scene Scene
	for {
		for {
			ch := c.peek()
			if ch == 0 {
				return nil
			}
			if ch == '"' {
				break
			}
			if ch == '}' {
				p.scenes = append(p.scenes, scene)
				scene = Scene{}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("nodes"):
			scene.Nodes = c.parseIntArray(p.ints)
			c.skipAfter(']')
		case c.keyIs("name"):
			scene.Name = c.copyQuotedValue(p.strings)
		}
	}
}
