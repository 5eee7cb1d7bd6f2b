package gltf

import "bytes"

// parseAttributes reads a primitive's attributes object. Each known
// attribute name sets its bit in the mask and stores the accessor index
// at the slot position dictated by the bit ordering, so slots always end
// up sorted Position, Normal, TexCoord0, ... regardless of source order.
// TEXCOORD_n for n >= 2 is consumed without writing a slot.
func (p *parser) parseAttributes(prim *Primitive) *Error {
	c := &p.cur
	c.skipAfter('"') // closing quote of the attributes key
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

		var bit uint32
		switch {
		case c.keyIs("POSITION"):
			bit = AttribPosition
		case c.keyIs("NORMAL"):
			bit = AttribNormal
		case c.keyIs("TEXCOORD_0"):
			bit = AttribTexCoord0
		case c.keyIs("TANGENT"):
			bit = AttribTangent
		case c.keyIs("TEXCOORD_1"):
			bit = AttribTexCoord1
		case c.keyIs("JOINTS_0"):
			bit = AttribJoints
		case c.keyIs("WEIGHTS_0"):
			bit = AttribWeights
		case c.keyIs("TEXCOORD_"): // no more than two texture coords
			c.skipAfter('"')
			continue
		default:
			return parseErr(ErrUnknownAttrib, "")
		}

		c.skipAfter('"') // closing quote of the key
		if prim.Attributes&bit == 0 {
			prim.setAttribute(bit, c.parsePositiveInt())
		}
	}
}

// parseMeshes reads the top-level meshes array. Each mesh owns its
// primitive list; a primitive record is appended whenever its closing
// brace is seen, with the material default restored afterwards.
func (p *parser) parseMeshes() *Error {
	c := &p.cur
	c.skipAfter('"') // closing quote of the section key
	var mesh Mesh
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
				p.meshes = append(p.meshes, mesh)
				mesh = Mesh{}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		key := c.nextQuoted()

		if bytes.Equal(key, []byte("name")) {
			mesh.Name = p.strings.Intern(c.nextQuoted())
			continue
		}
		if !bytes.Equal(key, []byte("primitives")) {
			return parseErr(ErrUnknownMeshVar, string(key))
		}

		prim := Primitive{Material: -1}
	primitives:
		for {
			for c.peek() != '"' {
				if c.eof() {
					return nil
				}
				ch := c.src[c.pos]
				c.pos++
				if ch == '}' {
					mesh.Primitives = append(mesh.Primitives, prim)
					prim = Primitive{Material: -1}
				}
				if ch == ']' {
					break primitives
				}
			}
			c.pos++ // opening quote of the key

			switch {
			case c.keyIs("attributes"):
				if err := p.parseAttributes(&prim); err != nil {
					return err
				}
			case c.keyIs("indices"):
				prim.IndicesAccessor = c.parsePositiveInt()
			case c.keyIs("mode"):
				prim.Mode = c.parsePositiveInt()
			case c.keyIs("material"):
				prim.Material = c.parsePositiveInt()
			default:
				return parseErr(ErrUnknownMeshPrimitiveVar, "")
			}
		}
	}
}
