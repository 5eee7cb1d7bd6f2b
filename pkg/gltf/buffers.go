package gltf

import "os"

// parseAccessors reads the top-level accessors array. The record under
// construction is zeroed after each closing brace; accessor names and
// min/max bounds are schema-irrelevant here and are skipped.
func (p *parser) parseAccessors() *Error {
	c := &p.cur
	c.skipAfter('"') // closing quote of the section key
	var acc Accessor
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
				p.accessors = append(p.accessors, acc)
				acc = Accessor{}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("bufferView"):
			acc.BufferView = c.parsePositiveInt()
		case c.keyIs("byteOffset"):
			acc.ByteOffset = c.parsePositiveInt()
		case c.keyIs("componentType"):
			acc.ComponentType = c.parsePositiveInt() - componentTypeBase
		case c.keyIs("count"):
			acc.Count = c.parsePositiveInt()
		case c.keyIs("normalized"):
			c.skipAfter('"')
		case c.keyIs("name"):
			c.skipQuotedValue()
		case c.keyIs("type"):
			c.skipAfter('"') // closing quote of the key
			c.skipUntil('"')
			switch c.hashQuoted() {
			case hash8("SCALAR"):
				acc.Type = 1
			case hash8("VEC2"):
				acc.Type = 2
			case hash8("VEC3"):
				acc.Type = 3
			case hash8("VEC4"):
				acc.Type = 4
			case hash8("MAT4"):
				acc.Type = 16
			default:
				return parseErr(ErrUnknownAccessorVar, "accessor type")
			}
		case c.keyIs("min"), c.keyIs("max"):
			c.skipBalanced('[', ']')
		default:
			return parseErr(ErrUnknownAccessorVar, "")
		}
	}
}

// parseBufferViews reads the top-level bufferViews array. Keys are
// dispatched on their first eight characters.
func (p *parser) parseBufferViews() *Error {
	c := &p.cur
	c.skipAfter('"') // closing quote of the section key
	var view BufferView
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
				p.views = append(p.views, view)
				view = BufferView{}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}

		switch c.hashQuoted() {
		case hash8("buffer"):
			view.Buffer = c.parsePositiveInt()
		case hash8("byteOffs"): // byteOffset
			view.ByteOffset = c.parsePositiveInt()
		case hash8("byteLeng"): // byteLength
			view.ByteLength = c.parsePositiveInt()
		case hash8("byteStri"): // byteStride
			view.ByteStride = c.parsePositiveInt()
		case hash8("target"):
			view.Target = c.parsePositiveInt()
		case hash8("name"):
			c.skipAfter('"')
			c.skipAfter('"')
		default:
			return parseErr(ErrUnknownBufferViewVar, "")
		}
	}
}

// parseBuffers reads the top-level buffers array. A data URI is decoded
// in place; any other URI is resolved against the document directory and
// the sidecar file is loaded eagerly.
func (p *parser) parseBuffers() *Error {
	c := &p.cur
	c.skipAfter('"') // closing quote of the section key
	var buf Buffer
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
				p.buffers = append(p.buffers, buf)
				buf = Buffer{}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("uri"):
			c.skipAfter('"') // closing quote of the key
			c.skipUntil('"')
			if c.startsWith(`"data:`) {
				c.skipAfter(',')
				start := c.pos
				c.skipUntil('"')
				payload := c.src[start:c.pos]
				if c.pos < len(c.src) {
					c.pos++
				}
				buf.Data = make([]byte, base64DecodedLen(len(payload)))
				decodeBase64(buf.Data, payload)
			} else {
				uri := c.nextQuoted()
				sidecar := p.dir + string(uri)
				data, err := os.ReadFile(sidecar)
				if err != nil {
					return &Error{Kind: ErrBinNotExist, Detail: sidecar, Err: err}
				}
				buf.Data = data
			}
		case c.keyIs("byteLength"):
			buf.ByteLength = c.parsePositiveInt()
		default:
			return parseErr(ErrBufferParseFail, "")
		}
	}
}
