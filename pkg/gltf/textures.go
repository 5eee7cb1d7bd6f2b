package gltf

// parseImages reads the top-level images array. A record is produced
// only when a uri key is seen; the stored path joins the document
// directory with the relative URI. mimeType, name and bufferView keys
// cause no state change.
func (p *parser) parseImages() *Error {
	c := &p.cur
	c.skipAfter('[')
	for {
		for {
			ch := c.peek()
			if ch == 0 {
				return nil
			}
			if ch == '"' {
				break
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		if c.keyIs("uri") {
			c.skipAfter('"') // closing quote of the key
			uri := c.nextQuoted()
			p.images = append(p.images, Image{Path: p.strings.Join(p.dir, uri)})
		}
	}
}

// parseTextures reads the top-level textures array.
func (p *parser) parseTextures() *Error {
	c := &p.cur
	c.skipAfter('"') // closing quote of the section key
	var tex Texture
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
				p.textures = append(p.textures, tex)
				tex = Texture{}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("sampler"):
			tex.Sampler = c.parsePositiveInt()
		case c.keyIs("source"):
			tex.Source = c.parsePositiveInt()
		case c.keyIs("name"):
			tex.Name = c.copyQuotedValue(p.strings)
		default:
			return parseErr(ErrUnknownTextureVar, "")
		}
	}
}

// wrapMode maps a GL wrap enum to the compact 0..3 range.
func wrapMode(raw int32) (uint8, bool) {
	switch raw {
	case 0x2901:
		return WrapRepeat, true
	case 0x812F:
		return WrapClampToEdge, true
	case 0x812D:
		return WrapClampToBorder, true
	case 0x8370:
		return WrapMirroredRepeat, true
	}
	return 0, false
}

// parseSamplers reads the top-level samplers array. Filters are rebased
// so GL_NEAREST becomes 0; wrap modes map through wrapMode.
func (p *parser) parseSamplers() *Error {
	c := &p.cur
	c.skipAfter('[')
	var smp Sampler
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
				p.samplers = append(p.samplers, smp)
				smp = Sampler{}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("magFilter"):
			smp.MagFilter = uint8(c.parsePositiveInt() - filterBase)
		case c.keyIs("minFilter"):
			smp.MinFilter = uint8(c.parsePositiveInt() - filterBase)
		case c.keyIs("wrapS"):
			w, ok := wrapMode(c.parsePositiveInt())
			if !ok {
				return parseErr(ErrUnknown, "sampler wrapS")
			}
			smp.WrapS = w
		case c.keyIs("wrapT"):
			w, ok := wrapMode(c.parsePositiveInt())
			if !ok {
				return parseErr(ErrUnknown, "sampler wrapT")
			}
			smp.WrapT = w
		default:
			return parseErr(ErrUnknown, "sampler")
		}
	}
}
