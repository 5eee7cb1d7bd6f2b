package gltf

import "bytes"

// packColorRGBA packs four 0..1 channel factors into a little-endian
// RGBA8 word, clamping each channel.
func packColorRGBA(c [4]float32) uint32 {
	var packed uint32
	for i, v := range c {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		packed |= uint32(v*255.0) << (uint(i) * 8)
	}
	return packed
}

// parseMaterialTexture reads one texture-slot object: index, texCoord,
// and the fixed-point scale and strength scalars.
func (p *parser) parseMaterialTexture(tex *MaterialTexture) *Error {
	c := &p.cur
	c.skipAfter('{')
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
			if ch == '}' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("scale"):
			tex.Scale = c.parseFixed16()
		case c.keyIs("index"):
			tex.Index = int8(c.parsePositiveInt())
		case c.keyIs("texCoord"):
			tex.TexCoord = int8(c.parsePositiveInt())
		case c.keyIs("strength"):
			tex.Strength = c.parseFixed16()
		case c.keyIs("extensions"):
			c.skipBalanced('{', '}')
		default:
			return parseErr(ErrUnknownMaterialVar, "material texture")
		}
	}
}

// parseMaterials reads the top-level materials array, including the
// nested pbrMetallicRoughness block and the fixed normal, occlusion and
// emissive texture slots.
func (p *parser) parseMaterials() *Error {
	c := &p.cur
	c.skipAfter('[')
	var mat Material
	mat.BaseColorTexture.Index = -1
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
				p.materials = append(p.materials, mat)
				mat = Material{}
				mat.BaseColorTexture.Index = -1
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		slot := -1
		switch {
		case c.keyIs("name"):
			mat.Name = c.copyQuotedValue(p.strings)
		case c.keyIs("doubleSided"):
			c.skipAfter('"')
			for c.pos < len(c.src) && !isLower(c.src[c.pos]) {
				c.pos++
			}
			mat.DoubleSided = c.peek() == 't'
		case c.keyIs("pbrMetallicRoug"): // pbrMetallicRoughness
			if err := p.parsePBRBlock(&mat); err != nil {
				return err
			}
		case c.keyIs("normalTexture"):
			slot = NormalTexture
		case c.keyIs("occlusionTextur"): // occlusionTexture
			slot = OcclusionTexture
		case c.keyIs("emissiveTexture"):
			slot = EmissiveTexture
		case c.keyIs("emissiveFactor"):
			mat.EmissiveFactor[0] = c.parseFixed16()
			mat.EmissiveFactor[1] = c.parseFixed16()
			mat.EmissiveFactor[2] = c.parseFixed16()
			c.skipAfter(']')
		case c.keyIs("extensions"):
			c.skipBalanced('{', '}')
		case c.keyIs("alphaMode"):
			c.skipAfter('"')
			mode := c.nextQuoted()
			switch {
			case bytes.Equal(mode, []byte("OPAQUE")):
				mat.AlphaMode = AlphaOpaque
			case bytes.Equal(mode, []byte("MASK")):
				mat.AlphaMode = AlphaMask
			case bytes.Equal(mode, []byte("BLEND")):
				mat.AlphaMode = AlphaBlend
			}
		case c.keyIs("alphaCutoff"):
			mat.AlphaCutoff = c.parseFloat()
		default:
			return parseErr(ErrUnknownMaterialVar, "")
		}

		if slot != -1 {
			if err := p.parseMaterialTexture(&mat.Textures[slot]); err != nil {
				return err
			}
		}
	}
}

// parsePBRBlock reads the pbrMetallicRoughness object of a material.
func (p *parser) parsePBRBlock(mat *Material) *Error {
	c := &p.cur
	c.skipUntil('{')
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
			if ch == '}' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("baseColorTex"): // baseColorTexture
			if err := p.parseMaterialTexture(&mat.BaseColorTexture); err != nil {
				return err
			}
		case c.keyIs("metallicRough"): // metallicRoughnessTexture
			if err := p.parseMaterialTexture(&mat.MetallicRoughnessTexture); err != nil {
				return err
			}
		case c.keyIs("baseColorFact"): // baseColorFactor
			factor := [4]float32{c.parseFloat(), c.parseFloat(), c.parseFloat(), c.parseFloat()}
			mat.BaseColorFactor = packColorRGBA(factor)
			c.skipAfter(']')
		case c.keyIs("metallicFact"): // metallicFactor
			mat.MetallicFactor = c.parseFixed16()
		case c.keyIs("roughnessFact"): // roughnessFactor
			mat.RoughnessFactor = c.parseFixed16()
		default:
			return parseErr(ErrUnknownPBRVar, "")
		}
	}
}
