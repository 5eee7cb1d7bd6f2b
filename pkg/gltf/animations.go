package gltf

// parseSkins reads the top-level skins array. The inverse bind matrix
// accessor index is recorded for later resolution, since accessors may
// not have been parsed yet at this point.
func (p *parser) parseSkins() *Error {
	c := &p.cur
	c.skipAfter('[')
	skin := Skin{Skeleton: -1}
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
				p.skins = append(p.skins, skin)
				skin = Skin{Skeleton: -1}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("inverseBindMatr"): // inverseBindMatrices
			skin.InverseBindAccessor = c.parsePositiveInt()
		case c.keyIs("skeleton"):
			skin.Skeleton = c.parsePositiveInt()
		case c.keyIs("name"):
			skin.Name = c.copyQuotedValue(p.strings)
		case c.keyIs("joints"):
			skin.Joints = c.parseIntArray(p.ints)
			c.pos++ // closing bracket of the joint list
		}
	}
}

// parseAnimChannels reads an animation's channels array into the
// parser's scratch slice. The target key opens a nested object whose
// closing brace must not terminate the channel record.
func (p *parser) parseAnimChannels() *Error {
	c := &p.cur
	c.skipAfter('"') // closing quote of the channels key
	var ch AnimChannel
	parsingTarget := false
	for {
		for c.peek() != '"' {
			if c.eof() {
				return nil
			}
			b := c.src[c.pos]
			if b == ']' {
				c.pos++
				return nil
			}
			if b == '}' {
				if parsingTarget {
					parsingTarget = false
				} else {
					p.channels = append(p.channels, ch)
					ch = AnimChannel{}
				}
			}
			c.pos++
		}

		switch c.hashQuoted() {
		case hash8("sampler"):
			ch.Sampler = c.parsePositiveInt()
		case hash8("node"):
			ch.TargetNode = c.parsePositiveInt()
		case hash8("target"):
			parsingTarget = true
		case hash8("path"):
			c.skipAfter('"') // opening quote of the value
			switch c.peek() {
			case 't':
				ch.TargetPath = TargetPathTranslation
			case 'r':
				ch.TargetPath = TargetPathRotation
			case 's':
				ch.TargetPath = TargetPathScale
			}
			c.skipAfter('"')
		}
	}
}

// parseAnimSamplers reads an animation's samplers array into the
// parser's scratch slice. Input and output are accessor indices resolved
// to float spans after all sections are parsed.
func (p *parser) parseAnimSamplers() *Error {
	c := &p.cur
	c.skipAfter('"') // closing quote of the samplers key
	var smp AnimSampler
	for {
		for c.peek() != '"' {
			if c.eof() {
				return nil
			}
			b := c.src[c.pos]
			if b == ']' {
				c.pos++
				return nil
			}
			if b == '}' {
				p.animSamplers = append(p.animSamplers, smp)
				smp = AnimSampler{}
			}
			c.pos++
		}

		switch c.hashQuoted() {
		case hash8("input"):
			smp.InputAccessor = c.parsePositiveInt()
		case hash8("output"):
			smp.OutputAccessor = c.parsePositiveInt()
		case hash8("interpol"): // interpolation
			c.skipAfter('"') // rest of the key
			c.skipAfter('"') // opening quote of the value
			switch c.peek() {
			case 'L':
				smp.Interpolation = InterpolationLinear
			case 'S':
				smp.Interpolation = InterpolationStep
			case 'C':
				smp.Interpolation = InterpolationCubicSpline
			}
			c.skipAfter('"')
		}
	}
}

// parseAnimations reads the top-level animations array. Channels and
// samplers accumulate in scratch slices and transfer to the animation
// when its record closes.
func (p *parser) parseAnimations() *Error {
	c := &p.cur
	c.skipAfter('[')
	var anim Animation
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
				anim.Channels = p.channels
				anim.Samplers = p.animSamplers
				p.channels = nil
				p.animSamplers = nil
				p.animations = append(p.animations, anim)
				anim = Animation{}
			}
			c.pos++
			if ch == ']' {
				return nil
			}
		}
		c.pos++ // opening quote of the key

		switch {
		case c.keyIs("name"):
			anim.Name = c.copyQuotedValue(p.strings)
		case c.keyIs("channels"):
			if err := p.parseAnimChannels(); err != nil {
				return err
			}
		case c.keyIs("samplers"):
			if err := p.parseAnimSamplers(); err != nil {
				return err
			}
		}
	}
}
