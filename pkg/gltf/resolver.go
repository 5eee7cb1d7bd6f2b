package gltf

// accessor returns the accessor at idx, or nil when idx is out of range.
func (p *parser) accessor(idx int32) *Accessor {
	if idx < 0 || int(idx) >= len(p.accessors) {
		return nil
	}
	return &p.accessors[idx]
}

// viewStride returns the byte stride of a buffer view, 0 when the view
// index is out of range.
func (p *parser) viewStride(idx int32) int32 {
	if idx < 0 || int(idx) >= len(p.views) {
		return 0
	}
	return p.views[idx].ByteStride
}

// accessorSpan dereferences the accessor -> bufferView -> buffer chain
// and returns the byte span the accessor addresses: the owning buffer's
// bytes from view.byteOffset+accessor.byteOffset to the end of the view.
// Any out-of-range link in the chain yields nil.
func (p *parser) accessorSpan(idx int32) []byte {
	acc := p.accessor(idx)
	if acc == nil {
		return nil
	}
	if acc.BufferView < 0 || int(acc.BufferView) >= len(p.views) {
		return nil
	}
	view := &p.views[acc.BufferView]
	if view.Buffer < 0 || int(view.Buffer) >= len(p.buffers) {
		return nil
	}
	data := p.buffers[view.Buffer].Data

	start := int(view.ByteOffset) + int(acc.ByteOffset)
	end := int(view.ByteOffset) + int(view.ByteLength)
	if view.ByteLength == 0 || end > len(data) {
		end = len(data)
	}
	if start < 0 || start > end {
		return nil
	}
	return data[start:end]
}

// resolve rewrites every accessor-index field recorded during parsing
// into a byte span inside the owning buffer: primitive indices and
// attribute slots, skin inverse bind matrices, and animation sampler
// input/output streams. Attribute slots are visited in slice order,
// which is increasing attribute-bit order by construction. Totals are
// accumulated in the same pass.
func (p *parser) resolve() {
	for mi := range p.meshes {
		mesh := &p.meshes[mi]
		for pi := range mesh.Primitives {
			prim := &mesh.Primitives[pi]

			// every attribute of a primitive shares one vertex count, so
			// the first slot's accessor supplies it
			if len(prim.Slots) > 0 {
				if acc := p.accessor(prim.Slots[0].Accessor); acc != nil {
					prim.NumVertices = acc.Count
				}
			}

			if acc := p.accessor(prim.IndicesAccessor); acc != nil {
				prim.NumIndices = acc.Count
				prim.IndexType = acc.ComponentType
				prim.Indices = p.accessorSpan(prim.IndicesAccessor)
			}

			if slot := prim.Slot(AttribJoints); slot != nil {
				if acc := p.accessor(slot.Accessor); acc != nil {
					prim.JointType = int16(acc.ComponentType)
					prim.JointCount = int16(acc.Type)
					prim.JointStride = int16(p.viewStride(acc.BufferView))
				}
			}
			if slot := prim.Slot(AttribWeights); slot != nil {
				if acc := p.accessor(slot.Accessor); acc != nil {
					prim.WeightType = int16(acc.ComponentType)
					prim.WeightStride = int16(p.viewStride(acc.BufferView))
				}
			}

			for i := range prim.Slots {
				prim.Slots[i].Data = p.accessorSpan(prim.Slots[i].Accessor)
			}

			p.totalVertices += prim.NumVertices
			p.totalIndices += prim.NumIndices
		}
	}

	for si := range p.skins {
		skin := &p.skins[si]
		skin.InverseBindMatrices = p.accessorSpan(skin.InverseBindAccessor)
	}

	for ai := range p.animations {
		anim := &p.animations[ai]
		anim.Duration = 0
		for si := range anim.Samplers {
			smp := &anim.Samplers[si]

			if acc := p.accessor(smp.InputAccessor); acc != nil {
				smp.Input = p.accessorSpan(smp.InputAccessor)
				smp.Count = acc.Count
			}
			if acc := p.accessor(smp.OutputAccessor); acc != nil {
				smp.Output = p.accessorSpan(smp.OutputAccessor)
				// a shorter output stream caps the keyframe count
				if acc.Count < smp.Count {
					smp.Count = acc.Count
				}
				smp.NumComponents = acc.Type
			}

			if smp.Count > 0 && len(smp.Input) >= int(smp.Count)*4 {
				if d := smp.InputAt(int(smp.Count) - 1); d > anim.Duration {
					anim.Duration = d
				}
			}
		}
	}
}
