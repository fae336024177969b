// Package interp produces the three interior sub-frame parameter vectors
// from the previous packet's terminal model and the current packet's
// frame-4 model, using a fixed linear weighting schedule.
package interp

import (
	"github.com/hrvach/talkberry/internal/model"
	"github.com/hrvach/talkberry/internal/q"
)

// Wo interpolates the fundamental frequency, pitch, harmonic count, and
// voicing for sub-frame idx (0, 1, or 2; frame 3 is cur itself).
//
// Voicing rule: the target's voicing is the bit-unpacked voicing of frame
// idx ANDed with (prev voiced OR cur voiced). If that collapses to
// unvoiced, the whole target model is reset to the canonical unvoiced
// default.
func Wo(frame *model.Frame, prev, cur *model.Frame, idx int) {
	frame.Voiced = frame.Voiced && (prev.Voiced || cur.Voiced)

	if !frame.Voiced {
		*frame = model.UnvoicedDefault()
		return
	}

	switch {
	case !prev.Voiced && cur.Voiced:
		*frame = *cur
	case prev.Voiced && !cur.Voiced:
		*frame = *prev
	default: // both voiced: interpolate
		voiced := frame.Voiced
		frame.Wo = (int32(3-idx)*prev.Wo + int32(idx+1)*cur.Wo) >> 2
		frame.Pitch = q.TauQ28 / (frame.Wo >> 9)
		frame.L = int(q.PiQ28 / frame.Wo)
		frame.Voiced = voiced
	}
}

// Energy interpolates linear energy for sub-frame idx, distributing the
// division across both operands before summing to avoid overflow.
func Energy(target *model.Frame, prev, cur *model.Frame, idx int) {
	if prev.Energy == cur.Energy {
		target.Energy = cur.Energy
		return
	}
	target.Energy = int32(3-idx)*(prev.Energy>>2) + (int32(idx+1)*cur.Energy)>>2
}

// LSP interpolates a 10-element LSP vector for sub-frame idx. Unlike Energy,
// both operands are shifted before multiplying, distributing the
// anti-overflow scaling symmetrically across prev and cur.
func LSP(out *[model.LPCOrder]int32, prev, cur *[model.LPCOrder]int32, idx int) {
	for i := 0; i < model.LPCOrder; i++ {
		out[i] = int32(3-idx)*(prev[i]>>2) + int32(idx+1)*(cur[i]>>2)
	}
}
