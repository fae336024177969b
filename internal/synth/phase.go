package synth

import (
	"github.com/hrvach/talkberry/internal/model"
	"github.com/hrvach/talkberry/internal/q"
)

// nextRandom XORs bits 0, 1, 2, 4, 6, 31 of the shift register to produce
// the next input bit for the unvoiced excitation generator.
func nextRandom(lfsr *uint32) uint32 {
	bit := ((*lfsr >> 0) ^ (*lfsr >> 1) ^ (*lfsr >> 2) ^ (*lfsr >> 4) ^ (*lfsr >> 6) ^ (*lfsr >> 31)) & 1
	*lfsr = (*lfsr >> 1) | (bit << 31)
	return *lfsr
}

// PhaseSynth builds the complex per-harmonic excitation (pseudorandom for
// unvoiced, CORDIC-driven recursion for voiced), forms the per-harmonic
// envelope H from the raw LPC spectral envelope, and multiplies the two
// element-wise into frame.Af.
//
// envelope is the raw forward-FFT spectrum the LP-to-amplitude mapper
// produced for this same sub-frame (LPCToAmplitudes' return value); H is
// built from it directly, not from the smoothed scalar A[m] array.
func PhaseSynth(state *model.State, frame *model.Frame, envelope []int32) {
	var ex [2*model.MaxL + 2]int32
	var h [2*model.MaxL + 2]int32

	step := int((int64(fftSize) << q.Q18Bits) / int64(frame.Pitch))

	i := halfFFTSize
	for m := 1; m <= frame.L; m, i = m+1, i+step {
		b := i >> q.Q9Bits
		h[2*m] = envelope[2*b] << 2
		h[2*m+1] = -(envelope[2*b+1] << 2)
	}

	// Wo is Q28, phase is Q24; Wo*5 == Wo*80 at the phase's scale. Bring
	// the accumulator back into [-pi, pi).
	state.PrevPhase = q.Add(state.PrevPhase, frame.Wo*5)
	for state.PrevPhase >= q.PiQ24 {
		state.PrevPhase -= q.TauQ24
	}

	if !frame.Voiced {
		for m := 0; m <= 2*frame.L+1; m++ {
			ex[m] = int32(nextRandom(&state.LFSR))
		}
	} else {
		phase := state.PrevPhase << 3 // Q24 -> Q27

		ex[0] = q.OneInQ27
		ex[1] = 0

		cos, sin := q.Cordic(phase)
		ex[2] = cos
		ex[3] = sin

		twoCos := 2 * int64(ex[2])

		for m := 2; m <= frame.L; m++ {
			ex[2*m+1] = int32((int64(ex[2*m-1])*twoCos)>>q.Q27Bits) - ex[2*m-3]
			ex[2*m] = int32((int64(ex[2*m-2])*twoCos)>>q.Q27Bits) - ex[2*m-4]
		}
	}

	complexMultiply(h[:], ex[:], frame.Af[:], frame.L)
}

// complexMultiply multiplies len interleaved (re, im) pairs of a and b
// element-wise into dst.
func complexMultiply(a, b, dst []int32, length int) {
	for i := 0; i < length; i++ {
		ar, ai := a[2*i], a[2*i+1]
		br, bi := b[2*i], b[2*i+1]

		dst[2*i] = q.Sub(q.MulQ31(ar, br), q.MulQ31(ai, bi))
		dst[2*i+1] = q.Add(q.MulQ31(ar, bi), q.MulQ31(ai, br))
	}
}
