// Package synth implements the LP-to-amplitude mapper, the phase
// synthesizer, and the time-domain synthesizer: the part of the pipeline
// that turns LPC coefficients and a harmonic model into windowed, limited
// PCM output.
package synth

import (
	"github.com/hrvach/talkberry/internal/fft"
	"github.com/hrvach/talkberry/internal/model"
	"github.com/hrvach/talkberry/internal/q"
)

const (
	fftSize     = fft.Size
	halfFFTSize = fftSize / 2

	// pitch53InQ28 is pi*150/4000 in Q28: below this Wo, apply the
	// low-pitch bass correction.
	pitch53InQ28 int32 = 31624307
)

// noiseFloor is the Q12 noise floor subtracted from the LPC envelope
// reciprocal before harmonic binning.
const noiseFloor uint64 = q.OneInQ12

// postFilter turns a forward-FFT spectrum into the per-bin reciprocal-
// magnitude envelope Pw[0..halfFFTSize], with the noise floor subtracted
// and the DC bin zeroed.
func postFilter(aw []int32) [halfFFTSize + 1]uint64 {
	var pw [halfFFTSize + 1]uint64
	for i := 0; i < halfFFTSize; i++ {
		re := int64(aw[2*i])
		im := int64(aw[2*i+1])
		magSq := q.Sat((re*re + im*im) >> 9)
		denom := uint32(magSq)
		if denom == 0 {
			denom = 1 // guard against division by zero.
		}

		v := uint64(0xFFFFFFFF) / uint64(denom)
		if v < noiseFloor {
			pw[i] = 0
		} else {
			pw[i] = v - noiseFloor
		}
	}

	pw[0] = 0 // DC bin is excluded after the pass above.

	return pw
}

// LPCToAmplitudes converts LPC coefficients to the harmonic amplitude
// envelope A[1..L], with adaptive smoothing against the previous frame's
// stored amplitudes. It also returns the raw forward-FFT spectrum of the
// (padded) LPC coefficients: the phase synthesizer reuses this same
// buffer to build its per-harmonic envelope H, rather than recomputing
// the transform a second time.
func LPCToAmplitudes(fwd *fft.Forward, lpc []int32, frame *model.Frame, energy int32) []int32 {
	var padded [fftSize]int32
	copy(padded[:], lpc)
	aw := fwd.Compute(padded[:])

	pw := postFilter(aw)

	start := int(frame.Wo / q.TauQ11)
	step := 2 * start

	i := start
	for m := 1; m <= frame.L; m, i = m+1, i+step {
		am := (i + q.OneHalfInQ9) >> q.Q9Bits
		bm := (i + step + q.OneHalfInQ9) >> q.Q9Bits
		if bm > halfFFTSize {
			bm = halfFFTSize
		}

		var binPower uint64
		for j := am; j < bm; j++ {
			binPower += pw[j]
		}

		am64 := q.Sat((int64(energy) * int64(binPower)) >> 16)

		switch {
		case am64 > frame.A[m]:
			am64 = (am64 >> 1) + (am64 >> 2) // candidate * 0.75
		case am64 < frame.A[m]:
			am64 = am64 + (am64 >> 1) // candidate * 1.5
		}

		frame.A[m] = am64
	}

	return aw
}

// ApplyLPCCorrection attenuates the first harmonic for low-pitched voices,
// improving results for low-pitched male speakers.
func ApplyLPCCorrection(frame *model.Frame) {
	if frame.Wo < pitch53InQ28 {
		frame.A[1] >>= 5
	}
}
