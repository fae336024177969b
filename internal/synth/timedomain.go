package synth

import (
	"github.com/hrvach/talkberry/internal/fft"
	"github.com/hrvach/talkberry/internal/model"
	"github.com/hrvach/talkberry/internal/q"
	"github.com/hrvach/talkberry/internal/tables"
)

// limitThreshold is the maximum tolerated sample magnitude before
// EarProtection rescales the frame.
const limitThreshold = 30000

// estimateMagnitude approximates sqrt(re^2 + im^2) without a square root,
// using the refined alpha-max-plus-beta-min algorithm: alpha0=1,
// beta0=5/32, alpha1=27/32, beta1=71/128, max error 1.22%.
func estimateMagnitude(re, im int32) int64 {
	re, im = q.Abs(re), q.Abs(im)

	larger, smaller := re, im
	if im > re {
		larger, smaller = im, re
	}

	z0 := int64(larger) + (5*int64(smaller))>>5
	z1 := (27*int64(larger))>>5 + (71*int64(smaller))>>7

	if z0 > z1 {
		return z0
	}
	return z1
}

// freqDomainCalc places each harmonic's complex amplitude into its FFT bin
// and the Hermitian mirror bin, forming the symmetric spectrum the inverse
// FFT will convert to time domain.
func freqDomainCalc(sw []int32, frame *model.Frame) {
	step := int((int64(fftSize) << q.Q18Bits) / int64(frame.Pitch))

	i := q.OneHalfInQ9 + step
	for j := 1; j <= frame.L; j, i = j+1, i+step {
		k := i >> q.Q9Bits
		if k >= halfFFTSize {
			k = halfFFTSize - 1
		}

		magnitude := estimateMagnitude(frame.Af[2*j], frame.Af[2*j+1]) << 1
		if magnitude == 0 {
			magnitude = 1 // guard division by zero.
		}

		real := (int64(frame.A[j]) * int64(frame.Af[2*j])) / magnitude
		imag := (int64(frame.A[j]) * int64(frame.Af[2*j+1])) / magnitude

		sw[2*k] = q.Sat(real)
		sw[2*k+1] = q.Sat(imag)

		sw[2*fftSize-2*k] = q.Sat(real)
		sw[2*fftSize-2*k+1] = q.Sat(-imag)
	}
}

// Synthesise shifts the overlap buffer, builds the symmetric spectrum for
// this sub-frame, runs the inverse FFT, windows and overlap-adds the
// result into state.Sn, and returns the running maximum absolute sample
// value for the limiter.
func Synthesise(inv *fft.Inverse, state *model.State, frame *model.Frame) int32 {
	// Shift the existing overlap half down, making room for the new half.
	for i := 0; i < model.NSpf-1; i++ {
		state.Sn[i] = state.Sn[model.NSpf+i]
	}
	state.Sn[model.NSpf-1] = 0

	// Sized with headroom above 2*fftSize: the Hermitian mirror write for a
	// harmonic landing in the very first bin lands one slot past the
	// spectrum the inverse FFT actually reads.
	sw := make([]int32, 2*fftSize+2)
	freqDomainCalc(sw, frame)

	swTime := inv.Compute(sw[:2*fftSize])

	var maxAmplitude int32
	for i := 0; i < model.NSpf-1; i++ {
		state.Sn[i] = q.Add(state.Sn[i], q.MulShift(swTime[fftSize-model.NSpf+1+i], tables.SynthesisWindow[i], q.Q32Bits))
		if abs := q.Abs(state.Sn[i]); abs > maxAmplitude {
			maxAmplitude = abs
		}
	}

	for i, j := model.NSpf-1, 0; i < 2*model.NSpf; i, j = i+1, j+1 {
		state.Sn[i] = q.MulShift(swTime[j], tables.SynthesisWindow[i], q.Q32Bits)
	}

	return maxAmplitude
}

// EarProtection rescales state.Sn[0:NSpf] by (limitThreshold/peak)^2 if the
// frame's peak magnitude exceeds the threshold, which brings the peak to
// limitThreshold^2/peak, below the threshold.
func EarProtection(state *model.State, maxAmplitude int32) {
	if maxAmplitude <= limitThreshold {
		return
	}

	scale := int64(limitThreshold*limitThreshold) / int64(maxAmplitude)
	scale = (scale << 15) / int64(maxAmplitude)

	for i := 0; i < model.NSpf; i++ {
		state.Sn[i] = int32((int64(state.Sn[i]) * scale) >> 15)
	}
}

// OutputSamples converts the windowed, limited overlap buffer to 16-bit PCM
// via a 1-tap low-pass smoother: out[k] = saturate15(Sn[k] + Sn[k+1]>>5).
// Reading Sn[NSpf] at k = NSpf-1 is an intentional one-sample look-ahead
// into the next frame's overlap region, not a bug.
func OutputSamples(state *model.State, out []int16) {
	for k := 0; k < model.NSpf; k++ {
		out[k] = q.Sat15(q.Add(state.Sn[k], state.Sn[k+1]>>5))
	}
}
