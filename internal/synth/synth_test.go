package synth

import (
	"testing"

	"github.com/hrvach/talkberry/internal/model"
	"github.com/hrvach/talkberry/internal/q"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestEstimateMagnitudeApproximatesHypotenuse(t *testing.T) {
	// estimate_magnitude's alpha-max/beta-min approximation has a documented
	// max error of 1.22%; check a handful of known vectors stay within it.
	cases := []struct{ re, im int32 }{
		{1000, 0},
		{0, 1000},
		{1000, 1000},
		{-3000, 4000}, // 3-4-5 triangle, exact hypotenuse 5000
	}

	for _, c := range cases {
		exact := hypot(c.re, c.im)
		got := estimateMagnitude(c.re, c.im)
		assert.InDelta(t, exact, float64(got), exact*0.0123+1)
	}
}

func hypot(re, im int32) float64 {
	r := float64(re)
	i := float64(im)
	sq := r*r + i*i
	if sq == 0 {
		return 0
	}
	x := sq
	for n := 0; n < 50; n++ {
		x = 0.5 * (x + sq/x)
	}
	return x
}

func TestEarProtectionNoOpBelowThreshold(t *testing.T) {
	state := model.NewState()
	for i := range state.Sn {
		state.Sn[i] = 100
	}

	EarProtection(state, 100)

	for _, s := range state.Sn {
		assert.Equal(t, int32(100), s)
	}
}

func TestEarProtectionRescalesAboveThreshold(t *testing.T) {
	state := model.NewState()
	for i := 0; i < model.NSpf; i++ {
		state.Sn[i] = 40000
	}

	EarProtection(state, 40000)

	for i := 0; i < model.NSpf; i++ {
		assert.LessOrEqual(t, state.Sn[i], int32(limitThreshold)+1)
	}
}

func TestApplyLPCCorrectionOnlyBelowThreshold(t *testing.T) {
	low := model.Frame{Wo: pitch53InQ28 - 1}
	low.A[1] = 1000
	ApplyLPCCorrection(&low)
	assert.Equal(t, int32(1000>>5), low.A[1])

	high := model.Frame{Wo: pitch53InQ28 + 1}
	high.A[1] = 1000
	ApplyLPCCorrection(&high)
	assert.Equal(t, int32(1000), high.A[1])
}

// TestOutputSamplesMatchesSmootherFormula cross-checks OutputSamples
// against an independent recomputation of its 1-tap low-pass smoother, for
// arbitrary overlap-buffer contents.
func TestOutputSamplesMatchesSmootherFormula(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		state := model.NewState()
		for i := range state.Sn {
			state.Sn[i] = rapid.Int32().Draw(t, "sn")
		}
		snCopy := state.Sn

		out := make([]int16, model.NSpf)
		OutputSamples(state, out)

		for k := 0; k < model.NSpf; k++ {
			want := q.Sat15(q.Add(snCopy[k], snCopy[k+1]>>5))
			assert.Equal(t, want, out[k])
		}
	})
}
