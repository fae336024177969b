package interp

import (
	"testing"

	"github.com/hrvach/talkberry/internal/model"
	"github.com/hrvach/talkberry/internal/q"
	"github.com/stretchr/testify/assert"
)

func TestWoCollapsesToUnvoicedDefault(t *testing.T) {
	prev := model.Frame{Voiced: false}
	cur := model.Frame{Voiced: false}
	frame := model.Frame{Voiced: false}

	Wo(&frame, &prev, &cur, 1)

	assert.Equal(t, model.UnvoicedDefault(), frame)
}

func TestWoTakesCurWhenPrevUnvoiced(t *testing.T) {
	prev := model.Frame{Voiced: false}
	cur := model.Frame{Voiced: true, Wo: 20000000, Pitch: 5000, L: 15, Energy: 1000}
	frame := model.Frame{Voiced: true}

	Wo(&frame, &prev, &cur, 2)

	assert.Equal(t, cur, frame)
}

func TestWoTakesPrevWhenCurUnvoiced(t *testing.T) {
	prev := model.Frame{Voiced: true, Wo: 20000000, Pitch: 5000, L: 15, Energy: 1000}
	cur := model.Frame{Voiced: false}
	frame := model.Frame{Voiced: true}

	Wo(&frame, &prev, &cur, 0)

	assert.Equal(t, prev, frame)
}

func TestWoInterpolatesWhenBothVoiced(t *testing.T) {
	prev := model.Frame{Voiced: true, Wo: q.TauQ28 / 100}
	cur := model.Frame{Voiced: true, Wo: q.TauQ28 / 200}
	frame := model.Frame{Voiced: true}

	Wo(&frame, &prev, &cur, 0)

	assert.True(t, frame.Voiced)
	assert.True(t, frame.Wo > cur.Wo && frame.Wo < prev.Wo)
}

func TestEnergyShortCircuitsWhenEqual(t *testing.T) {
	prev := model.Frame{Energy: 5000}
	cur := model.Frame{Energy: 5000}
	var target model.Frame

	Energy(&target, &prev, &cur, 1)

	assert.Equal(t, int32(5000), target.Energy)
}

func TestEnergyInterpolatesBetweenEndpoints(t *testing.T) {
	prev := model.Frame{Energy: 1000}
	cur := model.Frame{Energy: 9000}
	var target model.Frame

	Energy(&target, &prev, &cur, 1)

	assert.True(t, target.Energy > prev.Energy && target.Energy < cur.Energy)
}

func TestLSPInterpolatesEachCoefficient(t *testing.T) {
	var prev, cur [model.LPCOrder]int32
	for i := range prev {
		prev[i] = int32(i) * 1000
		cur[i] = int32(i)*1000 + 4000
	}

	var out [model.LPCOrder]int32
	LSP(&out, &prev, &cur, 0)

	for i := range out {
		assert.True(t, out[i] > prev[i] && out[i] < cur[i])
	}
}

// TestLSPMatchesSymmetricFormula pins LSP to its exact shift-then-multiply
// formula, distinguishing it from Energy's multiply-then-shift one: values
// chosen so the two groupings would disagree if LSP regressed to Energy's
// pattern (e.g. prev[i]=3: 3*(7>>2)=3 but (3*7)>>2=5).
func TestLSPMatchesSymmetricFormula(t *testing.T) {
	var prev, cur [model.LPCOrder]int32
	for i := range prev {
		prev[i] = 3
		cur[i] = 7
	}

	for idx := 0; idx < 3; idx++ {
		var out [model.LPCOrder]int32
		LSP(&out, &prev, &cur, idx)

		want := int32(3-idx)*(int32(3)>>2) + int32(idx+1)*(int32(7)>>2)
		for i := range out {
			assert.Equal(t, want, out[i])
		}
	}
}
