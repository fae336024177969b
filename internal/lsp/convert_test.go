package lsp

import (
	"testing"

	"github.com/hrvach/talkberry/internal/model"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func drawLSP(t *rapid.T) [model.LPCOrder]int32 {
	var lsp [model.LPCOrder]int32
	for i := range lsp {
		lsp[i] = rapid.Int32Range(0, 1<<27).Draw(t, "lsp")
	}
	return lsp
}

// TestCheckOrderProducesNonDecreasing verifies the documented invariant:
// after CheckOrder, the vector is non-decreasing.
func TestCheckOrderProducesNonDecreasing(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lsp := drawLSP(t)
		CheckOrder(&lsp)

		for i := 1; i < model.LPCOrder; i++ {
			assert.GreaterOrEqualf(t, lsp[i], lsp[i-1], "index %d out of order after CheckOrder: %v", i, lsp)
		}
	})
}

// TestBWExpandMaintainsMinimumSeparation verifies that after BWExpand, every
// adjacent pair respects its minimum-separation threshold, given an input
// that is already non-decreasing (as Decode runs CheckOrder before BWExpand).
func TestBWExpandMaintainsMinimumSeparation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lsp := drawLSP(t)
		CheckOrder(&lsp)
		BWExpand(&lsp)

		for i := 1; i < model.LPCOrder; i++ {
			thresh := MinSepLow
			if i >= 4 {
				thresh = MinSepHigh
			}
			assert.GreaterOrEqualf(t, lsp[i]-lsp[i-1], thresh, "index %d separation violated after BWExpand: %v", i, lsp)
		}
	})
}

// TestLSFToLSPRange checks every converted cosine value lands within the
// Q23 unit-circle range, since cos(theta) in [-1, 1].
func TestLSFToLSPRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lsf := drawLSP(t)
		lsp := LSFToLSP(&lsf)

		for _, v := range lsp {
			assert.LessOrEqual(t, v, int32(1<<23))
			assert.GreaterOrEqual(t, v, int32(-1<<23))
		}
	})
}

// TestToLPCFirstCoefficientIsUnity matches the reference's lpc[0] = ONE_Q23
// invariant: an all-pole filter's leading coefficient is always 1.
func TestToLPCFirstCoefficientIsUnity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lsf := drawLSP(t)
		CheckOrder(&lsf)
		BWExpand(&lsf)
		lsp := LSFToLSP(&lsf)

		lpc := ToLPC(&lsp)
		assert.Equal(t, int32(0x007FFFFF), lpc[0])
	})
}
