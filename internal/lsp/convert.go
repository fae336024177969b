// Package lsp implements the spectral-representation conversions between
// line-spectral frequencies, line-spectral pairs, and LP coefficients: the
// LSF->LSP cosine mapping, the LSP->LPC polynomial expansion, LSP ordering
// repair, and bandwidth expansion.
package lsp

import (
	"github.com/hrvach/talkberry/internal/model"
	"github.com/hrvach/talkberry/internal/q"
	"github.com/hrvach/talkberry/internal/tables"
)

// MinSepLow and MinSepHigh are the minimum LSP separation thresholds used
// by BWExpand, in Q27: 50*pi/4000 for indices < 4, 100*pi/4000 otherwise.
const (
	MinSepLow  int32 = 5270718
	MinSepHigh int32 = 10541436
)

// DecodeScalar looks up the ten LSP codebook entries selected by a
// packet's LSP indices, as extracted by bitpack.Unpack.
func DecodeScalar(indexes *[model.LPCOrder]int) [model.LPCOrder]int32 {
	var lsf [model.LPCOrder]int32
	for i := 0; i < model.LPCOrder; i++ {
		lsf[i] = tables.LSPCodebook[tables.LSPOffsets[i]+indexes[i]]
	}
	return lsf
}

// LSFToLSP converts each of the 10 LSFs to its cosine (Q27 -> Q23), via the
// CORDIC rotator.
func LSFToLSP(lsf *[model.LPCOrder]int32) [model.LPCOrder]int32 {
	var lsp [model.LPCOrder]int32
	for j := 0; j < model.LPCOrder; j++ {
		cos, _ := q.Cordic(lsf[j])
		lsp[j] = cos >> 4
	}
	return lsp
}

// toPolynomial expands the product of (1 - 2*cos(theta_i)*z^-1 + z^-2) over
// one LSP sub-set (every-other coefficient starting at offset), returning
// the LPCOrder/2+1 polynomial coefficients: start with the length-2 kernel
// for the first root, then fold in each additional root's length-3 kernel
// via the in-place accumulation order below (including the poly[1] += b
// tail step).
func toPolynomial(coeffs []int32) [model.LPCOrder/2 + 1]int32 {
	var poly [model.LPCOrder/2 + 1]int32

	poly[0] = q.OneInQ23
	poly[1] = -coeffs[0] * 2

	for i := 2; i <= model.LPCOrder/2; i++ {
		b := 2 * (-coeffs[2*i-2])
		poly[i] = q.MulShift(b, poly[i-1], q.Q23Bits) + 2*poly[i-2]

		for j := i - 1; j > 1; j-- {
			poly[j] += q.MulShift(b, poly[j-1], q.Q23Bits) + poly[j-2]
		}

		poly[1] += b
	}

	return poly
}

// ToLPC converts the 10 line-spectral pairs to LPCOrder+1 LP coefficients
// by splitting into even/odd sub-sets, expanding each to a polynomial, and
// recombining.
func ToLPC(lsp *[model.LPCOrder]int32) [model.LPCOrder + 1]int32 {
	p := toPolynomial(lsp[0:])
	qp := toPolynomial(lsp[1:])

	for i := model.LPCOrder / 2; i > 0; i-- {
		p[i] += p[i-1]
		qp[i] -= qp[i-1]
	}

	var lpc [model.LPCOrder + 1]int32
	lpc[0] = q.OneInQ23

	for i, j := 1, model.LPCOrder; i <= model.LPCOrder/2; i, j = i+1, j-1 {
		lpc[i] = (p[i] + qp[i]) >> 1
		lpc[j] = (p[i] - qp[i]) >> 1
	}

	return lpc
}

// CheckOrder repairs an out-of-order LSP vector in place: whenever
// lsp[i] < lsp[i-1], it swaps the pair with a +-0.1 (Q27) perturbation that
// pushes them apart, then restarts from index 1. The perturbation strictly
// increases separation each pass, so this always terminates.
func CheckOrder(lsp *[model.LPCOrder]int32) {
	for i := 1; i < model.LPCOrder; i++ {
		if lsp[i] < lsp[i-1] {
			old := lsp[i-1]
			lsp[i-1] = lsp[i] - q.PointOneInQ27
			lsp[i] = old + q.PointOneInQ27
			i = 0 // the loop's i++ resumes the scan at index 1
		}
	}
}

// BWExpand enforces the minimum-separation invariant with a single forward
// scan, pushing any LSP that is too close to its predecessor up to exactly
// the threshold distance.
func BWExpand(lsp *[model.LPCOrder]int32) {
	for i := 1; i < model.LPCOrder; i++ {
		thresh := MinSepLow
		if i >= 4 {
			thresh = MinSepHigh
		}
		if lsp[i]-lsp[i-1] < thresh {
			lsp[i] = q.Add(lsp[i-1], thresh)
		}
	}
}
