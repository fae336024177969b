// Package fft provides the real/inverse-real transform the decode pipeline
// treats as an external collaborator: a real FFT instance initialized once
// at startup, with two fixed-length-512 transforms (forward and inverse).
// The transform itself sits outside the core decoder's fixed-point
// algorithms, so this package implements it as a plain radix-2
// Cooley-Tukey FFT over complex128, wrapped at the package boundary to the
// Q31 interleaved-complex wire format the rest of the decoder uses.
//
// Scale convention: raw int32 slots are treated as direct (unnormalized)
// magnitudes when converted to float64. The forward transform applies no
// 1/N scaling; the inverse transform divides by N. This is the standard
// FFT/IFFT pairing (IFFT(FFT(x)) == N*x if neither step scales, so exactly
// one side must, and it is conventional to put it on the inverse side) and
// keeps the pair exactly invertible regardless of what "the" Q-scale of a
// given caller's data happens to be, since the transform is linear.
package fft

import (
	"errors"
	"math"
	"math/cmplx"
)

// Size is the only transform length the decoder ever requests.
const Size = 512

// ErrUnsupportedLength is this package's one construction-time failure
// mode: an unsupported FFT length should abort process startup, since the
// length is compile-time fixed.
var ErrUnsupportedLength = errors.New("fft: unsupported length, only 512 is supported")

// Forward computes a length-512 real-to-complex transform: real input,
// Hermitian-symmetric complex output, bit-reversal undone (natural order).
type Forward struct{}

// Inverse computes a length-512 complex-to-real transform: Hermitian-
// symmetric complex input, real output.
type Inverse struct{}

// NewForward constructs the forward transform instance. length must be 512.
func NewForward(length int) (*Forward, error) {
	if length != Size {
		return nil, ErrUnsupportedLength
	}
	return &Forward{}, nil
}

// NewInverse constructs the inverse transform instance. length must be 512.
func NewInverse(length int) (*Inverse, error) {
	if length != Size {
		return nil, ErrUnsupportedLength
	}
	return &Inverse{}, nil
}

// Compute runs the forward transform. real must have length Size; the
// returned slice holds 2*Size int32s, interleaved (re0, im0, re1, im1, ...).
func (f *Forward) Compute(real []int32) []int32 {
	x := make([]complex128, Size)
	for i, v := range real {
		x[i] = complex(float64(v), 0)
	}

	y := fftComplex(x, false)

	out := make([]int32, 2*Size)
	for i, c := range y {
		out[2*i] = saturateToInt32(real64(c))
		out[2*i+1] = saturateToInt32(imag64(c))
	}
	return out
}

// Compute runs the inverse transform. complexIn must hold at least 2*Size
// interleaved int32s (re, im pairs); the returned slice holds Size int32
// real samples. The imaginary part of the result is discarded: valid
// because the spectrum passed in is constructed Hermitian-symmetric.
func (iv *Inverse) Compute(complexIn []int32) []int32 {
	x := make([]complex128, Size)
	for i := 0; i < Size; i++ {
		re := float64(complexIn[2*i])
		im := float64(complexIn[2*i+1])
		x[i] = complex(re, im)
	}

	y := fftComplex(x, true)

	out := make([]int32, Size)
	for i, c := range y {
		out[i] = saturateToInt32(real64(c) / float64(Size))
	}
	return out
}

// fftComplex runs an iterative radix-2 Cooley-Tukey FFT (or its inverse,
// unnormalized) over a power-of-two length input.
func fftComplex(x []complex128, inverse bool) []complex128 {
	n := len(x)
	y := make([]complex128, n)
	copy(y, x)

	bitReverse(y)

	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		angleStep := sign * 2 * math.Pi / float64(size)
		wStep := cmplx.Rect(1, angleStep)

		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for j := 0; j < half; j++ {
				u := y[start+j]
				v := y[start+j+half] * w
				y[start+j] = u + v
				y[start+j+half] = u - v
				w *= wStep
			}
		}
	}

	return y
}

// bitReverse permutes y in place into bit-reversed index order, the
// standard precondition for an iterative in-place Cooley-Tukey FFT.
func bitReverse(y []complex128) {
	n := len(y)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j &^= bit
		}
		j |= bit
		if i < j {
			y[i], y[j] = y[j], y[i]
		}
	}
}

func real64(c complex128) float64 { return real(c) }
func imag64(c complex128) float64 { return imag(c) }

func saturateToInt32(v float64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
