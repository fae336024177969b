package fft

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRejectsUnsupportedLength(t *testing.T) {
	_, err := NewForward(256)
	assert.ErrorIs(t, err, ErrUnsupportedLength)

	_, err = NewInverse(1024)
	assert.ErrorIs(t, err, ErrUnsupportedLength)
}

// TestRoundTrip checks Inverse(Forward(x)) recovers x (within rounding),
// the standard FFT/IFFT pairing this package's scale convention documents.
func TestRoundTrip(t *testing.T) {
	fwd, err := NewForward(Size)
	assert.NoError(t, err)
	inv, err := NewInverse(Size)
	assert.NoError(t, err)

	real := make([]int32, Size)
	for i := range real {
		real[i] = int32((i*37)%2000 - 1000)
	}

	spectrum := fwd.Compute(real)
	recovered := inv.Compute(spectrum)

	for i, v := range real {
		assert.InDelta(t, v, recovered[i], 2)
	}
}

func TestForwardDCInput(t *testing.T) {
	fwd, err := NewForward(Size)
	assert.NoError(t, err)

	real := make([]int32, Size)
	for i := range real {
		real[i] = 1000
	}

	spectrum := fwd.Compute(real)

	// A constant input has all its energy in bin 0; every other bin's
	// magnitude should be negligible relative to bin 0.
	assert.InDelta(t, 1000*Size, spectrum[0], 2)
	assert.InDelta(t, 0, spectrum[1], 2)
	assert.InDelta(t, 0, spectrum[2*10], 2)
}
