// Package model holds the decoder's data model: the decoded packet fields,
// the per-sub-frame parameter vector, and the state that persists across
// packets.
package model

import "github.com/hrvach/talkberry/internal/q"

const (
	// LPCOrder is the number of line-spectral frequencies / LPC coefficients.
	LPCOrder = 10

	// MaxL is the largest possible harmonic count.
	MaxL = 79

	// MaxPitch is the canonical unvoiced pitch period, Q9.
	MaxPitch = 81920

	// NumFrames is the number of 10ms sub-frames carried per packet.
	NumFrames = 4

	// NSpf is the number of output samples per sub-frame.
	NSpf = 80

	// pMax is the unvoiced default fundamental period used for Wo = tau/pMax.
	pMax = 160
)

// Packet holds the fields extracted from one 56-bit compressed packet.
type Packet struct {
	Voiced      [NumFrames]int
	WoIndex     int
	EnergyIndex int
	LSPIndexes  [LPCOrder]int
}

// Frame holds the reconstructed parameter vector for one 10ms sub-frame,
// plus the harmonic amplitude/phase arrays it accumulates through the
// pipeline.
type Frame struct {
	Wo     int32 // Fundamental angular frequency, Q28.
	Pitch  int32 // Period in samples, Q9.
	L      int   // Harmonic count, 1..MaxL.
	Energy int32 // Linear energy, Q15.
	Voiced bool

	A  [MaxL + 1]int32     // Harmonic magnitudes, tracks Energy's scale.
	Af [2*MaxL + 2]int32   // Per-harmonic complex amplitudes, Q27 interleaved.
	H  [2*MaxL + 2]int32   // Scratch envelope, same layout as Af.
}

// UnvoicedDefault returns the canonical unvoiced frame used whenever a
// sub-frame's interpolated voicing collapses to zero.
func UnvoicedDefault() Frame {
	return Frame{
		Wo:    q.TauQ28 / pMax,
		Pitch: MaxPitch,
		L:     MaxL,
	}
}

// State is the decoder's persistent state: the previous sub-frame's
// terminal model, its LSF vector, the running phase accumulator, and the
// overlap-add working buffer. A fresh Decoder owns one State; it is
// mutated in place by each Decode call.
type State struct {
	PrevModel Frame
	PrevLSFs  [LPCOrder]int32
	PrevPhase int32
	Sn        [2 * NSpf]int32
	LFSR      uint32
}

// NewState builds the decoder's initial persistent state, matching the
// unvoiced silence a freshly started stream should begin from.
func NewState() *State {
	s := &State{
		PrevModel: Frame{
			Wo:     q.TauQ28 / pMax,
			Pitch:  MaxPitch,
			L:      MaxL,
			Energy: 1 << 12, // 2^12 * (1/2^15), a small non-zero level.
		},
		LFSR: 0xDEADBEEF,
	}
	for i := 0; i < LPCOrder; i++ {
		s.PrevLSFs[i] = int32(i) * (q.TauQ26 / (LPCOrder + 1))
	}
	return s
}
