// decoder.go implements the public Decoder API, wiring the bit unpacker,
// interpolator, spectral converter, and synthesis stages into the full
// packet-to-PCM pipeline.
package talkberry

import (
	"github.com/hrvach/talkberry/internal/bitpack"
	"github.com/hrvach/talkberry/internal/fft"
	"github.com/hrvach/talkberry/internal/interp"
	"github.com/hrvach/talkberry/internal/lsp"
	"github.com/hrvach/talkberry/internal/model"
	"github.com/hrvach/talkberry/internal/synth"
	"github.com/hrvach/talkberry/internal/tables"
)

// SamplesPerPacket is the number of 16-bit PCM samples one Decode call
// produces: four 10ms sub-frames at 8kHz.
const SamplesPerPacket = model.NumFrames * model.NSpf

// Decoder holds all persistent state for one decoded stream: the previous
// sub-frame's terminal model, its LSF vector, the phase accumulator, and
// the overlap-add working buffer, bundled into a single instance owned by
// the caller. Multiple concurrent streams require multiple Decoder
// instances.
type Decoder struct {
	state *model.State

	forwardFFT *fft.Forward
	inverseFFT *fft.Inverse
}

// New constructs a Decoder, initializing the FFT transforms and the
// persistent LSF vector. It panics if the FFT package ever stops
// supporting the compile-time-fixed length 512 — a programming error that
// should abort process startup, not propagate as a runtime error.
func New() *Decoder {
	fwd, err := fft.NewForward(fft.Size)
	if err != nil {
		panic(ErrFFTInit)
	}
	inv, err := fft.NewInverse(fft.Size)
	if err != nil {
		panic(ErrFFTInit)
	}

	return &Decoder{
		state:      model.NewState(),
		forwardFFT: fwd,
		inverseFFT: inv,
	}
}

// Decode decodes one 7-byte compressed packet into 320 samples of 16-bit
// signed PCM at 8kHz. out must have length >= SamplesPerPacket.
func (d *Decoder) Decode(out []int16, bits *[7]byte) {
	pkt := bitpack.Unpack(bits, false)

	var frames [model.NumFrames]model.Frame
	for i := 0; i < model.NumFrames; i++ {
		frames[i].Voiced = pkt.Voiced[i] != 0
	}

	frames[3].Wo = tables.WoLUT[pkt.WoIndex]
	frames[3].Pitch = tables.PitchLUT[pkt.WoIndex]
	frames[3].L = int(tables.LLUT[pkt.WoIndex])
	frames[3].Energy = tables.EnergyLUT[pkt.EnergyIndex]

	receivedLSF := lsp.DecodeScalar(&pkt.LSPIndexes)
	lsp.CheckOrder(&receivedLSF)
	lsp.BWExpand(&receivedLSF)

	var lsf [model.NumFrames][model.LPCOrder]int32
	lsf[3] = receivedLSF

	for i := 0; i < 3; i++ {
		interp.LSP(&lsf[i], &d.state.PrevLSFs, &receivedLSF, i)
		interp.Wo(&frames[i], &d.state.PrevModel, &frames[3], i)
		interp.Energy(&frames[i], &d.state.PrevModel, &frames[3], i)
	}

	for i := 0; i < model.NumFrames; i++ {
		lspCoeffs := lsp.LSFToLSP(&lsf[i])
		lpc := lsp.ToLPC(&lspCoeffs)

		envelope := synth.LPCToAmplitudes(d.forwardFFT, lpc[:], &frames[i], frames[i].Energy)
		synth.ApplyLPCCorrection(&frames[i])

		synth.PhaseSynth(d.state, &frames[i], envelope)

		maxAmplitude := synth.Synthesise(d.inverseFFT, d.state, &frames[i])
		synth.EarProtection(d.state, maxAmplitude)

		synth.OutputSamples(d.state, out[model.NSpf*i:model.NSpf*(i+1)])
	}

	d.state.PrevModel = frames[3]
	d.state.PrevLSFs = lsf[3]
}
