// Package bitpack dissects a 7-byte compressed packet into the decoder's
// Packet fields: voicing bits, pitch/Wo index, energy index, and ten
// Gray-coded LSP codebook indices of varying width.
package bitpack

import "github.com/hrvach/talkberry/internal/model"

// lspBits and lspMasks mirror the codebook's per-coefficient widths
// (4,4,4,4,4,4,4,3,3,2 bits); kept local so this package has no dependency
// on the codebook itself, only on the bit layout.
var (
	lspBits  = [model.LPCOrder]uint{4, 4, 4, 4, 4, 4, 4, 3, 3, 2}
	lspMasks = [model.LPCOrder]uint64{15, 15, 15, 15, 15, 15, 15, 7, 7, 3}
)

// DecodeGray folds an N-bit Gray-coded value back to binary by XORing it
// with successive right shifts of itself.
func DecodeGray(num uint64) uint64 {
	num ^= num >> 8
	num ^= num >> 4
	num ^= num >> 2
	num ^= num >> 1
	return num
}

// Unpack assembles a 7-byte big-endian packet into a 56-bit word and
// extracts the voicing bits, the 7-bit Wo index, the 5-bit energy index,
// and the ten LSP codebook indices.
//
// isOdd shifts the assembled word left by 4 bits first, aligning the
// "odd-packet" 4-bit offset layout before field extraction. The single
// exercised code path always passes isOdd = false; the odd path is kept
// and exercised only by tests against synthetic input.
func Unpack(input *[7]byte, isOdd bool) model.Packet {
	var in uint64
	for i := 0; i < 7; i++ {
		in = (in << 8) + uint64(input[i])
	}
	if isOdd {
		in <<= 4
	}

	var pkt model.Packet

	pkt.Voiced[3] = int(DecodeGray((in >> 52) & 1))
	pkt.Voiced[2] = int(DecodeGray((in >> 53) & 1))
	pkt.Voiced[1] = int(DecodeGray((in >> 54) & 1))
	pkt.Voiced[0] = int(DecodeGray((in >> 55) & 1))

	pkt.WoIndex = int(DecodeGray((in >> 45) & 0x7f))
	pkt.EnergyIndex = int(DecodeGray((in >> 40) & 0x1f))

	lsp := in >> 4
	for i := model.LPCOrder - 1; i >= 0; i-- {
		pkt.LSPIndexes[i] = int(DecodeGray(lsp & lspMasks[i]))
		lsp >>= lspBits[i]
	}

	return pkt
}
