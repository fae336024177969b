package main

import (
	"encoding/binary"
	"io"
)

const (
	wavSampleRate = 8000
	wavChannels   = 1
	wavBitsDepth  = 16
)

// wavWriter wraps raw PCM output in a canonical 44-byte WAV header, patching
// the RIFF and data chunk sizes once the total sample count is known.
type wavWriter struct {
	w         io.WriteSeeker
	dataBytes uint32
}

// newWavWriter writes a placeholder header (sizes filled in on Close) and
// returns a writer ready to receive PCM sample batches.
func newWavWriter(w io.WriteSeeker) (*wavWriter, error) {
	ww := &wavWriter{w: w}
	if err := ww.writeHeader(0); err != nil {
		return nil, err
	}
	return ww, nil
}

func (w *wavWriter) writeHeader(dataBytes uint32) error {
	blockAlign := uint16(wavChannels * wavBitsDepth / 8)
	byteRate := uint32(wavSampleRate) * uint32(blockAlign)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataBytes)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format tag
	binary.LittleEndian.PutUint16(header[22:24], wavChannels)
	binary.LittleEndian.PutUint32(header[24:28], wavSampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], wavBitsDepth)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataBytes)

	if _, err := w.w.Seek(0, io.SeekStart); err != nil {
		return err
	}
	_, err := w.w.Write(header)
	return err
}

func (w *wavWriter) WriteSamples(samples []int16) error {
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	if _, err := w.w.Write(buf); err != nil {
		return err
	}
	w.dataBytes += uint32(len(buf))
	return nil
}

// Close patches the header's chunk sizes now that the total sample count is
// known, then seeks back to the end of the stream.
func (w *wavWriter) Close() error {
	if err := w.writeHeader(w.dataBytes); err != nil {
		return err
	}
	_, err := w.w.Seek(0, io.SeekEnd)
	return err
}
