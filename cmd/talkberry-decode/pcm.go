package main

import (
	"encoding/binary"
	"io"
)

// pcmSink accepts successive 16-bit PCM sample batches from the decoder.
type pcmSink interface {
	WriteSamples(samples []int16) error
}

// rawWriter writes little-endian 16-bit PCM with no container, matching the
// reference demo's raw write() to /dev/dsp.
type rawWriter struct {
	w io.Writer
}

func (r rawWriter) WriteSamples(samples []int16) error {
	buf := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(buf[2*i:], uint16(s))
	}
	_, err := r.w.Write(buf)
	return err
}
