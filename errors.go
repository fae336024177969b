package talkberry

import "errors"

// ErrFFTInit is the decoder's one construction-time failure mode: the FFT
// instance reporting an unsupported length. The length is compile-time
// fixed at 512, so this can only happen if the internal/fft package is ever
// parameterized away from that constant.
var ErrFFTInit = errors.New("talkberry: fft initialization failed")
