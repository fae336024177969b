// Command talkberry-decode demonstrates the public decoder API: it reads a
// stream of 7-byte compressed packets from a file (or stdin) and writes
// 16-bit PCM samples at 8kHz to a file (or stdout), optionally wrapped in a
// WAV container. Packet framing, file I/O, and the output container are
// explicitly outside the core decoder's scope and live only here.
package main

import (
	"bufio"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/hrvach/talkberry"
)

var cli struct {
	Input  string `arg:"" optional:"" name:"input" help:"Compressed bitstream file (7 bytes per packet). Reads stdin if omitted." type:"existingfile"`
	Output string `short:"o" default:"-" help:"Output file for PCM samples. Writes stdout if \"-\"."`
	Wav    bool   `help:"Wrap the PCM output in a WAV container instead of writing raw samples."`
	Debug  bool   `short:"d" help:"Enable verbose per-packet logging."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("talkberry-decode"),
		kong.Description("Decode a compressed speech bitstream to 16-bit PCM."),
		kong.UsageOnError(),
	)

	logger := log.New(os.Stderr)
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	in, err := openInput(cli.Input)
	if err != nil {
		logger.Fatal("opening input", "err", err)
	}
	defer in.Close()

	out, err := openOutput(cli.Output)
	if err != nil {
		logger.Fatal("opening output", "err", err)
	}
	defer out.Close()

	logger.Info("decoding", "input", displayName(cli.Input), "output", displayName(cli.Output), "wav", cli.Wav)

	var sink pcmSink
	if cli.Wav {
		w, err := newWavWriter(out)
		if err != nil {
			logger.Fatal("writing WAV header", "err", err)
		}
		defer func() {
			if err := w.Close(); err != nil {
				logger.Error("finalizing WAV header", "err", err)
			}
		}()
		sink = w
	} else {
		sink = rawWriter{out}
	}

	decoder := talkberry.New()
	samples := make([]int16, talkberry.SamplesPerPacket)

	var packet [7]byte
	reader := bufio.NewReader(in)
	packets := 0

	for {
		if _, err := io.ReadFull(reader, packet[:]); err != nil {
			if err == io.EOF {
				break
			}
			logger.Fatal("reading packet", "err", err, "packet", packets)
		}

		decoder.Decode(samples, &packet)
		if err := sink.WriteSamples(samples); err != nil {
			logger.Fatal("writing samples", "err", err, "packet", packets)
		}

		packets++
		logger.Debug("decoded packet", "index", packets)
	}

	logger.Info("done", "packets", packets, "samples", packets*talkberry.SamplesPerPacket)
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (*os.File, error) {
	if path == "-" || path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "<stdio>"
	}
	return path
}
