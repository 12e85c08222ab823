package sdlhost

import (
	"bytes"
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/mjsallard/dragon6809/errors"
)

// cassetteFile implements host.CassetteFile over a cassette image on
// disk. Raw .cas images are byte streams already; .wav recordings of real
// tapes are demodulated into the same byte stream when the file is
// opened.
type cassetteFile struct {
	path string

	data   []byte
	offset int
	open   bool
}

func newCassetteFile(path string) (*cassetteFile, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cassette: %w", err)
	}
	return &cassetteFile{path: path}, nil
}

// Open implements host.CassetteFile. Re-opening an already open file does
// not rewind it, matching what the PIA's motor control expects.
func (c *cassetteFile) Open() error {
	if c.open {
		return nil
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrBlockDeviceRead, err)
	}

	if bytes.HasPrefix(data, []byte("RIFF")) {
		demod, err := demodulateWAV(data)
		if err != nil {
			return fmt.Errorf("cassette: %w", err)
		}
		data = demod
	}

	c.data = data
	c.offset = 0
	c.open = true

	return nil
}

// ReadByte implements host.CassetteFile. Reading before the motor has
// opened the file fails with ErrCassetteNotMounted; running off the end of
// the image is io.EOF. The PIA treats either as leader-tone padding.
func (c *cassetteFile) ReadByte() (byte, error) {
	if !c.open {
		return 0, errors.ErrCassetteNotMounted
	}
	if c.offset >= len(c.data) {
		return 0, io.EOF
	}
	b := c.data[c.offset]
	c.offset++
	return b, nil
}

// demodulateWAV converts a recording of a Dragon tape into its byte
// stream. The tape format is Kansas City style FSK: a 2400Hz cycle is a
// one bit, 1200Hz a zero, LSB first. Cycle length is measured between
// upward zero crossings and compared against the midpoint period.
func demodulateWAV(data []byte) ([]byte, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	if buf.Format == nil || buf.Format.SampleRate == 0 {
		return nil, fmt.Errorf("wav: no format information")
	}

	// samples per cycle at the two FSK frequencies; the decision
	// threshold sits between them
	rate := buf.Format.SampleRate
	threshold := (rate/2400 + rate/1200) / 2

	samples := monoSamples(buf)

	var out []byte
	var bits, bitCount int
	lastCrossing := -1

	for i := 1; i < len(samples); i++ {
		if !(samples[i-1] < 0 && samples[i] >= 0) {
			continue
		}

		if lastCrossing >= 0 {
			period := i - lastCrossing

			bits >>= 1
			if period <= threshold {
				bits |= 0x80
			}
			bitCount++

			if bitCount == 8 {
				out = append(out, byte(bits))
				bits = 0
				bitCount = 0
			}
		}

		lastCrossing = i
	}

	return out, nil
}

// monoSamples flattens a PCM buffer to its first channel.
func monoSamples(buf *goaudio.IntBuffer) []int {
	if buf.Format.NumChannels <= 1 {
		return buf.Data
	}

	mono := make([]int, 0, len(buf.Data)/buf.Format.NumChannels)
	for i := 0; i < len(buf.Data); i += buf.Format.NumChannels {
		mono = append(mono, buf.Data[i])
	}
	return mono
}
