package sdlhost

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// the buffer length balances latency against the cost of queueing audio.
// the precise value is not critical.
const audioBufferLength = 256

// sampleFreq approximates the rate the Dragon ROM drives the DAC at when
// producing sound.
const sampleFreq = 11025

// audio queues 6-bit DAC samples to an SDL audio device. Samples only
// reach the speaker while the multiplexer routes the DAC to the sound
// output.
type audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer   []uint8
	bufferCt int

	muxSel uint8
}

func newAudio() (*audio, error) {
	a := &audio{
		buffer: make([]uint8, audioBufferLength),
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(audioBufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	a.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	a.spec = actualSpec

	sdl.PauseAudioDevice(a.id, false)

	return a, nil
}

func (a *audio) destroy() {
	if a.id != 0 {
		sdl.CloseAudioDevice(a.id)
	}
}

func (a *audio) muxSet(sel uint8) {
	a.muxSel = sel
}

func (a *audio) writeDAC(value uint8) {
	// mux selection 0 routes the DAC to the speaker; anything else is the
	// cassette or a joystick axis and produces no sound
	if a.muxSel != 0 {
		return
	}

	// centre the 6-bit sample in the unsigned 8-bit range; a true zero
	// upsets some sound devices
	a.buffer[a.bufferCt] = value<<2 | 0x01
	a.bufferCt++

	if a.bufferCt >= len(a.buffer) {
		a.flush()
	}
}

func (a *audio) flush() {
	_ = sdl.QueueAudio(a.id, a.buffer[:a.bufferCt])
	a.bufferCt = 0
}
