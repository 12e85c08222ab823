// Package sdlhost is the reference implementation of the host.Provider
// contract: an SDL2 window and audio device, keyboard input mapped to the
// Dragon's scan codes, a cbreak-mode terminal console, and cassette images read
// from the local filesystem.
//
// SDL requires that window and event operations happen on the main OS
// thread. The emulation itself runs in its own goroutine; the main
// goroutine calls Service repeatedly to pump events and present frames.
package sdlhost

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/mjsallard/dragon6809/host"
)

// Host implements host.Provider on top of SDL2 and the local filesystem.
type Host struct {
	display *display
	audio   *audio
	input   *input
	console *console

	cassette *cassetteFile

	started time.Time

	// Quit is closed when the user closes the window.
	Quit chan struct{}
}

// NewHost initialises SDL and the cbreak-mode console.
//
// Must be called from the main goroutine.
func NewHost(scale int) (*Host, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	h := &Host{
		started: time.Now(),
		Quit:    make(chan struct{}),
	}

	var err error

	h.display, err = newDisplay(scale)
	if err != nil {
		return nil, err
	}

	h.audio, err = newAudio()
	if err != nil {
		return nil, err
	}

	h.input = newInput()

	h.console, err = newConsole()
	if err != nil {
		return nil, err
	}

	return h, nil
}

// Destroy releases SDL resources and restores the terminal.
func (h *Host) Destroy() {
	h.console.restore()
	h.audio.destroy()
	h.display.destroy()
	sdl.Quit()
}

// Service pumps SDL events and presents the most recent frame. Call at
// frequent intervals from the main goroutine.
func (h *Host) Service() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			select {
			case <-h.Quit:
			default:
				close(h.Quit)
			}

		case *sdl.KeyboardEvent:
			h.input.keyboardEvent(ev)
		}
	}

	h.display.present()
}

// MountCassette attaches a cassette image file for the PIA's bit pump.
func (h *Host) MountCassette(path string) error {
	c, err := newCassetteFile(path)
	if err != nil {
		return err
	}
	h.cassette = c
	return nil
}

// SystemTimer implements host.Timer: microseconds since host creation.
func (h *Host) SystemTimer() uint32 {
	return uint32(time.Since(h.started).Microseconds())
}

// KeyboardRead implements host.Keyboard.
func (h *Host) KeyboardRead() uint8 {
	return h.input.nextScanCode()
}

// JoystickComparator implements host.Joystick. No analogue joystick is
// attached; the comparator always reads low.
func (h *Host) JoystickComparator() bool {
	return false
}

// RightJoystickButton implements host.Joystick: line level, low while the
// mapped button is held.
func (h *Host) RightJoystickButton() bool {
	return !h.input.joystickButton()
}

// ResetButton implements host.ResetButton: active low, pressed while F12
// is held.
func (h *Host) ResetButton() bool {
	return !h.input.resetHeld()
}

// AudioMuxSet implements host.Audio.
func (h *Host) AudioMuxSet(sel uint8) {
	h.audio.muxSet(sel)
}

// WriteDAC implements host.Audio.
func (h *Host) WriteDAC(value uint8) {
	h.audio.writeDAC(value)
}

// SetPalette implements host.Display.
func (h *Host) SetPalette(palette [16][3]uint8) {
	h.display.setPalette(palette)
}

// FBInit implements host.Display.
func (h *Host) FBInit(width, height int) ([]uint8, error) {
	return h.display.resize(width, height)
}

// FBResolution implements host.Display.
func (h *Host) FBResolution(width, height int) ([]uint8, error) {
	return h.display.resize(width, height)
}

// MountedCassette implements host.Cassette.
func (h *Host) MountedCassette() host.CassetteFile {
	if h.cassette == nil {
		return nil
	}
	return h.cassette
}

// Putchar implements host.Console.
func (h *Host) Putchar(c byte) {
	h.console.putchar(c)
}
