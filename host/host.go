// Package host declares the narrow contract between the emulation core and
// the machine it runs on. The core depends only on these interfaces; the
// concrete implementations (SDL2 window, raw terminal, cassette image
// files) live in the sdlhost sub-package and are substitutable.
package host

// Timer provides a monotonic microsecond counter. Used for the vertical
// sync interval and for reset-button press timing.
type Timer interface {
	SystemTimer() uint32
}

// Keyboard delivers one PS/2-style scan code per call: the table index of
// the key, with bit 7 set on release (break). Zero means no event is
// pending.
type Keyboard interface {
	KeyboardRead() uint8
}

// Joystick exposes the analogue comparator result and the right joystick's
// fire button. The button is reported as its line level: false while
// pressed.
type Joystick interface {
	JoystickComparator() bool
	RightJoystickButton() bool
}

// ResetButton samples the user reset input. Active low: false means
// pressed.
type ResetButton interface {
	ResetButton() bool
}

// Audio receives the audio multiplexer selection and 6-bit DAC samples.
// The two mux bits select between DAC, cassette, and the two joystick
// axes as the analogue bus source.
type Audio interface {
	AudioMuxSet(sel uint8)
	WriteDAC(value uint8)
}

// Display allocates and resizes the 8 bit per pixel indexed frame buffer
// the VDG renders into. SetPalette publishes the fixed 16-entry palette,
// each entry blue-green-red, before the first FBInit call.
type Display interface {
	SetPalette(palette [16][3]uint8)
	FBInit(width, height int) ([]uint8, error)
	FBResolution(width, height int) ([]uint8, error)
}

// CassetteFile is one mounted cassette image. Open transitions the file
// into its readable state (re-opening an already open file must not rewind
// it); ReadByte returns io.EOF when the image is exhausted and
// errors.ErrCassetteNotMounted if called before a successful Open. The
// core treats any read error as leader-tone padding, so neither is fatal.
type CassetteFile interface {
	Open() error
	ReadByte() (byte, error)
}

// Cassette hands out the currently mounted cassette file, or nil if none
// is mounted.
type Cassette interface {
	MountedCassette() CassetteFile
}

// Console receives diagnostic output bytes.
type Console interface {
	Putchar(c byte)
}

// Provider gathers every capability the core needs from its host.
type Provider interface {
	Timer
	Keyboard
	Joystick
	ResetButton
	Audio
	Display
	Cassette
	Console
}
