package sdlhost

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// console is the putchar sink: the terminal the emulator was launched
// from, switched to cbreak mode so emitted control bytes pass through
// unmolested. The original attributes are restored on Destroy.
type console struct {
	out *os.File

	savedAttr  unix.Termios
	cbreakAttr unix.Termios
	saved      bool
}

func newConsole() (*console, error) {
	c := &console{out: os.Stdout}

	// not a fatal problem if stdout is not a terminal (piped output, CI);
	// putchar still works, there's just no mode to set
	if err := termios.Tcgetattr(c.out.Fd(), &c.savedAttr); err != nil {
		return c, nil
	}
	c.saved = true

	c.cbreakAttr = c.savedAttr
	termios.Cfmakecbreak(&c.cbreakAttr)
	_ = termios.Tcsetattr(c.out.Fd(), termios.TCIFLUSH, &c.cbreakAttr)

	return c, nil
}

func (c *console) restore() {
	if c.saved {
		_ = termios.Tcsetattr(c.out.Fd(), termios.TCIFLUSH, &c.savedAttr)
	}
}

func (c *console) putchar(b byte) {
	_, _ = c.out.Write([]byte{b})
}
