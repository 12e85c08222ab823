package sdlhost

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mjsallard/dragon6809/errors"
	"github.com/mjsallard/dragon6809/test"
)

func writeImage(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.cas")
	test.ExpectSuccess(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestCassetteReadBeforeOpen(t *testing.T) {
	c, err := newCassetteFile(writeImage(t, []byte{0x55}))
	test.ExpectSuccess(t, err)

	_, err = c.ReadByte()
	test.ExpectEquality(t, stderrors.Is(err, errors.ErrCassetteNotMounted), true)
}

func TestCassetteReadAfterOpen(t *testing.T) {
	c, err := newCassetteFile(writeImage(t, []byte{0x55, 0x3c}))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c.Open())

	b, err := c.ReadByte()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0x55))

	b, err = c.ReadByte()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0x3c))

	_, err = c.ReadByte()
	test.ExpectEquality(t, stderrors.Is(err, io.EOF), true)
}

func TestCassetteOpenDoesNotRewind(t *testing.T) {
	c, err := newCassetteFile(writeImage(t, []byte{0x01, 0x02}))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c.Open())

	_, err = c.ReadByte()
	test.ExpectSuccess(t, err)

	// a second motor-on must not reset the read position
	test.ExpectSuccess(t, c.Open())

	b, err := c.ReadByte()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, b, uint8(0x02))
}

func TestCassetteOpenReadFailure(t *testing.T) {
	path := writeImage(t, []byte{0x55})
	c, err := newCassetteFile(path)
	test.ExpectSuccess(t, err)

	// the image disappearing between mount and motor-on surfaces as a
	// block read failure
	test.ExpectSuccess(t, os.Remove(path))

	err = c.Open()
	test.ExpectEquality(t, stderrors.Is(err, errors.ErrBlockDeviceRead), true)
}

func TestCassetteMissingImage(t *testing.T) {
	_, err := newCassetteFile(filepath.Join(t.TempDir(), "nope.cas"))
	test.ExpectFailure(t, err)
}
