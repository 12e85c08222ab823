package sdlhost

import (
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Dragon 32"

// display owns the SDL window and the streaming texture the indexed frame
// buffer is expanded into. The VDG writes palette indices into fb from the
// emulation goroutine; present converts and uploads on the main goroutine,
// so access to fb and palette is mutex-guarded.
type display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scale int

	mu      sync.Mutex
	fb      []uint8
	width   int
	height  int
	palette [16][3]uint8
	pixels  []byte
}

func newDisplay(scale int) (*display, error) {
	if scale < 1 {
		scale = 1
	}

	d := &display{scale: scale}

	var err error

	d.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		256*int32(scale), 192*int32(scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	d.renderer, err = sdl.CreateRenderer(d.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	return d, nil
}

func (d *display) destroy() {
	if d.texture != nil {
		_ = d.texture.Destroy()
	}
	if d.renderer != nil {
		_ = d.renderer.Destroy()
	}
	if d.window != nil {
		_ = d.window.Destroy()
	}
}

func (d *display) setPalette(palette [16][3]uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.palette = palette
}

// resize allocates a frame buffer (and matching texture) for a new video
// mode. The window keeps its size; the renderer scales the texture.
func (d *display) resize(width, height int) ([]uint8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.texture != nil {
		_ = d.texture.Destroy()
	}

	var err error
	d.texture, err = d.renderer.CreateTexture(sdl.PIXELFORMAT_BGR888,
		sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		return nil, fmt.Errorf("sdlhost: %w", err)
	}

	d.width = width
	d.height = height
	d.fb = make([]uint8, width*height)
	d.pixels = make([]byte, width*height*4)

	return d.fb, nil
}

// present expands the indexed frame buffer through the palette and puts it
// on screen.
func (d *display) present() {
	d.mu.Lock()

	if d.texture == nil {
		d.mu.Unlock()
		return
	}

	for i, idx := range d.fb {
		c := d.palette[idx&0x0f]
		d.pixels[i*4] = c[0]
		d.pixels[i*4+1] = c[1]
		d.pixels[i*4+2] = c[2]
		d.pixels[i*4+3] = 0xff
	}

	_ = d.texture.Update(nil, d.pixels, d.width*4)
	texture := d.texture
	d.mu.Unlock()

	_ = d.renderer.Clear()
	_ = d.renderer.Copy(texture, nil, nil)
	d.renderer.Present()
}
