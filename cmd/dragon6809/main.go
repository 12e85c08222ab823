// The dragon6809 command boots a Dragon 32 from a ROM image in an SDL2
// window.
//
//	dragon6809 -rom dragon32.rom [-cas image.cas] [-scale 3]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/mjsallard/dragon6809/hardware/machine"
	"github.com/mjsallard/dragon6809/host/sdlhost"
	"github.com/mjsallard/dragon6809/logger"
)

func main() {
	// SDL windowing must stay on the main OS thread; the emulation runs
	// in its own goroutine
	runtime.LockOSThread()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dragon6809: %v\n", err)
		logger.Tail(os.Stderr, 20)
		os.Exit(1)
	}
}

func run() error {
	romFile := flag.String("rom", "", "Dragon 32 ROM image")
	casFile := flag.String("cas", "", "cassette image to mount (.cas or .wav)")
	scale := flag.Int("scale", 3, "window scale factor")
	flag.Parse()

	if *romFile == "" {
		return fmt.Errorf("no ROM image specified (-rom)")
	}

	rom, err := os.ReadFile(*romFile)
	if err != nil {
		return err
	}

	h, err := sdlhost.NewHost(*scale)
	if err != nil {
		return err
	}
	defer h.Destroy()

	if *casFile != "" {
		if err := h.MountCassette(*casFile); err != nil {
			return err
		}
	}

	m, err := machine.NewMachine(h, rom)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx)
	}()

	// service loop: pump events and present frames at the field rate
	tick := time.NewTicker(20 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case <-h.Quit:
			cancel()
			<-done
			return nil

		case err := <-done:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err

		case <-tick.C:
			h.Service()
		}
	}
}
