/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/massung/chip8-core/chip8"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// The CHIP-8 virtual machine.
	///
	VM *chip8.CHIP_8

	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer

	/// True if pausing emulation (single stepping).
	///
	Paused bool

	/// Quiet disables echoing the VM log.
	///
	Quiet bool

	/// File is the ROM currently loaded.
	///
	File string

	/// Logger echoes the VM log to stderr.
	///
	Logger = log.New(os.Stderr, "chip8: ", 0)
)

func init() {
	runtime.LockOSThread()
}

func main() {
	speed := flag.Int("speed", chip8.DefaultSpeed, "instructions executed per second")
	scale := flag.Int("scale", 10, "window pixels per CHIP-8 pixel")

	flag.BoolVar(&Paused, "paused", false, "start paused")
	flag.BoolVar(&Quiet, "q", false, "don't echo the log to stderr")
	flag.Parse()

	if flag.NArg() > 1 {
		Logger.Fatalf("unknown arguments: %v", flag.Args()[1:])
	}

	// the ROM is either on the command line or picked
	if File = flag.Arg(0); File == "" {
		if File = LoadDialog(); File == "" {
			return
		}
	}

	// create a new CHIP-8 virtual machine, must happen early!
	if err := Load(*speed); err != nil {
		Logger.Fatal(err)
	}

	// initialize SDL or panic
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	// create the main window and renderer or panic
	var err error

	w, h := int32(chip8.Width**scale), int32(chip8.Height**scale)
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(w, h, sdl.WINDOW_OPENGL); err != nil {
		panic(err)
	}

	// set the title
	Window.SetTitle("CHIP-8 - " + filepath.Base(File))

	// initialize subsystems
	InitScreen()
	InitAudio()

	if err := Run(); err != nil {
		if Quiet {
			for _, line := range VM.Log.Window(16) {
				Logger.Print(line)
			}
		}

		dialog.Message("%v", err).Title("CHIP-8").Error()

		sdl.Quit()
		os.Exit(1)
	}
}

/// Run the driver loop until the window is closed or the VM faults.
///
func Run() error {
	clock := time.NewTicker(time.Millisecond * 3)
	video := time.NewTicker(time.Second / chip8.TimerHz)

	defer clock.Stop()
	defer video.Stop()

	VM.Start(time.Now())

	// loop until window closed or user quit
	for ProcessEvents() {
		select {
		case <-video.C:
			Refresh()
		case now := <-clock.C:
			if err := VM.Process(now, Paused); err != nil {
				return err
			}
		}
	}

	return nil
}

/// Load the current File into a new virtual machine.
///
func Load(speed int) error {
	program, err := os.ReadFile(File)
	if err != nil {
		return err
	}

	vm, err := chip8.LoadROM(program)
	if err != nil {
		return err
	}

	if !Quiet {
		vm.Log.Out = logWriter{}
	}
	vm.Speaker = Beeper{}
	vm.SetSpeed(speed)

	// swapping machines silences the old one
	if VM != nil {
		VM.Speaker = nil
		Beeper{}.Stop()
	}

	VM = vm
	VM.Log.Logln("Loaded", filepath.Base(File))

	return nil
}

/// logWriter sends VM log lines through Logger.
///
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	Logger.Print(string(p))

	return len(p), nil
}

/// LoadDialog asks for a ROM file, returning "" if cancelled.
///
func LoadDialog() string {
	file, err := dialog.File().Title("Load ROM").Filter("CHIP-8 ROM", "ch8", "c8").Filter("All files", "*").Load()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			Logger.Print(err)
		}
		return ""
	}

	return file
}

/// Refresh the window, redrawing the screen texture if the VM drew.
///
func Refresh() {
	if VM.Display.Dirty() {
		RefreshScreen()
		VM.Display.ClearDirty()
	}

	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.Clear()

	CopyScreen()

	// show the new frame
	Renderer.Present()
}
