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

// Command chip8-ebiten runs a CHIP-8 ROM in an Ebitengine window.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/massung/chip8-core/chip8"
)

// keyMap maps the left hand side of a QWERTY keyboard to the keypad.
var keyMap = map[ebiten.Key]uint{
	ebiten.KeyX:      0x0,
	ebiten.KeyDigit1: 0x1,
	ebiten.KeyDigit2: 0x2,
	ebiten.KeyDigit3: 0x3,
	ebiten.KeyQ:      0x4,
	ebiten.KeyW:      0x5,
	ebiten.KeyE:      0x6,
	ebiten.KeyA:      0x7,
	ebiten.KeyS:      0x8,
	ebiten.KeyD:      0x9,
	ebiten.KeyZ:      0xA,
	ebiten.KeyC:      0xB,
	ebiten.KeyDigit4: 0xC,
	ebiten.KeyR:      0xD,
	ebiten.KeyF:      0xE,
	ebiten.KeyV:      0xF,
}

var (
	colorOn  = []byte{17, 29, 43, 255}
	colorOff = []byte{143, 145, 133, 255}
)

// Game drives the VM one frame per Ebitengine tick.
type Game struct {
	vm     *chip8.CHIP_8
	screen *ebiten.Image
	pixels []byte
	paused bool
}

func NewGame(vm *chip8.CHIP_8) *Game {
	return &Game{
		vm:     vm,
		screen: ebiten.NewImage(chip8.Width, chip8.Height),
		pixels: make([]byte, chip8.Width*chip8.Height*4),
	}
}

// Update polls the keyboard and runs a frame of instructions.
func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		g.vm.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.vm.DecSpeed()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.vm.IncSpeed()
	}

	// the whole keypad is replaced at once
	var keys [chip8.KeyCount]bool
	for k, key := range keyMap {
		keys[key] = ebiten.IsKeyPressed(k)
	}
	g.vm.Keypad.Store(keys)

	if g.paused {
		return nil
	}

	return g.vm.Frame()
}

// Draw uploads the display buffer when it changed and scales it to the
// window.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.vm.Display.Dirty() {
		for i, on := range g.vm.Display.Pixels() {
			if on {
				copy(g.pixels[i*4:], colorOn)
			} else {
				copy(g.pixels[i*4:], colorOff)
			}
		}

		g.screen.WritePixels(g.pixels)
		g.vm.Display.ClearDirty()
	}

	screen.DrawImage(g.screen, nil)
}

// Layout keeps the logical screen at the CHIP-8 resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return chip8.Width, chip8.Height
}

func main() {
	var speed int
	var scale int
	var quiet bool

	flag.IntVar(&speed, "speed", chip8.DefaultSpeed, "instructions executed per second")
	flag.IntVar(&scale, "scale", 10, "window pixels per CHIP-8 pixel")
	flag.BoolVar(&quiet, "q", false, "don't echo the log to stderr")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %v [options] <rom>", os.Args[0])
	}

	file := flag.Arg(0)

	program, err := os.ReadFile(file)
	if err != nil {
		log.Fatalf("%v: %v", file, err)
	}

	vm, err := chip8.LoadROM(program)
	if err != nil {
		log.Fatalf("%v: %v", file, err)
	}

	if !quiet {
		vm.Log.Out = os.Stderr
	}

	vm.SetSpeed(speed)

	if vm.Speaker, err = NewBeeper(); err != nil {
		log.Printf("audio: %v", err)
		vm.Speaker = nil
	}

	ebiten.SetWindowTitle("CHIP-8 - " + filepath.Base(file))
	ebiten.SetWindowSize(chip8.Width*scale, chip8.Height*scale)
	ebiten.SetTPS(chip8.TimerHz)

	if err := ebiten.RunGame(NewGame(vm)); err != nil {
		var fault *chip8.Fault
		if errors.As(err, &fault) {
			for _, line := range vm.Log.Window(16) {
				log.Print(line)
			}
		}

		log.Fatal(err)
	}
}
