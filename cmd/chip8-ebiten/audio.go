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
	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	toneHz     = 440
	volume     = 0x2000
)

// squareWave is an endless 16-bit stereo square wave.
type squareWave struct {
	pos int64
}

func (s *squareWave) Read(buf []byte) (int, error) {
	n := len(buf) / 4 * 4

	for i := 0; i < n; i += 4 {
		v := int16(volume)

		// second half of each period is low
		if s.pos*toneHz*2/sampleRate%2 == 1 {
			v = -v
		}

		buf[i+0] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)

		s.pos++
	}

	return n, nil
}

// Beeper plays the square wave while the sound timer runs.
type Beeper struct {
	player *audio.Player
}

func NewBeeper() (*Beeper, error) {
	ctx := audio.NewContext(sampleRate)

	player, err := ctx.NewPlayer(&squareWave{})
	if err != nil {
		return nil, err
	}

	return &Beeper{player: player}, nil
}

func (b *Beeper) Start() {
	b.player.Play()
}

func (b *Beeper) Stop() {
	b.player.Pause()
}
