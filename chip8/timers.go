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

package chip8

// TimerHz is the rate both timers count down at.
const TimerHz = 60

// Timers are the delay and sound countdown registers.
type Timers struct {
	Delay byte
	Sound byte
}

// Tick decrements each running timer once. It returns true when the sound
// timer just expired.
func (t *Timers) Tick() (stopped bool) {
	if t.Delay > 0 {
		t.Delay -= 1
	}

	if t.Sound > 0 {
		stopped = t.Sound == 1
		t.Sound -= 1
	}

	return
}

// Speaker receives the sound timer's start and stop edges. Playback
// should run from Start until Stop.
type Speaker interface {
	Start()
	Stop()
}
