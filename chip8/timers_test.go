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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimers_Tick(t *testing.T) {
	assert := assert.New(t)

	timers := Timers{Delay: 2, Sound: 2}

	assert.False(timers.Tick())
	assert.Equal(Timers{Delay: 1, Sound: 1}, timers)

	assert.True(timers.Tick())
	assert.Equal(Timers{}, timers)

	// stopped timers stay stopped
	assert.False(timers.Tick())
	assert.Equal(Timers{}, timers)
}

func TestTimers_Independent(t *testing.T) {
	assert := assert.New(t)

	timers := Timers{Delay: 5}
	assert.False(timers.Tick())
	assert.Equal(byte(4), timers.Delay)
	assert.Equal(byte(0), timers.Sound)
}
