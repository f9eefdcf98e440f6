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

func TestDisplay_Toggle(t *testing.T) {
	assert := assert.New(t)

	d := &Display{}
	assert.False(d.Dirty())

	assert.False(d.Toggle(3, 4))
	assert.True(d.Pixel(3, 4))
	assert.True(d.Dirty())

	d.ClearDirty()
	assert.True(d.Toggle(3, 4))
	assert.False(d.Pixel(3, 4))
	assert.True(d.Dirty())
}

func TestDisplay_Wrap(t *testing.T) {
	assert := assert.New(t)

	d := &Display{}
	d.Toggle(Width+1, Height+2)
	assert.True(d.Pixel(1, 2))

	d.Toggle(-1, -1)
	assert.True(d.Pixel(Width-1, Height-1))

	pixels := d.Pixels()
	assert.True(pixels[2*Width+1])
	assert.True(pixels[len(pixels)-1])
}

func TestDisplay_Clear(t *testing.T) {
	assert := assert.New(t)

	d := &Display{}
	d.Toggle(0, 0)
	d.Toggle(63, 31)
	d.ClearDirty()

	d.Clear()
	assert.True(d.Dirty())
	assert.Equal([Width * Height]bool{}, d.Pixels())

	w, h := d.Size()
	assert.Equal(64, w)
	assert.Equal(32, h)
}

func TestDisplay_PixelsIsCopy(t *testing.T) {
	d := &Display{}

	pixels := d.Pixels()
	pixels[0] = true

	assert.False(t, d.Pixel(0, 0))
}
