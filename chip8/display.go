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

// Display resolution in pixels.
const (
	Width  = 64
	Height = 32
)

// Display is the monochrome frame buffer. Pixels only change by being
// toggled (XOR) or cleared, and any change marks the buffer dirty until the
// renderer consumes it.
type Display struct {
	pixels [Width * Height]bool
	dirty  bool
}

func index(x, y int) int {
	x %= Width
	y %= Height

	// wrap negative coordinates as well
	if x < 0 {
		x += Width
	}
	if y < 0 {
		y += Height
	}

	return y*Width + x
}

// Pixel returns whether the pixel at x, y is lit.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[index(x, y)]
}

// Toggle flips the pixel at x, y and returns true if it was turned off.
func (d *Display) Toggle(x, y int) bool {
	i := index(x, y)

	erased := d.pixels[i]
	d.pixels[i] = !erased
	d.dirty = true

	return erased
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = [Width * Height]bool{}
	d.dirty = true
}

// Dirty is true if the display changed since the last ClearDirty.
func (d *Display) Dirty() bool {
	return d.dirty
}

// ClearDirty is called by the renderer once it has consumed a frame.
func (d *Display) ClearDirty() {
	d.dirty = false
}

// Size returns the width and height of the display.
func (d *Display) Size() (int, int) {
	return Width, Height
}

// Pixels returns a copy of the frame, row major.
func (d *Display) Pixels() [Width * Height]bool {
	return d.pixels
}
