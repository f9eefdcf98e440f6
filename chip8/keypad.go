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

import "sync"

// Keys on the logical keypad.
//
//	+---+---+---+---+
//	| 1 | 2 | 3 | C |
//	+---+---+---+---+
//	| 4 | 5 | 6 | D |
//	+---+---+---+---+
//	| 7 | 8 | 9 | E |
//	+---+---+---+---+
//	| A | 0 | B | F |
//	+---+---+---+---+
const KeyCount = 16

// Keypad holds the state of the 16 keys. It is written by an input adapter,
// possibly from another goroutine, and read by the VM once per cycle.
type Keypad struct {
	mu   sync.RWMutex
	keys [KeyCount]bool
}

// Press marks key as held down.
func (k *Keypad) Press(key uint) {
	k.Set(key, true)
}

// Release marks key as up.
func (k *Keypad) Release(key uint) {
	k.Set(key, false)
}

// Set the state of a single key. Keys outside 0-F are ignored.
func (k *Keypad) Set(key uint, down bool) {
	if key >= KeyCount {
		return
	}

	k.mu.Lock()
	k.keys[key] = down
	k.mu.Unlock()
}

// Store replaces the whole keypad at once.
func (k *Keypad) Store(keys [KeyCount]bool) {
	k.mu.Lock()
	k.keys = keys
	k.mu.Unlock()
}

// Reset releases every key.
func (k *Keypad) Reset() {
	k.Store([KeyCount]bool{})
}

// Snapshot returns a consistent copy of every key.
func (k *Keypad) Snapshot() [KeyCount]bool {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return k.keys
}
