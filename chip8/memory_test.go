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

func TestMemory_Load(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	assert.NoError(m.Load(0x300, []byte{1, 2, 3}))
	assert.Equal([]byte{1, 2, 3}, m[0x300:0x303])

	assert.ErrorIs(m.Load(MemorySize-2, []byte{1, 2, 3}), ErrROMTooLarge)
	assert.ErrorIs(m.Load(-1, []byte{1}), ErrROMTooLarge)
	assert.Equal(byte(0), m[MemorySize-2])
}

func TestMemory_Slice(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	m[MemorySize-1] = 0xAB

	b, err := m.Slice(MemorySize-1, 1)
	assert.NoError(err)
	assert.Equal([]byte{0xAB}, b)

	// slices alias memory
	b[0] = 0xCD
	assert.Equal(byte(0xCD), m[MemorySize-1])

	_, err = m.Slice(MemorySize-1, 2)
	assert.ErrorIs(err, ErrAddressOutOfRange)

	b, err = m.Slice(0x200, 0)
	assert.NoError(err)
	assert.Empty(b)
}

func TestMemory_Word(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	m[0x200] = 0x12
	m[0x201] = 0x34

	w, err := m.Word(0x200)
	assert.NoError(err)
	assert.Equal(uint16(0x1234), w)

	_, err = m.Word(MemorySize - 1)
	assert.ErrorIs(err, ErrAddressOutOfRange)
}

func TestStack(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for i := 0; i < StackDepth; i++ {
		assert.NoError(s.Push(uint16(0x200 + i*2)))
	}
	assert.Equal(StackDepth, s.SP)

	assert.ErrorIs(s.Push(0x300), ErrStackOverflow)
	assert.Equal(StackDepth, s.SP)
	assert.Equal(uint16(0x21E), s.Addresses[StackDepth-1])

	for i := StackDepth - 1; i >= 0; i-- {
		address, err := s.Pop()
		assert.NoError(err)
		assert.Equal(uint16(0x200+i*2), address)
	}

	_, err := s.Pop()
	assert.ErrorIs(err, ErrStackUnderflow)
	assert.Equal(0, s.SP)
	assert.Equal([StackDepth]uint16{}, s.Addresses)
}
