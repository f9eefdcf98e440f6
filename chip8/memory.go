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

const (
	/// MemorySize is the number of addressable bytes.
	///
	MemorySize = 0x1000

	/// ProgramStart is where every program is loaded and begins execution.
	/// Everything below it is reserved for the interpreter and font.
	///
	ProgramStart = 0x200

	/// StackDepth is how many return addresses may be pushed.
	///
	StackDepth = 16
)

/// Memory addressable by CHIP-8.
///
type Memory [MemorySize]byte

/// Load copies data into memory at offset. Nothing is written unless all
/// of it fits.
///
func (m *Memory) Load(offset int, data []byte) error {
	if offset < 0 || offset+len(data) > MemorySize {
		return &ResourceFault{Offset: offset, Size: len(data)}
	}

	copy(m[offset:], data)

	return nil
}

/// Slice returns n bytes starting at address.
///
func (m *Memory) Slice(address uint16, n int) ([]byte, error) {
	if int(address)+n > MemorySize {
		return nil, ErrAddressOutOfRange
	}

	return m[address : int(address)+n], nil
}

/// Word reads the big-endian 16-bit value at address.
///
func (m *Memory) Word(address uint16) (uint16, error) {
	b, err := m.Slice(address, 2)
	if err != nil {
		return 0, err
	}

	return uint16(b[0])<<8 | uint16(b[1]), nil
}

/// Stack of subroutine return addresses. It never grows past StackDepth.
///
type Stack struct {
	Addresses [StackDepth]uint16

	/// SP is the number of addresses currently pushed.
	///
	SP int
}

/// Push a return address.
///
func (s *Stack) Push(address uint16) error {
	if s.SP == StackDepth {
		return ErrStackOverflow
	}

	s.Addresses[s.SP] = address
	s.SP += 1

	return nil
}

/// Pop the most recent return address.
///
func (s *Stack) Pop() (uint16, error) {
	if s.SP == 0 {
		return 0, ErrStackUnderflow
	}

	s.SP -= 1

	// popped slots read back as zero
	address := s.Addresses[s.SP]
	s.Addresses[s.SP] = 0

	return address, nil
}
