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
	"errors"

	"github.com/massung/chip8-core/translate"
)

var f = translate.From

var (
	// Fatal machine faults
	ErrPCOutOfRange      = errors.New(f("program counter out of range"))
	ErrStackOverflow     = errors.New(f("stack overflow"))
	ErrStackUnderflow    = errors.New(f("stack underflow"))
	ErrAddressOutOfRange = errors.New(f("memory address out of range"))

	// Resource faults
	ErrROMTooLarge = errors.New(f("rom too large"))
)

/// Fault is a fatal machine condition. Once raised the VM is halted and
/// every following Step returns the same fault.
///
type Fault struct {
	/// PC is the address of the instruction that faulted.
	///
	PC uint16

	/// Opcode that was executing, zero if the fetch itself failed.
	///
	Opcode uint16

	Err error
}

func (err *Fault) Error() string {
	if err.Opcode == 0 {
		return f("fault at %04X: %v", err.PC, err.Err)
	}

	return f("fault at %04X (%04X %v): %v", err.PC, err.Opcode, Decode(err.Opcode).Op, err.Err)
}

func (err *Fault) Unwrap() error {
	return err.Err
}

/// ResourceFault is returned when a program cannot be loaded.
///
type ResourceFault struct {
	Offset int
	Size   int
}

func (err *ResourceFault) Error() string {
	return f("%v: %v bytes at %04X exceeds %04X", ErrROMTooLarge, err.Size, err.Offset, MemorySize)
}

func (err *ResourceFault) Unwrap() error {
	return ErrROMTooLarge
}

/// DecodeWarning reports an opcode that has no meaning on this machine.
/// It is logged and counted, execution continues.
///
type DecodeWarning struct {
	PC     uint16
	Opcode uint16
}

func (w DecodeWarning) Error() string {
	return f("unrecognized opcode %04X at %04X", w.Opcode, w.PC)
}
