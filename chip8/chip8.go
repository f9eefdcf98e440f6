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
	"math/rand"
	"time"
)

/// CHIP_8 virtual machine emulator.
///
type CHIP_8 struct {
	/// ROM is the pristine memory image: the font in the reserved 512
	/// bytes followed by the program. Reset copies it back into Memory.
	///
	ROM Memory

	/// Memory addressable by CHIP-8.
	///
	Memory Memory

	/// Display is the 64x32 frame buffer.
	///
	Display Display

	/// Keypad is written by the input adapter and polled once per Step.
	///
	Keypad Keypad

	/// Timers are the delay and sound countdown registers.
	///
	Timers Timers

	/// Stack holds subroutine return addresses.
	///
	Stack Stack

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// I is the address register.
	///
	I uint16

	/// V are the 16 virtual registers.
	///
	V [16]byte

	/// Speed is how many instructions are executed per second.
	///
	Speed int

	/// Clock is when emulation began, Process runs relative to it.
	///
	Clock time.Time

	/// Cycles is how many instructions have executed since Clock.
	///
	Cycles int64

	/// Ticks is how many timer ticks have happened since Clock.
	///
	Ticks int64

	/// Warnings counts opcodes that could not be decoded.
	///
	Warnings int

	/// Log receives decode warnings and faults.
	///
	Log *Logger

	/// Speaker, if set, is told when the sound timer starts and stops.
	///
	Speaker Speaker

	/// Rand is the source for RND.
	///
	Rand *rand.Rand

	// the keypad as polled at the start of the current cycle
	keys [KeyCount]bool

	// latched once a fatal fault occurs
	fault *Fault
}

/// New returns a CHIP-8 virtual machine with the font loaded and no
/// program.
///
func New() *CHIP_8 {
	vm := &CHIP_8{
		Speed: DefaultSpeed,
		Log:   NewLog(),
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// the font lives in the reserved area of every image
	copy(vm.ROM[FontAddress:], Font[:])

	// reset the VM memory
	vm.Reset()

	return vm
}

/// LoadROM returns a new CHIP-8 virtual machine running program.
///
func LoadROM(program []byte) (*CHIP_8, error) {
	vm := New()

	if err := vm.Load(program, ProgramStart); err != nil {
		return nil, err
	}

	return vm, nil
}

/// Load copies program into memory at offset. It fails without touching
/// memory if the program doesn't fit. The loaded bytes become part of the
/// image that Reset restores.
///
func (vm *CHIP_8) Load(program []byte, offset int) error {
	if err := vm.ROM.Load(offset, program); err != nil {
		return err
	}

	copy(vm.Memory[offset:], program)

	return nil
}

/// Reset the CHIP-8 virtual machine to the state right after loading.
///
func (vm *CHIP_8) Reset() {
	vm.Memory = vm.ROM

	// reset video memory, the renderer should redraw it
	vm.Display.Clear()

	// reset keys
	vm.Keypad.Reset()
	vm.keys = [KeyCount]bool{}

	// reset program counter, stack and address register
	vm.PC = ProgramStart
	vm.Stack = Stack{}
	vm.I = 0

	// reset virtual registers
	vm.V = [16]byte{}

	// silence and reset the timers
	vm.setSound(0)
	vm.Timers = Timers{}

	// reset the clock and cycles executed
	vm.Start(time.Now())

	vm.Warnings = 0
	vm.fault = nil
}

/// Halted returns the fault that stopped the VM, or nil if it's running.
///
func (vm *CHIP_8) Halted() *Fault {
	return vm.fault
}

/// Step the CHIP-8 virtual machine a single instruction. A returned error
/// is always a *Fault and the VM stays halted until Reset.
///
func (vm *CHIP_8) Step() error {
	if vm.fault != nil {
		return vm.fault
	}

	// poll the keypad once for the whole cycle
	vm.keys = vm.Keypad.Snapshot()

	pc := vm.PC

	// fetch the next instruction
	opcode, err := vm.fetch()
	if err != nil {
		return vm.halt(pc, 0, err)
	}

	if err := vm.execute(Decode(opcode)); err != nil {
		return vm.halt(pc, opcode, err)
	}

	// increment the cycle count
	vm.Cycles += 1

	return nil
}

/// TickTimers counts both timers down once. It should be called at
/// TimerHz, Process and Frame do so.
///
func (vm *CHIP_8) TickTimers() {
	if vm.Timers.Tick() && vm.Speaker != nil {
		vm.Speaker.Stop()
	}

	vm.Ticks += 1
}

/// Fetch the next 16-bit instruction to execute.
///
func (vm *CHIP_8) fetch() (uint16, error) {
	if vm.PC < ProgramStart || vm.PC > MemorySize-2 {
		return 0, ErrPCOutOfRange
	}

	inst, err := vm.Memory.Word(vm.PC)
	if err != nil {
		return 0, ErrPCOutOfRange
	}

	// advance the program counter
	vm.PC += 2

	return inst, nil
}

/// halt latches a fatal fault. The program counter is left pointing at
/// the instruction that faulted.
///
func (vm *CHIP_8) halt(pc, opcode uint16, err error) error {
	vm.PC = pc
	vm.fault = &Fault{PC: pc, Opcode: opcode, Err: err}

	vm.Log.Log(vm.fault.Error())

	return vm.fault
}

/// warn records an opcode that was skipped as a no-op.
///
func (vm *CHIP_8) warn(opcode uint16) {
	w := DecodeWarning{PC: vm.PC - 2, Opcode: opcode}

	vm.Warnings += 1
	vm.Log.Log(w.Error())
}

/// setSound loads the sound timer, signalling the speaker on the edges.
///
func (vm *CHIP_8) setSound(n byte) {
	was := vm.Timers.Sound
	vm.Timers.Sound = n

	if vm.Speaker == nil {
		return
	}

	if was == 0 && n != 0 {
		vm.Speaker.Start()
	} else if was != 0 && n == 0 {
		vm.Speaker.Stop()
	}
}
