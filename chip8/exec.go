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

/// execute a decoded instruction.
///
func (vm *CHIP_8) execute(inst Instruction) error {
	x, y := inst.X, inst.Y

	switch inst.Op {
	case OpCLS:
		vm.cls()
	case OpRET:
		return vm.ret()
	case OpJP:
		vm.jump(inst.NNN)
	case OpCALL:
		return vm.call(inst.NNN)
	case OpSE:
		vm.skipIf(x, inst.KK)
	case OpSNE:
		vm.skipIfNot(x, inst.KK)
	case OpSEXY:
		vm.skipIfXY(x, y)
	case OpLD:
		vm.loadX(x, inst.KK)
	case OpADD:
		vm.addX(x, inst.KK)
	case OpLDXY:
		vm.loadXY(x, y)
	case OpOR:
		vm.or(x, y)
	case OpAND:
		vm.and(x, y)
	case OpXOR:
		vm.xor(x, y)
	case OpADDXY:
		vm.addXY(x, y)
	case OpSUB:
		vm.subXY(x, y)
	case OpSHR:
		vm.shr(x)
	case OpSUBN:
		vm.subYX(x, y)
	case OpSHL:
		vm.shl(x)
	case OpSNEXY:
		vm.skipIfNotXY(x, y)
	case OpLDI:
		vm.loadI(inst.NNN)
	case OpJPV0:
		vm.jumpV0(inst.NNN)
	case OpRND:
		vm.rnd(x, inst.KK)
	case OpDRW:
		return vm.drw(x, y, inst.N)
	case OpSKP:
		vm.skipIfPressed(x)
	case OpSKNP:
		vm.skipIfNotPressed(x)
	case OpLDXDT:
		vm.loadXDT(x)
	case OpLDXK:
		vm.loadXK(x)
	case OpLDDTX:
		vm.loadDTX(x)
	case OpLDSTX:
		vm.loadSTX(x)
	case OpADDI:
		vm.addIX(x)
	case OpLDF:
		vm.loadF(x)
	case OpLDB:
		return vm.loadB(x)
	case OpSTORE:
		return vm.saveRegs(x)
	case OpLOAD:
		return vm.loadRegs(x)
	default:
		// SYS routines and unknown opcodes
		vm.warn(inst.Opcode)
	}

	return nil
}

/// Clear the video display memory.
///
func (vm *CHIP_8) cls() {
	vm.Display.Clear()
}

/// return from subroutine.
///
func (vm *CHIP_8) ret() error {
	address, err := vm.Stack.Pop()
	if err != nil {
		return err
	}

	vm.PC = address

	return nil
}

/// call a subroutine at address.
///
func (vm *CHIP_8) call(address uint16) error {
	if err := vm.Stack.Push(vm.PC); err != nil {
		return err
	}

	// jump to address
	vm.PC = address

	return nil
}

/// jump to address.
///
func (vm *CHIP_8) jump(address uint16) {
	vm.PC = address
}

/// jump to address + v0.
///
func (vm *CHIP_8) jumpV0(address uint16) {
	vm.PC = address + uint16(vm.V[0])
}

/// skip next instruction if vx == n.
///
func (vm *CHIP_8) skipIf(x uint8, b byte) {
	if vm.V[x] == b {
		vm.PC += 2
	}
}

/// skip next instruction if vx != n.
///
func (vm *CHIP_8) skipIfNot(x uint8, b byte) {
	if vm.V[x] != b {
		vm.PC += 2
	}
}

/// skip next instruction if vx == vy.
///
func (vm *CHIP_8) skipIfXY(x, y uint8) {
	if vm.V[x] == vm.V[y] {
		vm.PC += 2
	}
}

/// skip next instruction if vx != vy.
///
func (vm *CHIP_8) skipIfNotXY(x, y uint8) {
	if vm.V[x] != vm.V[y] {
		vm.PC += 2
	}
}

/// skip next instruction if key(vx) is pressed.
///
func (vm *CHIP_8) skipIfPressed(x uint8) {
	if vm.keys[vm.V[x]&0xF] {
		vm.PC += 2
	}
}

/// skip next instruction if key(vx) is not pressed.
///
func (vm *CHIP_8) skipIfNotPressed(x uint8) {
	if !vm.keys[vm.V[x]&0xF] {
		vm.PC += 2
	}
}

/// load n into vx.
///
func (vm *CHIP_8) loadX(x uint8, b byte) {
	vm.V[x] = b
}

/// load y into vx.
///
func (vm *CHIP_8) loadXY(x, y uint8) {
	vm.V[x] = vm.V[y]
}

/// load delay timer into vx.
///
func (vm *CHIP_8) loadXDT(x uint8) {
	vm.V[x] = vm.Timers.Delay
}

/// load vx into delay timer.
///
func (vm *CHIP_8) loadDTX(x uint8) {
	vm.Timers.Delay = vm.V[x]
}

/// load vx into sound timer.
///
func (vm *CHIP_8) loadSTX(x uint8) {
	vm.setSound(vm.V[x])
}

/// load vx with next key hit. Until a key is down the instruction is
/// fetched again every cycle.
///
func (vm *CHIP_8) loadXK(x uint8) {
	for key, down := range vm.keys {
		if down {
			vm.V[x] = byte(key)
			return
		}
	}

	vm.PC -= 2
}

/// load address register.
///
func (vm *CHIP_8) loadI(address uint16) {
	vm.I = address
}

/// load address with BCD of vx.
///
func (vm *CHIP_8) loadB(x uint8) error {
	mem, err := vm.Memory.Slice(vm.I, 3)
	if err != nil {
		return err
	}

	n := uint16(vm.V[x])
	b := uint16(0)

	// perform 8 shifts
	for i := uint(0); i < 8; i++ {
		if (b>>0)&0xF >= 5 {
			b += 3
		}
		if (b>>4)&0xF >= 5 {
			b += 3 << 4
		}
		if (b>>8)&0xF >= 5 {
			b += 3 << 8
		}

		// apply shift, pull next bit
		b = (b << 1) | (n >> (7 - i) & 1)
	}

	// write to memory
	mem[0] = byte(b>>8) & 0xF
	mem[1] = byte(b>>4) & 0xF
	mem[2] = byte(b>>0) & 0xF

	return nil
}

/// load font sprite for vx into I.
///
func (vm *CHIP_8) loadF(x uint8) {
	vm.I = GlyphAddress(vm.V[x])
}

/// or vx with vy into vx.
///
func (vm *CHIP_8) or(x, y uint8) {
	vm.V[x] |= vm.V[y]
}

/// and vx with vy into vx.
///
func (vm *CHIP_8) and(x, y uint8) {
	vm.V[x] &= vm.V[y]
}

/// xor vx with vy into vx.
///
func (vm *CHIP_8) xor(x, y uint8) {
	vm.V[x] ^= vm.V[y]
}

/// shl vx 1 bit, set carry to MSB of vx before shift.
///
func (vm *CHIP_8) shl(x uint8) {
	c := vm.V[x] >> 7 & 1
	vm.V[x] <<= 1
	vm.V[0xF] = c
}

/// shr vx 1 bit, set carry to LSB of vx before shift.
///
func (vm *CHIP_8) shr(x uint8) {
	c := vm.V[x] & 1
	vm.V[x] >>= 1
	vm.V[0xF] = c
}

/// add n to vx.
///
func (vm *CHIP_8) addX(x uint8, b byte) {
	vm.V[x] += b
}

/// add vy to vx and set carry.
///
func (vm *CHIP_8) addXY(x, y uint8) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V[0xF] = byte(sum >> 8)
}

/// add vx to i.
///
func (vm *CHIP_8) addIX(x uint8) {
	vm.I += uint16(vm.V[x])
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *CHIP_8) subXY(x, y uint8) {
	c := carry(vm.V[x] >= vm.V[y])
	vm.V[x] -= vm.V[y]
	vm.V[0xF] = c
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *CHIP_8) subYX(x, y uint8) {
	c := carry(vm.V[y] >= vm.V[x])
	vm.V[x] = vm.V[y] - vm.V[x]
	vm.V[0xF] = c
}

/// load a random number & n into vx.
///
func (vm *CHIP_8) rnd(x uint8, b byte) {
	vm.V[x] = byte(vm.Rand.Intn(0x100)) & b
}

/// draw a sprite at I to video memory at vx, vy. Set carry if any pixel
/// was turned off.
///
func (vm *CHIP_8) drw(x, y, n uint8) error {
	sprite, err := vm.Memory.Slice(vm.I, int(n))
	if err != nil {
		return err
	}

	// the origin wraps, so does every pixel after it
	ox, oy := int(vm.V[x]), int(vm.V[y])
	c := false

	for row, bits := range sprite {
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) != 0 && vm.Display.Toggle(ox+col, oy+row) {
				c = true
			}
		}
	}

	vm.Display.dirty = true
	vm.V[0xF] = carry(c)

	return nil
}

/// save registers v0..vx to I.
///
func (vm *CHIP_8) saveRegs(x uint8) error {
	mem, err := vm.Memory.Slice(vm.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(mem, vm.V[:x+1])

	return nil
}

/// load registers v0..vx from I.
///
func (vm *CHIP_8) loadRegs(x uint8) error {
	mem, err := vm.Memory.Slice(vm.I, int(x)+1)
	if err != nil {
		return err
	}

	copy(vm.V[:x+1], mem)

	return nil
}

func carry(b bool) byte {
	if b {
		return 1
	}

	return 0
}
