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

import "fmt"

/// Op is a decoded CHIP-8 operation.
///
type Op uint8

const (
	OpInvalid Op = iota
	OpSYS        // 0NNN
	OpCLS        // 00E0
	OpRET        // 00EE
	OpJP         // 1NNN
	OpCALL       // 2NNN
	OpSE         // 3XKK
	OpSNE        // 4XKK
	OpSEXY       // 5XY0
	OpLD         // 6XKK
	OpADD        // 7XKK
	OpLDXY       // 8XY0
	OpOR         // 8XY1
	OpAND        // 8XY2
	OpXOR        // 8XY3
	OpADDXY      // 8XY4
	OpSUB        // 8XY5
	OpSHR        // 8XY6
	OpSUBN       // 8XY7
	OpSHL        // 8XYE
	OpSNEXY      // 9XY0
	OpLDI        // ANNN
	OpJPV0       // BNNN
	OpRND        // CXKK
	OpDRW        // DXYN
	OpSKP        // EX9E
	OpSKNP       // EXA1
	OpLDXDT      // FX07
	OpLDXK       // FX0A
	OpLDDTX      // FX15
	OpLDSTX      // FX18
	OpADDI       // FX1E
	OpLDF        // FX29
	OpLDB        // FX33
	OpSTORE      // FX55
	OpLOAD       // FX65
)

var mnemonics = [...]string{
	OpInvalid: "??",
	OpSYS:     "SYS",
	OpCLS:     "CLS",
	OpRET:     "RET",
	OpJP:      "JP",
	OpCALL:    "CALL",
	OpSE:      "SE",
	OpSNE:     "SNE",
	OpSEXY:    "SE",
	OpLD:      "LD",
	OpADD:     "ADD",
	OpLDXY:    "LD",
	OpOR:      "OR",
	OpAND:     "AND",
	OpXOR:     "XOR",
	OpADDXY:   "ADD",
	OpSUB:     "SUB",
	OpSHR:     "SHR",
	OpSUBN:    "SUBN",
	OpSHL:     "SHL",
	OpSNEXY:   "SNE",
	OpLDI:     "LD",
	OpJPV0:    "JP",
	OpRND:     "RND",
	OpDRW:     "DRW",
	OpSKP:     "SKP",
	OpSKNP:    "SKNP",
	OpLDXDT:   "LD",
	OpLDXK:    "LD",
	OpLDDTX:   "LD",
	OpLDSTX:   "LD",
	OpADDI:    "ADD",
	OpLDF:     "LD",
	OpLDB:     "LD",
	OpSTORE:   "LD",
	OpLOAD:    "LD",
}

/// String returns the assembler mnemonic of the operation.
///
func (op Op) String() string {
	if int(op) < len(mnemonics) {
		return mnemonics[op]
	}

	return fmt.Sprintf("Op(%d)", uint8(op))
}

/// Instruction is an opcode split into its operation and operands. Only
/// the operands the operation uses are meaningful.
///
type Instruction struct {
	Op     Op
	Opcode uint16

	/// X and Y are register selectors.
	///
	X, Y uint8

	/// N is the low nibble, KK the low byte, NNN the 12-bit address.
	///
	N   uint8
	KK  byte
	NNN uint16
}

/// Decode an opcode. Opcodes that aren't part of the instruction set
/// decode to OpInvalid.
///
func Decode(opcode uint16) Instruction {
	inst := Instruction{
		Opcode: opcode,
		X:      uint8(opcode >> 8 & 0xF),
		Y:      uint8(opcode >> 4 & 0xF),
		N:      uint8(opcode & 0xF),
		KK:     byte(opcode & 0xFF),
		NNN:    opcode & 0xFFF,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			inst.Op = OpCLS
		case 0x00EE:
			inst.Op = OpRET
		default:
			inst.Op = OpSYS
		}
	case 0x1:
		inst.Op = OpJP
	case 0x2:
		inst.Op = OpCALL
	case 0x3:
		inst.Op = OpSE
	case 0x4:
		inst.Op = OpSNE
	case 0x5:
		if inst.N == 0 {
			inst.Op = OpSEXY
		}
	case 0x6:
		inst.Op = OpLD
	case 0x7:
		inst.Op = OpADD
	case 0x8:
		switch inst.N {
		case 0x0:
			inst.Op = OpLDXY
		case 0x1:
			inst.Op = OpOR
		case 0x2:
			inst.Op = OpAND
		case 0x3:
			inst.Op = OpXOR
		case 0x4:
			inst.Op = OpADDXY
		case 0x5:
			inst.Op = OpSUB
		case 0x6:
			inst.Op = OpSHR
		case 0x7:
			inst.Op = OpSUBN
		case 0xE:
			inst.Op = OpSHL
		}
	case 0x9:
		if inst.N == 0 {
			inst.Op = OpSNEXY
		}
	case 0xA:
		inst.Op = OpLDI
	case 0xB:
		inst.Op = OpJPV0
	case 0xC:
		inst.Op = OpRND
	case 0xD:
		inst.Op = OpDRW
	case 0xE:
		switch inst.KK {
		case 0x9E:
			inst.Op = OpSKP
		case 0xA1:
			inst.Op = OpSKNP
		}
	case 0xF:
		switch inst.KK {
		case 0x07:
			inst.Op = OpLDXDT
		case 0x0A:
			inst.Op = OpLDXK
		case 0x15:
			inst.Op = OpLDDTX
		case 0x18:
			inst.Op = OpLDSTX
		case 0x1E:
			inst.Op = OpADDI
		case 0x29:
			inst.Op = OpLDF
		case 0x33:
			inst.Op = OpLDB
		case 0x55:
			inst.Op = OpSTORE
		case 0x65:
			inst.Op = OpLOAD
		}
	}

	return inst
}
