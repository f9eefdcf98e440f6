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

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		op     Op
	}{
		{0x00E0, OpCLS},
		{0x00EE, OpRET},
		{0x0123, OpSYS},
		{0x00FF, OpSYS},
		{0x1ABC, OpJP},
		{0x2ABC, OpCALL},
		{0x3A12, OpSE},
		{0x4A12, OpSNE},
		{0x5AB0, OpSEXY},
		{0x5AB1, OpInvalid},
		{0x6A12, OpLD},
		{0x7A12, OpADD},
		{0x8AB0, OpLDXY},
		{0x8AB1, OpOR},
		{0x8AB2, OpAND},
		{0x8AB3, OpXOR},
		{0x8AB4, OpADDXY},
		{0x8AB5, OpSUB},
		{0x8AB6, OpSHR},
		{0x8AB7, OpSUBN},
		{0x8AB8, OpInvalid},
		{0x8ABE, OpSHL},
		{0x8ABF, OpInvalid},
		{0x9AB0, OpSNEXY},
		{0x9AB1, OpInvalid},
		{0xAABC, OpLDI},
		{0xBABC, OpJPV0},
		{0xCA12, OpRND},
		{0xDAB5, OpDRW},
		{0xEA9E, OpSKP},
		{0xEAA1, OpSKNP},
		{0xEA00, OpInvalid},
		{0xFA07, OpLDXDT},
		{0xFA0A, OpLDXK},
		{0xFA15, OpLDDTX},
		{0xFA18, OpLDSTX},
		{0xFA1E, OpADDI},
		{0xFA29, OpLDF},
		{0xFA33, OpLDB},
		{0xFA55, OpSTORE},
		{0xFA65, OpLOAD},
		{0xFA75, OpInvalid},
	}

	for _, tt := range tests {
		inst := Decode(tt.opcode)

		assert.Equal(t, tt.op, inst.Op, "%04X decoded as %v", tt.opcode, inst.Op)
		assert.Equal(t, tt.opcode, inst.Opcode)
	}
}

func TestDecode_Operands(t *testing.T) {
	assert := assert.New(t)

	inst := Decode(0xD7A5)
	assert.Equal(uint8(0x7), inst.X)
	assert.Equal(uint8(0xA), inst.Y)
	assert.Equal(uint8(0x5), inst.N)
	assert.Equal(byte(0xA5), inst.KK)
	assert.Equal(uint16(0x7A5), inst.NNN)
}

func TestOp_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("DRW", OpDRW.String())
	assert.Equal("SKNP", OpSKNP.String())
	assert.Equal("??", OpInvalid.String())
	assert.Equal("Op(200)", Op(200).String())
}
