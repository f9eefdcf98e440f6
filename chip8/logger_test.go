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
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	assert := assert.New(t)

	log := NewLog()
	log.Log("loaded", "PONG")
	log.Logln("reset")

	assert.Equal(3, log.Len())
	assert.Equal([]string{"loaded PONG", "", "reset"}, log.Window(10))
	assert.Equal([]string{"reset"}, log.Window(1))
}

func TestLogger_Out(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	log := NewLog()
	log.Out = out

	log.Log("one")
	log.Logln("two")

	assert.Equal("one\ntwo\n", out.String())
}

func TestLogger_Limit(t *testing.T) {
	assert := assert.New(t)

	log := NewLog()
	for i := 0; i < LogLines+10; i++ {
		log.Log(fmt.Sprint(i))
	}

	assert.Equal(LogLines, log.Len())
	assert.Equal([]string{fmt.Sprint(LogLines + 9)}, log.Window(1))
	assert.Equal("10", log.Window(LogLines)[0])
}

func TestFault(t *testing.T) {
	assert := assert.New(t)

	var err error = &Fault{PC: 0x204, Opcode: 0x00EE, Err: ErrStackUnderflow}

	assert.ErrorIs(err, ErrStackUnderflow)
	assert.False(errors.Is(err, ErrStackOverflow))
	assert.Contains(err.Error(), "0204")
	assert.Contains(err.Error(), ErrStackUnderflow.Error())
	assert.Contains(err.Error(), "RET")
}

func TestDecodeWarning_Error(t *testing.T) {
	w := DecodeWarning{PC: 0x2A0, Opcode: 0x5AB1}

	assert.Contains(t, w.Error(), "5AB1")
	assert.Contains(t, w.Error(), "02A0")
}
