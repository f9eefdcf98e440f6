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

package main

// typedef unsigned char byte;
// void Tone(void *data, byte *stream, int len);
import "C"
import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	/// SampleRate of the audio device.
	///
	SampleRate = 44100

	/// ToneHz is the pitch of the beep.
	///
	ToneHz = 440

	/// Volume of the square wave, 0-1.
	///
	Volume = 0.25
)

var (
	/// phase of the square wave, 0-1.
	///
	phase float32
)

/// Beeper plays the tone while the VM sound timer runs.
///
type Beeper struct{}

func (Beeper) Start() {
	sdl.PauseAudio(false)
}

func (Beeper) Stop() {
	sdl.PauseAudio(true)
}

/// Initialize an audio device for the CHIP-8 virtual machine.
///
func InitAudio() {
	spec := &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_F32,
		Channels: 1,
		Samples:  512,
		Callback: sdl.AudioCallback(C.Tone),
	}

	// open the device, it stays paused until the sound timer is set
	if err := sdl.OpenAudio(spec, nil); err != nil {
		panic(err)
	}
}

//export Tone
func Tone(_ unsafe.Pointer, stream *C.byte, length C.int) {
	buf := unsafe.Slice((*C.float)(unsafe.Pointer(stream)), int(length)/4)

	// fill in the data with a square wave
	for i := range buf {
		if phase < 0.5 {
			buf[i] = Volume
		} else {
			buf[i] = -Volume
		}

		if phase += ToneHz / float32(SampleRate); phase >= 1 {
			phase -= 1
		}
	}
}
