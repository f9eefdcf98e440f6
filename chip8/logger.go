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
	"fmt"
	"io"
	"strings"
)

// LogLines is how many lines a Logger keeps before dropping the oldest.
const LogLines = 1000

// Logger is a scrollback log of what the VM had to say: decode warnings,
// faults and any notices a frontend adds.
type Logger struct {
	// Out, if set, receives a copy of every line logged.
	Out io.Writer

	// buf contains each line of logged text.
	buf []string
}

// NewLog creates a new Logger.
func NewLog() *Logger {
	return &Logger{
		buf: make([]string, 0, 100),
	}
}

// Log outputs a new line to the log.
func (log *Logger) Log(s ...string) {
	line := strings.Join(s, " ")

	// add the new line
	log.add(line)
	log.echo(line)
}

// Logf formats a line with the current locale and logs it.
func (log *Logger) Logf(format string, args ...any) {
	log.Log(f(format, args...))
}

// Logln outputs a new line to the log, with an empty line prefixed.
func (log *Logger) Logln(s ...string) {
	line := strings.Join(s, " ")

	// append the lines
	log.add("", line)
	log.echo(line)
}

func (log *Logger) add(lines ...string) {
	log.buf = append(log.buf, lines...)

	// drop the oldest lines
	if n := len(log.buf) - LogLines; n > 0 {
		log.buf = append(log.buf[:0], log.buf[n:]...)
	}
}

func (log *Logger) echo(line string) {
	if log.Out != nil {
		fmt.Fprintln(log.Out, line)
	}
}

// Len returns the number of lines in the log.
func (log *Logger) Len() int {
	return len(log.buf)
}

// Window returns the last n lines logged.
func (log *Logger) Window(n int) []string {
	start := len(log.buf) - n

	// don't scroll past the beginning
	if start < 0 {
		start = 0
	}

	return log.buf[start:]
}
