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

import "time"

const (
	/// DefaultSpeed is roughly how many instructions per second the RCA
	/// 1802 could interpret.
	///
	DefaultSpeed = 500

	/// MinSpeed and MaxSpeed bound IncSpeed and DecSpeed.
	///
	MinSpeed = 120
	MaxSpeed = 3000

	/// SpeedStep is how much IncSpeed and DecSpeed change the speed.
	///
	SpeedStep = 60
)

/// Start the emulation clock at now.
///
func (vm *CHIP_8) Start(now time.Time) {
	vm.Clock = now
	vm.Cycles = 0
	vm.Ticks = 0
}

/// Process CHIP-8 emulation. This will execute until the clock is caught
/// up to now, ticking the timers at TimerHz along the way. While paused
/// the clock runs without stepping.
///
func (vm *CHIP_8) Process(now time.Time, paused bool) error {
	elapsed := int64(now.Sub(vm.Clock))

	// calculate how many cycles and ticks should have happened
	count := elapsed * int64(vm.Speed) / int64(time.Second)
	ticks := elapsed * TimerHz / int64(time.Second)

	if paused {
		vm.Cycles = count
		vm.Ticks = ticks

		return nil
	}

	for vm.Cycles < count {
		if err := vm.Step(); err != nil {
			return err
		}

		// keep the timers in step with emulated time
		for vm.Ticks < vm.Cycles*TimerHz/int64(vm.Speed) {
			vm.TickTimers()
		}
	}

	for vm.Ticks < ticks {
		vm.TickTimers()
	}

	return nil
}

/// Frame executes one 60th of a second worth of instructions and then
/// ticks the timers once. It suits frontends that call it every frame.
///
func (vm *CHIP_8) Frame() error {
	for i := 0; i < vm.Speed/TimerHz; i++ {
		if err := vm.Step(); err != nil {
			return err
		}
	}

	vm.TickTimers()

	return nil
}

/// IncSpeed increases the number of instructions executed per second.
///
func (vm *CHIP_8) IncSpeed() {
	vm.SetSpeed(vm.Speed + SpeedStep)
}

/// DecSpeed decreases the number of instructions executed per second.
///
func (vm *CHIP_8) DecSpeed() {
	vm.SetSpeed(vm.Speed - SpeedStep)
}

/// SetSpeed changes the instructions per second, clamped to MinSpeed and
/// MaxSpeed. The clock is rebased so emulation continues from where it
/// is instead of jumping.
///
func (vm *CHIP_8) SetSpeed(speed int) {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}

	// advance the clock by the emulated time already run
	if vm.Speed > 0 {
		vm.Clock = vm.Clock.Add(time.Duration(vm.Cycles * int64(time.Second) / int64(vm.Speed)))
	}

	vm.Speed = speed
	vm.Cycles = 0
	vm.Ticks = 0
}
