// This file is part of Sixtyfive.
//
// Sixtyfive is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Sixtyfive is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Sixtyfive.  If not, see <https://www.gnu.org/licenses/>.

// Package driver runs the CPU on its own goroutine under the control of
// requests sent over a channel. The Driver type owns the CPU and the memory
// it executes from. Both are protected by a mutex that is only held for the
// duration of a single instruction or a single memory copy.
//
// Requests are sent on the channel returned by Commands(). The Step, Run,
// Stop and Reset requests control execution. The Get requests ask for a copy
// of memory, or of the status register, and the copy is delivered on the
// channel returned by Data(). For example:
//
//	drv.Commands() <- driver.GetRange(0x0200, 0x0300)
//	framebuffer := <-drv.Data()
//
// Replies are queued until they are read so a slow reader never holds up the
// processing of later requests.
//
// While running, the driver checks the command channel before every
// instruction, waiting for up to PollInterval. Any request that arrives ends
// the run and is then processed normally. The Stop request does nothing else.
//
// Errors from the CPU are logged and sent on the channel returned by
// Failures(). They do not end the Loop() function. A fatal CPU error (see
// cpu.IsFatal()) puts the driver into a faulted state in which the Step and
// Run requests are refused until the next Reset.
//
// A display that must not block can use TrySnapshot() to read the state of
// the CPU. If the driver is busy the snapshot is not taken and the display
// should try again later.
package driver
