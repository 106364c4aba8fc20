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


// Package terminal is an interactive front end for the driver. It draws the
// framebuffer and the CPU registers using ANSI control codes and turns key
// presses into driver requests.
//
// The keys are:
//
//	s	step one instruction
//	r	run until stopped
//	space	stop running
//	x	reset the program
//	q	quit
//
// The display is redrawn whenever the driver signals that it has processed a
// request or executed an instruction. The snapshot used for drawing is taken
// with TrySnapshot() so the display never holds up a running program.
package terminal
