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


// Package script runs Lua scripts that control the driver. Scripts are run
// with github.com/yuin/gopher-lua and have the following functions available
// in addition to the Lua base library:
//
//	step([n])          execute n instructions (default 1)
//	run([ms])          run for ms milliseconds or until the CPU halts
//	stop()             stop running
//	reset()            reset the CPU and reload the program
//	peek(addr)         the value in memory at addr
//	range(start, end)  table of memory values from start up to but not including end
//	flags()            the value of the status register
//	registers()        table with the fields a, x, y, pc, sr and cycles
//	cycles()           the number of instructions executed since reset
//	trace(bool)        log every instruction that is executed
//
// The step() and run() functions return nil if no error occurred or the
// error message as a string. For example, the BRK instruction results in an
// error message.
//
// Invalid arguments to a function stop the script with an error.
//
// The Scribe type records driver requests as a Lua script that can be played
// back later with the Script type.
package script
