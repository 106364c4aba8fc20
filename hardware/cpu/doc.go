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

// Package cpu emulates the 6502 microprocessor. The CPU type executes one
// instruction at a time with the Step() function.
//
// The CPU does not need explicit initialisation. The first call to Step()
// loads the program counter from the reset vector at $fffc. Calling Restart()
// returns the CPU to that state and also clears memory. The program must be
// reloaded after a call to Restart().
//
// Only a subset of the instruction set is implemented (BRK, NOP, LDA, STA, ADC,
// JMP, BEQ and BNE). The instructions package defines every documented opcode
// however, and an implemented opcode that is used with an addressing mode the
// CPU doesn't support is reported as an error.
//
// Errors returned by Step() fall into two classes. An UnknownOpcode error or a
// Break error are the result of the program being run and the CPU can
// continue after the program has been changed or the CPU has been restarted.
// All other errors are the result of a defect in the instruction table or in
// the CPU itself. The IsFatal() function distinguishes the two classes.
//
// Execution of every instruction is traced to the central logger under the
// "cpu" tag when the Trace flag is set.
package cpu
