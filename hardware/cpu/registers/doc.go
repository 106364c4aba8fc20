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

// Package registers implements the register file of the 6502: the
// accumulator, the X and Y index registers, the program counter and the
// status register.
//
// The accumulator should only be changed with the SetA() and AddA()
// functions. These keep the Zero and Negative flags of the status register
// in step with the value in the accumulator. For example:
//
//	r := registers.NewRegisters()
//	r.SetA(0x80)
//	r.Test(registers.Negative) // true
//	r.Test(registers.Zero)     // false
//
// Writing to the A field directly leaves the status register unchanged, which
// will confuse any subsequent branch instruction.
package registers
