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

package registers

import (
	"fmt"

	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
)

// Registers is the register file of the CPU.
type Registers struct {
	A      uint8
	X      uint8
	Y      uint8
	PC     address.Address
	Status StatusRegister
}

// NewRegisters is the preferred method of initialisation for the Registers
// type.
func NewRegisters() Registers {
	r := Registers{}
	r.Reset()
	return r
}

// Reset all registers to their default state. Everything is zero except for
// the AlwaysOne bit of the status register.
func (r *Registers) Reset() {
	r.A = 0
	r.X = 0
	r.Y = 0
	r.PC = 0
	r.Status = statusDefault
}

// Test returns true if the flag is set in the status register.
func (r Registers) Test(f Flag) bool {
	return r.Status.Test(f)
}

// SetFlag sets or clears exactly one flag in the status register.
func (r *Registers) SetFlag(f Flag, v bool) {
	r.Status.Set(f, v)
}

// SetA loads the accumulator and updates the Zero and Negative flags.
func (r *Registers) SetA(v uint8) {
	r.SetFlag(Zero, v == 0x00)
	r.SetFlag(Negative, v&0x80 == 0x80)
	r.A = v
}

// AddA adds the value to the accumulator. The Carry flag is set if the
// result does not fit in eight bits. Note that the existing Carry flag is
// not added to the result.
func (r *Registers) AddA(v uint8) {
	sum := uint16(r.A) + uint16(v)
	r.SetFlag(Carry, sum > 0xff)
	r.SetA(uint8(sum))
}

// String returns the registers on one line. Suitable for logging.
func (r Registers) String() string {
	return fmt.Sprintf("PC=%s A=$%02x X=$%02x Y=$%02x %s=%s",
		r.PC, r.A, r.X, r.Y, r.Status.Label(), r.Status)
}

// Format returns a multi-line description of the registers, with the status
// register shown as a bit pattern under the flag names.
func (r Registers) Format() string {
	return fmt.Sprintf("PC: %s\nA: $%02x X: $%02x Y: $%02x\nNV-BDIZC\n%08b",
		r.PC, r.A, r.X, r.Y, r.Status.Value())
}
