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

import "strings"

// Flag is a single bit in the status register.
type Flag uint8

// List of status register flags. Values are the bit in the status register.
const (
	Carry Flag = 1 << iota
	Zero
	InterruptDisable
	Decimal
	Break

	// bit 5 is unused by the 6502 and always reads as one
	AlwaysOne

	Overflow
	Negative
)

func (f Flag) String() string {
	switch f {
	case Carry:
		return "Carry"
	case Zero:
		return "Zero"
	case InterruptDisable:
		return "InterruptDisable"
	case Decimal:
		return "Decimal"
	case Break:
		return "Break"
	case AlwaysOne:
		return "AlwaysOne"
	case Overflow:
		return "Overflow"
	case Negative:
		return "Negative"
	}
	return "unknown flag"
}

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister uint8

// the value of the status register after a reset.
const statusDefault = StatusRegister(AlwaysOne)

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the status register in the form "nv-bdizc". Set flags are
// in upper case.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	bit := func(f Flag, set rune, clr rune) {
		if sr.Test(f) {
			s.WriteRune(set)
		} else {
			s.WriteRune(clr)
		}
	}

	bit(Negative, 'N', 'n')
	bit(Overflow, 'V', 'v')
	s.WriteRune('-')
	bit(Break, 'B', 'b')
	bit(Decimal, 'D', 'd')
	bit(InterruptDisable, 'I', 'i')
	bit(Zero, 'Z', 'z')
	bit(Carry, 'C', 'c')

	return s.String()
}

// Value returns the status register as an 8 bit value.
func (sr StatusRegister) Value() uint8 {
	return uint8(sr)
}

// Test returns true if the flag is set.
func (sr StatusRegister) Test(f Flag) bool {
	return uint8(sr)&uint8(f) != 0
}

// Set sets or clears the flag. No other flag is affected.
func (sr *StatusRegister) Set(f Flag, v bool) {
	if v {
		*sr |= StatusRegister(f)
	} else {
		*sr &^= StatusRegister(f)
	}
}
