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

// Package address defines the 16 bit Address type used throughout the
// emulation. An Address is always in the range $0000 to $ffff.
//
// Construction from a plain integer is checked with FromInt() and ordinary
// arithmetic with Add() is checked for overflow. Both conditions are
// programming errors and are reported with the OutOfRange and Overflow
// patterns respectively.
//
// SamePageAdd() is the exception. It never carries into the high byte of the
// address and so reproduces the 6502's page wraparound behaviour. This is
// what happens when the CPU reads the second byte of a pointer stored at the
// end of the zero page:
//
//	a := address.Address(0x00ff)
//	a.SamePageAdd(1) // $0000 and not $0100
package address
