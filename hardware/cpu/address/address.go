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

package address

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ducklingscorp/sixtyfive/curated"
)

// Sentinel error patterns returned by this package.
const (
	OutOfRange = "address: value out of range (%#x)"
	Overflow   = "address: $%04x + %#x exceeds $ffff"
	NotAddress = "address: cannot parse %q"
)

// Address is a location in the 64KB address space.
type Address uint16

// Max is the highest valid address.
const Max = Address(0xffff)

// FromInt returns the integer as an Address. Values outside the range
// $0000 to $ffff result in an error.
func FromInt(v int) (Address, error) {
	if v < 0 || v > int(Max) {
		return 0, curated.Errorf(OutOfRange, v)
	}
	return Address(v), nil
}

// FromBytes builds an Address from a little-endian pair of bytes.
func FromBytes(lo, hi uint8) Address {
	return Address(uint16(hi)<<8 | uint16(lo))
}

// Parse an address from a string. Hexadecimal values can be prefixed with
// either $ or 0x. Values with no prefix are decimal.
func Parse(s string) (Address, error) {
	s = strings.TrimSpace(s)

	base := 10
	v := strings.ToLower(s)
	if h, ok := strings.CutPrefix(v, "$"); ok {
		v = h
		base = 16
	} else if h, ok := strings.CutPrefix(v, "0x"); ok {
		v = h
		base = 16
	}

	n, err := strconv.ParseUint(v, base, 16)
	if err != nil {
		return 0, curated.Errorf(NotAddress, s)
	}

	return Address(n), nil
}

// ZeroPage returns the address of the byte in the zero page.
func ZeroPage(v uint8) Address {
	return Address(v)
}

func (a Address) String() string {
	return fmt.Sprintf("$%04x", uint16(a))
}

// Uint16 returns the address as a uint16.
func (a Address) Uint16() uint16 {
	return uint16(a)
}

// Int returns the address as an int. Useful for indexing.
func (a Address) Int() int {
	return int(a)
}

// Page returns the high byte of the address.
func (a Address) Page() uint8 {
	return uint8(a >> 8)
}

// Offset returns the low byte of the address.
func (a Address) Offset() uint8 {
	return uint8(a)
}

// Add returns the address plus the offset. Carrying past $ffff is an error.
func (a Address) Add(offset uint16) (Address, error) {
	v := uint32(a) + uint32(offset)
	if v > uint32(Max) {
		return a, curated.Errorf(Overflow, uint16(a), offset)
	}
	return Address(v), nil
}

// Next is shorthand for Add(1).
func (a Address) Next() (Address, error) {
	return a.Add(1)
}

// SamePageAdd adds offset to the low byte of the address only. The high byte
// never changes.
func (a Address) SamePageAdd(offset uint8) Address {
	return (a & 0xff00) | Address((uint16(a)+uint16(offset))&0x00ff)
}

// Relative returns the address plus the signed (two's complement) offset.
// The result wraps around the 64KB address space.
func (a Address) Relative(offset uint8) Address {
	return Address(int32(a) + int32(int8(offset)))
}
