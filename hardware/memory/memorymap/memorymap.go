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

package memorymap

import "github.com/ducklingscorp/sixtyfive/hardware/cpu/address"

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case ZeroPage:
		return "Zero Page"
	case Stack:
		return "Stack"
	case Framebuffer:
		return "Framebuffer"
	case RAM:
		return "RAM"
	case Vectors:
		return "Vectors"
	}

	return "undefined"
}

// The different memory areas.
const (
	Undefined Area = iota
	ZeroPage
	Stack
	Framebuffer
	RAM
	Vectors
)

// The origin and memory top for each area of memory.
const (
	OriginZeroPage    = address.Address(0x0000)
	MemtopZeroPage    = address.Address(0x00ff)
	OriginStack       = address.Address(0x0100)
	MemtopStack       = address.Address(0x01ff)
	OriginFramebuffer = address.Address(0x0200)
	MemtopFramebuffer = address.Address(0x02ff)
	OriginRAM         = address.Address(0x0300)
	MemtopRAM         = address.Address(0xfff9)
	OriginVectors     = address.Address(0xfffa)
	MemtopVectors     = address.Address(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = MemtopVectors

// Location of the three vectors. Only the reset vector is used.
const (
	NMIVector   = address.Address(0xfffa)
	ResetVector = address.Address(0xfffc)
	IRQVector   = address.Address(0xfffe)
)

// The framebuffer is 16x16 pixels, one byte per pixel, filling the
// framebuffer area exactly. Only the low nibble of each byte is used, as an
// index into a 16 colour palette.
const (
	FramebufferWidth  = 16
	FramebufferHeight = 16
)

// MapAddress returns the area of memory the address belongs to.
func MapAddress(a address.Address) Area {
	switch {
	case a <= MemtopZeroPage:
		return ZeroPage
	case a <= MemtopStack:
		return Stack
	case a <= MemtopFramebuffer:
		return Framebuffer
	case a <= MemtopRAM:
		return RAM
	}
	return Vectors
}

// IsArea returns true if the address is in the specificied area.
func IsArea(a address.Address, area Area) bool {
	return MapAddress(a) == area
}
