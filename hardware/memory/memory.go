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

package memory

import (
	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
)

// Size of the address space in bytes.
const Size = int(address.Max) + 1

// Sentinal errors.
const (
	WrongImageSize = "memory: program image is %d bytes, expected %d"
	LoadOverflow   = "memory: %d bytes loaded at %v exceeds memory"
	InvalidRange   = "memory: invalid range (%#x to %#x)"
)

// Memory is the entire address space.
type Memory struct {
	ram [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// Every address is zero.
func NewMemory() *Memory {
	return &Memory{}
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(a address.Address) uint8 {
	return mem.ram[a]
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(a address.Address, data uint8) {
	mem.ram[a] = data
}

// Clear sets every address to zero.
func (mem *Memory) Clear() {
	clear(mem.ram[:])
}

// Load replaces the contents of memory with the program image. The image must
// be exactly the size of memory.
func (mem *Memory) Load(image []uint8) error {
	if len(image) != Size {
		return curated.Errorf(WrongImageSize, len(image), Size)
	}
	copy(mem.ram[:], image)
	return nil
}

// LoadAt copies data into memory starting at origin. Memory outside of the
// data is not touched.
func (mem *Memory) LoadAt(origin address.Address, data []uint8) error {
	if origin.Int()+len(data) > Size {
		return curated.Errorf(LoadOverflow, len(data), origin)
	}
	copy(mem.ram[origin:], data)
	return nil
}

// Range returns a copy of memory from start up to but not including end.
// The end value can be Size, meaning the top of memory.
func (mem *Memory) Range(start int, end int) ([]uint8, error) {
	if start < 0 || end > Size || start > end {
		return nil, curated.Errorf(InvalidRange, start, end)
	}
	d := make([]uint8, end-start)
	copy(d, mem.ram[start:end])
	return d, nil
}

// Image returns a copy of the entire address space. The copy can be passed to
// Load().
func (mem *Memory) Image() []uint8 {
	d := make([]uint8, Size)
	copy(d, mem.ram[:])
	return d
}
