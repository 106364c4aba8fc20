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

package cpu_test

import (
	"testing"

	"github.com/ducklingscorp/sixtyfive/hardware/cpu"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/instructions"
	"github.com/ducklingscorp/sixtyfive/test"
)

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin address.Address, bytes ...uint8) address.Address {
	for i, b := range bytes {
		mem.internal[origin.Int()+i] = b
	}
	return origin + address.Address(len(bytes))
}

// the reset vector is little endian
func (mem *mockMem) putResetVector(origin address.Address) {
	mem.internal[0xfffc] = uint8(origin)
	mem.internal[0xfffd] = uint8(origin >> 8)
}

func (mem *mockMem) assert(t *testing.T, a address.Address, value uint8) {
	t.Helper()
	d := mem.Read(a)
	if d != value {
		t.Errorf("memory assertion failed (%#02x  - wanted %#02x at address %s)", d, value, a)
	}
}

func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(a address.Address) uint8 {
	return mem.internal[a]
}

func (mem *mockMem) Write(a address.Address, data uint8) {
	mem.internal[a] = data
}

func newCPU(t *testing.T) (*cpu.CPU, *mockMem) {
	t.Helper()
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)
	mem := newMockMem()
	return cpu.NewCPU(tab, mem), mem
}

// step executes one instruction and checks the result is valid. the test is
// failed immediately on error.
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}
