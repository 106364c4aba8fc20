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

package registers_test

import (
	"testing"

	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/registers"
	"github.com/ducklingscorp/sixtyfive/test"
)

func TestDefault(t *testing.T) {
	r := registers.NewRegisters()
	test.ExpectEquality(t, r.A, uint8(0))
	test.ExpectEquality(t, r.X, uint8(0))
	test.ExpectEquality(t, r.Y, uint8(0))
	test.ExpectEquality(t, r.PC, address.Address(0))
	test.ExpectEquality(t, r.Status.Value(), uint8(0b0010_0000))
	test.ExpectSuccess(t, r.Test(registers.AlwaysOne))
}

func TestFlags(t *testing.T) {
	r := registers.NewRegisters()

	r.SetFlag(registers.Zero, true)
	test.ExpectSuccess(t, r.Test(registers.Zero))
	r.SetFlag(registers.Zero, false)
	test.ExpectFailure(t, r.Test(registers.Zero))

	r.SetFlag(registers.Zero, true)
	r.SetFlag(registers.Negative, true)
	r.SetFlag(registers.InterruptDisable, true)
	test.ExpectSuccess(t, r.Test(registers.Zero))
	test.ExpectSuccess(t, r.Test(registers.Negative))
	test.ExpectSuccess(t, r.Test(registers.InterruptDisable))

	r.SetFlag(registers.Negative, false)
	test.ExpectSuccess(t, r.Test(registers.Zero))
	test.ExpectFailure(t, r.Test(registers.Negative))
	test.ExpectSuccess(t, r.Test(registers.InterruptDisable))

	// setting a flag that is already set changes nothing
	v := r.Status.Value()
	r.SetFlag(registers.Zero, true)
	test.ExpectEquality(t, r.Status.Value(), v)
}

func TestSetFlagIsolation(t *testing.T) {
	flags := []registers.Flag{
		registers.Carry, registers.Zero, registers.InterruptDisable,
		registers.Decimal, registers.Break, registers.AlwaysOne,
		registers.Overflow, registers.Negative,
	}

	for _, f := range flags {
		var sr registers.StatusRegister
		sr.Set(f, true)
		test.ExpectEquality(t, sr.Value(), uint8(f), f)

		sr = registers.StatusRegister(0xff)
		sr.Set(f, false)
		test.ExpectEquality(t, sr.Value(), 0xff^uint8(f), f)
	}
}

func TestSetA(t *testing.T) {
	r := registers.NewRegisters()

	r.SetA(0x00)
	test.ExpectSuccess(t, r.Test(registers.Zero))
	test.ExpectFailure(t, r.Test(registers.Negative))

	r.SetA(0x80)
	test.ExpectFailure(t, r.Test(registers.Zero))
	test.ExpectSuccess(t, r.Test(registers.Negative))
	test.ExpectEquality(t, r.A, uint8(0x80))

	r.SetA(0x7f)
	test.ExpectFailure(t, r.Test(registers.Zero))
	test.ExpectFailure(t, r.Test(registers.Negative))

	// AlwaysOne is untouched
	test.ExpectSuccess(t, r.Test(registers.AlwaysOne))
}

func TestAddA(t *testing.T) {
	r := registers.NewRegisters()

	r.SetA(0xff)
	r.AddA(0x01)
	test.ExpectEquality(t, r.A, uint8(0x00))
	test.ExpectSuccess(t, r.Test(registers.Carry))
	test.ExpectSuccess(t, r.Test(registers.Zero))

	// carry flag is not used as an input to the addition
	r.SetA(0x01)
	r.AddA(0x01)
	test.ExpectEquality(t, r.A, uint8(0x02))
	test.ExpectFailure(t, r.Test(registers.Carry))

	r.SetA(0x7f)
	r.AddA(0x01)
	test.ExpectEquality(t, r.A, uint8(0x80))
	test.ExpectSuccess(t, r.Test(registers.Negative))
	test.ExpectFailure(t, r.Test(registers.Carry))
}

func TestStrings(t *testing.T) {
	r := registers.NewRegisters()
	r.PC = 0x0605
	r.SetA(0x05)
	test.ExpectEquality(t, r.String(), "PC=$0605 A=$05 X=$00 Y=$00 SR=nv-bdizc")
	test.ExpectEquality(t, r.Format(), "PC: $0605\nA: $05 X: $00 Y: $00\nNV-BDIZC\n00100000")

	r.SetA(0)
	r.SetFlag(registers.Carry, true)
	test.ExpectEquality(t, r.Status.String(), "nv-bdiZC")
}
