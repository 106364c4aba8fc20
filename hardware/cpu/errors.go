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

package cpu

import (
	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
)

// Sentinal errors returned by Step().
const (
	// recoverable errors
	UnknownOpcode = "cpu: unknown opcode (%#02x) at %v"
	Break         = "cpu: break at %v"

	// fatal errors
	InvalidAddressingMode       = "cpu: invalid addressing mode (%v) for %v at %v"
	UnimplementedAddressingMode = "cpu: unimplemented addressing mode (%v) at %v"
	UnimplementedInstruction    = "cpu: unimplemented instruction (%v) at %v"
)

// IsFatal returns true if the error indicates a defect in the instruction
// table or in the CPU. Execution should not continue after a fatal error
// without restarting the CPU.
func IsFatal(err error) bool {
	return curated.Has(err, InvalidAddressingMode) ||
		curated.Has(err, UnimplementedAddressingMode) ||
		curated.Has(err, UnimplementedInstruction) ||
		curated.Has(err, address.Overflow) ||
		curated.Has(err, address.OutOfRange)
}
