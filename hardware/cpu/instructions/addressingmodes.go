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

package instructions

// AddressingMode describes how the operand of an instruction is found.
type AddressingMode int

// List of supported addressing modes.
const (
	Accumulator AddressingMode = iota

	Absolute         // abs
	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y
	Immediate        // #
	Implied
	Indirect         // (abs) only used by JMP
	IndexedIndirect  // (zpg,X)
	IndirectIndexed  // (zpg),Y
	Relative         // branch instructions
	ZeroPage         // zpg
	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y

	numAddressingModes
)

func (m AddressingMode) String() string {
	switch m {
	case Accumulator:
		return "Accumulator"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case Immediate:
		return "Immediate"
	case Implied:
		return "Implied"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// the number of bytes an instruction occupies, including the opcode, is
// decided entirely by the addressing mode.
var modeBytes = [numAddressingModes]int{
	Accumulator:      1,
	Absolute:         3,
	AbsoluteIndexedX: 3,
	AbsoluteIndexedY: 3,
	Immediate:        2,
	Implied:          1,
	Indirect:         3,
	IndexedIndirect:  2,
	IndirectIndexed:  2,
	Relative:         2,
	ZeroPage:         2,
	ZeroPageIndexedX: 2,
	ZeroPageIndexedY: 2,
}

// Bytes returns the size of an instruction using the addressing mode.
// Returns zero for an unknown addressing mode.
func (m AddressingMode) Bytes() int {
	if m < 0 || m >= numAddressingModes {
		return 0
	}
	return modeBytes[m]
}

// Notation formats the operand in the assembler notation for the addressing
// mode. For Relative mode the operand should be the branch target.
func (m AddressingMode) Notation(operand string) string {
	switch m {
	case Accumulator:
		return "A"
	case Implied:
		return ""
	case Immediate:
		return "#" + operand
	case AbsoluteIndexedX, ZeroPageIndexedX:
		return operand + ",X"
	case AbsoluteIndexedY, ZeroPageIndexedY:
		return operand + ",Y"
	case Indirect:
		return "(" + operand + ")"
	case IndexedIndirect:
		return "(" + operand + ",X)"
	case IndirectIndexed:
		return "(" + operand + "),Y"
	}
	return operand
}
