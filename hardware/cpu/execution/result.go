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

package execution

import (
	"fmt"
	"strings"

	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
type Result struct {
	// the address at which the instruction began
	Address address.Address

	// a reference to the instruction definition
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes then the instruction has not yet been fully
	// decoded
	ByteCount int

	// the operand bytes of the instruction, little endian. for a two byte
	// instruction only the low byte is meaningful
	InstructionData uint16

	// the resolved operand. for the Immediate mode this is the value itself,
	// for Relative mode it is the branch target and for every other mode it
	// is the effective address. HasArgument is false for the Implied and
	// Accumulator modes
	Argument    uint16
	HasArgument bool

	// whether a branch (or jump) changed the program counter
	BranchTaken bool

	// the number of cycles the instruction would take on real hardware. this
	// includes any extra cycles for a taken branch
	Cycles int

	// whether a branch crossed into another page
	PageFault bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// whether this data has been finalised. the values of the other fields
	// may be undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand of the instruction as it would appear in an
// assembly listing, not including the addressing mode notation.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return ""
	case instructions.Relative:
		if r.HasArgument {
			return fmt.Sprintf("$%04x", r.Argument)
		}
		return "????"
	}

	if r.ByteCount < r.Defn.Bytes {
		return strings.Repeat("?", (r.Defn.Bytes-1)*2)
	}

	if r.Defn.Bytes == 3 {
		return fmt.Sprintf("$%04x", r.InstructionData)
	}
	return fmt.Sprintf("$%02x", r.InstructionData&0x00ff)
}

// Bytecode returns the hex bytes of the instruction, opcode first.
func (r Result) Bytecode() string {
	if r.Defn == nil {
		return ""
	}

	switch r.ByteCount {
	case 1:
		return fmt.Sprintf("%02x", r.Defn.OpCode)
	case 2:
		return fmt.Sprintf("%02x %02x", r.Defn.OpCode, r.InstructionData&0x00ff)
	case 3:
		return fmt.Sprintf("%02x %02x %02x", r.Defn.OpCode, r.InstructionData&0x00ff, r.InstructionData>>8)
	}

	return ""
}

// String returns a disassembly-like line for the instruction. For example:
//
//	$0600  a9 05     LDA #$05
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%s  %-8s  ???", r.Address, "")
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s  %-8s  %s", r.Address, r.Bytecode(), r.Defn.Operator))
	if n := r.Defn.AddressingMode.Notation(r.Operand()); n != "" {
		s.WriteString(" ")
		s.WriteString(n)
	}

	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" *%s*", r.CPUBug))
	}

	return s.String()
}
