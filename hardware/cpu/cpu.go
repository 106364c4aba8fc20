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
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/execution"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/instructions"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/registers"
	"github.com/ducklingscorp/sixtyfive/hardware/memory/cpubus"
	"github.com/ducklingscorp/sixtyfive/hardware/memory/memorymap"
	"github.com/ducklingscorp/sixtyfive/logger"
)

// Memory is the memory the CPU executes from. In addition to reading and
// writing, the CPU must be able to clear memory when it is restarted.
type Memory interface {
	cpubus.Memory
	Clear()
}

// CPU implements the 6502. Register logic is implemented by the Registers type
// in the registers sub-package.
type CPU struct {
	Regs registers.Registers

	// the number of instructions successfully executed since the last
	// restart. note that despite the name this is not the number of clock
	// cycles. the number of clock cycles for the most recent instruction is
	// in LastResult
	Cycles int

	// the result of the most recent call to Step()
	LastResult execution.Result

	// log every instruction to the central logger
	Trace logger.PermissionFlag

	mem          Memory
	instructions *instructions.Table

	// a BRK instruction has been executed. requires a Restart()
	halted bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// table of instructions is shared and will not be altered by the CPU.
func NewCPU(tab *instructions.Table, mem Memory) *CPU {
	return &CPU{
		Regs:         registers.NewRegisters(),
		mem:          mem,
		instructions: tab,
	}
}

// Snapshot creates a copy of the CPU in its current state. Memory is not
// copied.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

func (mc *CPU) String() string {
	return mc.Regs.String()
}

// State returns the current state of the CPU.
func (mc *CPU) State() State {
	if mc.halted {
		return Halted
	}
	if mc.Cycles == 0 {
		return Uninitialised
	}
	return Running
}

// Restart returns the CPU to the uninitialised state. Memory is cleared and
// the registers are returned to their default values. The program must be
// reloaded by the caller.
func (mc *CPU) Restart() {
	mc.Cycles = 0
	mc.halted = false
	mc.LastResult.Reset()
	mc.Regs.Reset()
	mc.mem.Clear()
}

// loadResetVector loads the PC with the little-endian address stored at the
// reset vector.
func (mc *CPU) loadResetVector() {
	lo := mc.mem.Read(memorymap.ResetVector)
	hi := mc.mem.Read(memorymap.ResetVector.SamePageAdd(1))
	mc.Regs.PC = address.FromBytes(lo, hi)
}

// read8BitPC reads the byte that is offset bytes after the PC. the byte is
// recorded in LastResult.
func (mc *CPU) read8BitPC(offset uint16) (uint8, error) {
	a, err := mc.Regs.PC.Add(offset)
	if err != nil {
		return 0, curated.Errorf("cpu: %v", err)
	}
	v := mc.mem.Read(a)

	mc.LastResult.ByteCount++
	if offset == 1 {
		mc.LastResult.InstructionData = uint16(v)
	} else {
		mc.LastResult.InstructionData |= uint16(v) << 8
	}

	return v, nil
}

// read16BitPC reads the two bytes following the PC as a little-endian address.
func (mc *CPU) read16BitPC() (address.Address, error) {
	lo, err := mc.read8BitPC(1)
	if err != nil {
		return 0, err
	}
	hi, err := mc.read8BitPC(2)
	if err != nil {
		return 0, err
	}
	return address.FromBytes(lo, hi), nil
}

// Step executes the next instruction. The basic process when executing an
// instruction is this:
//
//  1. load the PC from the reset vector if the CPU is uninitialised
//  2. read opcode and look up instruction definition
//  3. resolve the operand according to the addressing mode of the instruction
//  4. using the operator as a guide, perform the instruction on the operand
//  5. advance the PC unless the instruction was a jump or a taken branch
//
// If the opcode is not in the instruction table an UnknownOpcode error is
// returned and the CPU is unchanged. Memory can be altered and Step() called
// again.
//
// A BRK instruction halts the CPU and a Break error is returned. The PC is left
// pointing at the BRK instruction and the error is returned by every
// subsequent call to Step() until Restart() is called.
//
// All other errors are fatal. See IsFatal().
func (mc *CPU) Step() error {
	if mc.halted {
		return curated.Errorf(Break, mc.Regs.PC)
	}

	if mc.Cycles == 0 {
		mc.loadResetVector()
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.Regs.PC

	opcode := mc.mem.Read(mc.Regs.PC)
	mc.LastResult.ByteCount = 1

	defn, ok := mc.instructions.Lookup(opcode)
	if !ok {
		mc.LastResult.Final = true
		return curated.Errorf(UnknownOpcode, opcode, mc.Regs.PC)
	}
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	arg, err := mc.resolve(defn)
	if err != nil {
		return err
	}

	jumped := false

	switch defn.Operator {
	case instructions.BRK:
		mc.halted = true
		mc.LastResult.Final = true
		mc.trace()
		return curated.Errorf(Break, mc.Regs.PC)

	case instructions.NOP:
		if defn.AddressingMode != instructions.Implied {
			return mc.invalidMode(defn)
		}

	case instructions.LDA:
		switch defn.AddressingMode {
		case instructions.Immediate:
			mc.Regs.SetA(uint8(arg))
		case instructions.Absolute, instructions.ZeroPage:
			mc.Regs.SetA(mc.mem.Read(arg))
		default:
			return mc.invalidMode(defn)
		}

	case instructions.STA:
		switch defn.AddressingMode {
		case instructions.Absolute, instructions.ZeroPage, instructions.IndexedIndirect:
			mc.mem.Write(arg, mc.Regs.A)
		default:
			return mc.invalidMode(defn)
		}

	case instructions.ADC:
		if defn.AddressingMode != instructions.Immediate {
			return mc.invalidMode(defn)
		}
		mc.Regs.AddA(uint8(arg))

	case instructions.JMP:
		if defn.AddressingMode != instructions.Absolute {
			return mc.invalidMode(defn)
		}
		mc.Regs.PC = arg
		jumped = true

	case instructions.BEQ:
		if defn.AddressingMode != instructions.Relative {
			return mc.invalidMode(defn)
		}
		jumped = mc.branch(mc.Regs.Test(registers.Zero), arg)

	case instructions.BNE:
		if defn.AddressingMode != instructions.Relative {
			return mc.invalidMode(defn)
		}
		jumped = mc.branch(!mc.Regs.Test(registers.Zero), arg)

	default:
		return curated.Errorf(UnimplementedInstruction, defn.Operator, mc.Regs.PC)
	}

	if !jumped {
		mc.Regs.PC, err = mc.Regs.PC.Add(uint16(defn.Bytes))
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
	}

	mc.Cycles++

	// finalise result
	mc.LastResult.Final = true
	mc.trace()

	return nil
}

// resolve the operand of the instruction. the meaning of the returned value
// depends on the addressing mode: for Immediate mode it is the value to use
// in the instruction, for Relative mode it is the branch target and for all
// other modes it is the address of the value.
//
// the PC is not changed.
func (mc *CPU) resolve(defn *instructions.Definition) (address.Address, error) {
	var arg address.Address

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return 0, nil

	case instructions.Immediate:
		v, err := mc.read8BitPC(1)
		if err != nil {
			return 0, err
		}
		arg = address.Address(v)

	case instructions.Absolute:
		var err error
		arg, err = mc.read16BitPC()
		if err != nil {
			return 0, err
		}

	case instructions.ZeroPage:
		v, err := mc.read8BitPC(1)
		if err != nil {
			return 0, err
		}
		arg = address.ZeroPage(v)

	case instructions.IndexedIndirect: // x indexing
		v, err := mc.read8BitPC(1)
		if err != nil {
			return 0, err
		}

		// the pointer and the pointer's high byte are both confined to the
		// zero page
		ptr := address.ZeroPage(v).SamePageAdd(mc.Regs.X)
		if uint16(v)+uint16(mc.Regs.X) > 0xff || ptr.Offset() == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectAddressingBug
		}
		lo := mc.mem.Read(ptr)
		hi := mc.mem.Read(ptr.SamePageAdd(1))
		arg = address.FromBytes(lo, hi)

	case instructions.Relative:
		// the branch target is measured from the address of the branch
		// instruction and not from the address of the next instruction
		v, err := mc.read8BitPC(1)
		if err != nil {
			return 0, err
		}
		arg = mc.Regs.PC.Relative(v)

	default:
		return 0, curated.Errorf(UnimplementedAddressingMode, defn.AddressingMode, mc.Regs.PC)
	}

	mc.LastResult.Argument = arg.Uint16()
	mc.LastResult.HasArgument = true

	return arg, nil
}

// branch to the target if the condition is true. returns true if the branch
// was taken.
func (mc *CPU) branch(condition bool, target address.Address) bool {
	if !condition {
		return false
	}

	// an extra cycle is taken on real hardware if the branch is taken and
	// another if the branch crosses into another page. the page is compared
	// with the address after the branch instruction
	next := address.Address(mc.Regs.PC.Uint16() + 2)
	mc.LastResult.BranchTaken = true
	mc.LastResult.Cycles++
	if next.Page() != target.Page() {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}

	mc.Regs.PC = target
	return true
}

func (mc *CPU) invalidMode(defn *instructions.Definition) error {
	return curated.Errorf(InvalidAddressingMode, defn.AddressingMode, defn.Operator, mc.Regs.PC)
}

func (mc *CPU) trace() {
	logger.Logf(&mc.Trace, "cpu", "%s  %s", mc.LastResult, mc.Regs)
}

// Disassemble the instruction at the address without executing it. The
// returned Result has the Final field set to false because the instruction
// was not executed. The second return value is the address of the following
// instruction.
func Disassemble(tab *instructions.Table, mem cpubus.Memory, a address.Address) (execution.Result, address.Address) {
	r := execution.Result{Address: a}

	defn, ok := tab.Lookup(mem.Read(a))
	if !ok {
		return r, address.Address(a.Uint16() + 1)
	}
	r.Defn = defn
	r.Cycles = defn.Cycles

	for i := 1; i < defn.Bytes; i++ {
		v := mem.Read(address.Address(a.Uint16() + uint16(i)))
		r.InstructionData |= uint16(v) << (8 * (i - 1))
	}
	r.ByteCount = defn.Bytes

	if defn.AddressingMode == instructions.Relative {
		r.Argument = a.Relative(uint8(r.InstructionData)).Uint16()
		r.HasArgument = true
	}

	return r, address.Address(a.Uint16() + uint16(defn.Bytes))
}

// DisassembleRange disassembles every instruction from start up to but not
// including end. The lines are in the form returned by execution.Result's
// String() function.
func DisassembleRange(tab *instructions.Table, mem cpubus.Memory, start address.Address, end int) []string {
	var lines []string

	a := start
	for a.Int() < end {
		r, next := Disassemble(tab, mem, a)
		lines = append(lines, r.String())
		if next <= a {
			break
		}
		a = next
	}

	return lines
}
