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

import (
	"fmt"

	"github.com/ducklingscorp/sixtyfive/curated"
)

// Sentinal errors for a malformed definitions table.
const (
	TableSize      = "instructions: table has %d entries, expected 256"
	TableMisplaced = "instructions: definition for %#02x found at index %#02x"
	TableBytes     = "instructions: %#02x %v has %d bytes but %v needs %d"
)

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Bytes          int
	Cycles         int
	PageSensitive  bool
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%v pagesens=%t effect=%v]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Table of instruction definitions, indexed by opcode. A Table never changes
// after it has been created.
type Table struct {
	defns [256]*Definition
}

// NewTable creates a Table from the generated definitions. The definitions
// are checked for consistency and an error returned if there is a problem.
func NewTable() (*Table, error) {
	return newTable(GetDefinitions())
}

func newTable(defns []*Definition) (*Table, error) {
	if len(defns) != 256 {
		return nil, curated.Errorf(TableSize, len(defns))
	}

	tab := &Table{}
	for i, d := range defns {
		if d == nil {
			continue
		}
		if int(d.OpCode) != i {
			return nil, curated.Errorf(TableMisplaced, d.OpCode, i)
		}
		if d.Bytes != d.AddressingMode.Bytes() {
			return nil, curated.Errorf(TableBytes, d.OpCode, d.Operator, d.Bytes, d.AddressingMode, d.AddressingMode.Bytes())
		}
		tab.defns[i] = d
	}

	return tab, nil
}

// Lookup returns the definition for the opcode. The second return value is
// false if the opcode has no definition.
func (tab *Table) Lookup(opcode uint8) (*Definition, bool) {
	d := tab.defns[opcode]
	return d, d != nil
}

// Count returns the number of defined opcodes.
func (tab *Table) Count() int {
	n := 0
	for _, d := range tab.defns {
		if d != nil {
			n++
		}
	}
	return n
}
