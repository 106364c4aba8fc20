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

//go:generate go run instructions_gen.go

package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ducklingscorp/sixtyfive/hardware/cpu/instructions"
)

const definitionsCSVFile = "./instructions.csv"
const generatedGoFile = "../table.go"
const headerFile = "../doc.go"

const leadingBoilerPlate = "// Code generated by generator/instructions_gen.go; DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// GetDefinitions returns the table of instruction definitions for the 6502.\n" +
	"// The table is indexed by opcode. Opcodes without a definition are nil.\n" +
	"func GetDefinitions() []*Definition {\n" +
	"return []*Definition{"

const trailingBoilerPlate = "}\n}\n"

var modes = map[string]instructions.AddressingMode{
	"ACCUMULATOR":         instructions.Accumulator,
	"ABSOLUTE":            instructions.Absolute,
	"ABSOLUTE_INDEXED_X":  instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":  instructions.AbsoluteIndexedY,
	"IMMEDIATE":           instructions.Immediate,
	"IMPLIED":             instructions.Implied,
	"INDIRECT":            instructions.Indirect,
	"PRE_INDEX_INDIRECT":  instructions.IndexedIndirect,
	"POST_INDEX_INDIRECT": instructions.IndirectIndexed,
	"RELATIVE":            instructions.Relative,
	"ZERO_PAGE":           instructions.ZeroPage,
	"INDEXED_ZERO_PAGE_X": instructions.ZeroPageIndexedX,
	"INDEXED_ZERO_PAGE_Y": instructions.ZeroPageIndexedY,
}

var effects = map[string]instructions.EffectCategory{
	"READ":        instructions.Read,
	"WRITE":       instructions.Write,
	"RMW":         instructions.RMW,
	"FLOW":        instructions.Flow,
	"SUB-ROUTINE": instructions.Subroutine,
	"INTERRUPT":   instructions.Interrupt,
}

func parseCSV() ([256]*instructions.Definition, error) {
	var deftable [256]*instructions.Definition

	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return deftable, fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true

	// instruction effect field is optional (defaulting to READ)
	csvr.FieldsPerRecord = -1

	line := 0
	for {
		line++
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return deftable, err
		}

		if !(len(rec) == 5 || len(rec) == 6) {
			return deftable, fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}

		for i := 0; i < len(rec); i++ {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		// field: opcode
		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return deftable, fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if deftable[defn.OpCode] != nil {
			return deftable, fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		// field: mnemonic
		var ok bool
		defn.Operator, ok = instructions.ParseOperator(strings.ToUpper(rec[1]))
		if !ok {
			return deftable, fmt.Errorf("unknown mnemonic for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		// field: cycle count
		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return deftable, fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// field: addressing mode. the addressing mode also decides how many
		// bytes the instruction requires
		defn.AddressingMode, ok = modes[strings.ToUpper(rec[3])]
		if !ok {
			return deftable, fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.Bytes = defn.AddressingMode.Bytes()

		// field: page sensitive
		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			defn.PageSensitive = true
		case "FALSE":
			defn.PageSensitive = false
		default:
			return deftable, fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		// field: effect category
		defn.Effect = instructions.Read
		if len(rec) == 6 {
			defn.Effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return deftable, fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
			}
		}

		deftable[defn.OpCode] = &defn
	}

	return deftable, nil
}

func printSummary(deftable [256]*instructions.Definition) {
	missing := 0
	for _, d := range deftable {
		if d == nil {
			missing++
		}
	}
	fmt.Printf("%d opcodes defined, %d undefined\n", 256-missing, missing)
}

// the GPL header at the top of doc.go is copied to the generated file.
func licenseHeader() (string, error) {
	b, err := os.ReadFile(headerFile)
	if err != nil {
		return "", err
	}

	s := strings.Builder{}
	for _, l := range strings.SplitAfter(string(b), "\n") {
		if !strings.HasPrefix(l, "//") {
			break
		}
		s.WriteString(l)
	}
	s.WriteString("\n")

	return s.String(), nil
}

func generate() error {
	deftable, err := parseCSV()
	if err != nil {
		return err
	}

	printSummary(deftable)

	hdr, err := licenseHeader()
	if err != nil {
		return err
	}

	output := strings.Builder{}
	output.WriteString(hdr)
	output.WriteString(leadingBoilerPlate)
	for _, d := range deftable {
		if d == nil {
			output.WriteString("\nnil,")
			continue
		}
		output.WriteString(fmt.Sprintf("\n{OpCode: %#02x, Operator: %s, AddressingMode: %s, Bytes: %d, Cycles: %d, PageSensitive: %t, Effect: %s},",
			d.OpCode, d.Operator, d.AddressingMode, d.Bytes, d.Cycles, d.PageSensitive, d.Effect))
	}
	output.WriteString(trailingBoilerPlate)

	formatted, err := format.Source([]byte(output.String()))
	if err != nil {
		return err
	}

	return os.WriteFile(generatedGoFile, formatted, 0644)
}

func main() {
	err := generate()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
