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

// Package instructions defines the 6502 instruction set. Each opcode has a
// Definition describing the operator, the addressing mode, the number of
// bytes the instruction occupies and the number of cycles it takes.
//
// The definitions are generated from the instructions.csv file in the
// generator directory. Use "go generate" to regenerate table.go after
// changing the CSV file.
//
// The Table type wraps the generated definitions. A Table is created once with
// NewTable() and then passed to whatever needs to decode instructions.
package instructions
