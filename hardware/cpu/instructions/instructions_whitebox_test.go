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
	"testing"

	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/test"
)

func TestMalformedTable(t *testing.T) {
	_, err := newTable(make([]*Definition, 10))
	test.ExpectSuccess(t, curated.Is(err, TableSize))

	defns := make([]*Definition, 256)
	defns[0x10] = &Definition{OpCode: 0x11, Operator: NOP, AddressingMode: Implied, Bytes: 1}
	_, err = newTable(defns)
	test.ExpectSuccess(t, curated.Is(err, TableMisplaced))

	defns = make([]*Definition, 256)
	defns[0xea] = &Definition{OpCode: 0xea, Operator: NOP, AddressingMode: Implied, Bytes: 2}
	_, err = newTable(defns)
	test.ExpectSuccess(t, curated.Is(err, TableBytes))

	defns[0xea].Bytes = 1
	tab, err := newTable(defns)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab.Count(), 1)
}
