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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ducklingscorp/sixtyfive/test"
)

func TestSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)
	test.DemandSuccess(t, err)
}

func TestFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
	test.DemandFailure(t, errors.New("test"))
}

func TestEquality(t *testing.T) {
	test.ExpectEquality(t, uint16(0x0600), 0x0600)
	test.ExpectEquality(t, "foo", "foo")
	test.ExpectInequality(t, 1, 2)
	test.DemandEquality(t, true, true)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, tw.Compare(""))

	fmt.Fprintf(tw, "PC=$%04X", 0x0605)
	test.ExpectSuccess(t, tw.Compare("PC=$0605"))
	test.ExpectEquality(t, tw.String(), "PC=$0605")

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
