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


package digest_test

import (
	"testing"

	"github.com/ducklingscorp/sixtyfive/digest"
	"github.com/ducklingscorp/sixtyfive/test"
)

func TestFramebuffer(t *testing.T) {
	var dig digest.Digest

	fb := make([]uint8, 256)

	a := digest.NewFramebuffer()
	dig = a
	test.ExpectEquality(t, dig.Hash(), "0000000000000000000000000000000000000000")

	a.Update(fb)
	first := a.Hash()
	test.ExpectInequality(t, first, "0000000000000000000000000000000000000000")

	// the same data a second time produces a different hash because the
	// fingerprint is chained
	a.Update(fb)
	test.ExpectInequality(t, a.Hash(), first)
	test.ExpectEquality(t, a.Updates(), 2)

	// the same sequence of updates produces the same hash
	b := digest.NewFramebuffer()
	b.Update(fb)
	b.Update(fb)
	test.ExpectEquality(t, b.Hash(), a.Hash())

	// short data is padded with zeroes
	b.ResetDigest()
	test.ExpectEquality(t, b.Updates(), 0)
	b.Update(fb[:10])
	test.ExpectEquality(t, b.Hash(), first)

	fb[255] = 1
	b.ResetDigest()
	b.Update(fb)
	test.ExpectInequality(t, b.Hash(), first)
}
