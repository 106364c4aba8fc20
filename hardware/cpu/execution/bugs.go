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

// Bug notes a known quirk of the 6502 that affected how an instruction was
// executed. The quirks are emulated faithfully but it is useful to know when
// one has been triggered.
type Bug string

// List of known bugs.
const (
	NoBug Bug = ""

	// the pointer for the (zpg,X) addressing mode never leaves the zero page.
	// the bug is triggered when the index pushes the pointer past $ff or when
	// the high byte of the pointer is read from $00 rather than $100
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"
)
