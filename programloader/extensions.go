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

package programloader

// Format of the program data.
type Format int

// List of valid formats.
const (
	FormatImage Format = iota
	FormatPRG
	FormatBinary
)

func (f Format) String() string {
	switch f {
	case FormatImage:
		return "image"
	case FormatPRG:
		return "prg"
	case FormatBinary:
		return "binary"
	}
	return "unknown format"
}

// FileExtensions is the list of file extensions that are recognised by the
// programloader package.
var FileExtensions = [...]string{".HEX", ".IMG", ".PRG", ".BIN"}
