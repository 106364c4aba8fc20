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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and the values for the
// pattern's placeholders.
//
// The pattern is what identifies a curated error. Packages that raise errors
// that callers might want to react to export the pattern as a string
// constant. For example, the cpu package exports the UnknownOpcode pattern:
//
//	err := mc.Step()
//	if curated.Is(err, cpu.UnknownOpcode) {
//		// patch memory and try again
//	}
//
// The Has() function checks if a pattern occurs anywhere in the error chain.
// This is useful when an error has been wrapped by an intermediate package:
//
//	e := curated.Errorf(cpu.Break, 0x0613)
//	f := curated.Errorf("driver: %v", e)
//
//	curated.Is(f, cpu.Break)  // false
//	curated.Has(f, cpu.Break) // true
//
// When an error message is produced, repeated leading parts of the message
// are removed. So the error:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: unknown opcode"))
//
// will print as "cpu: unknown opcode" and not "cpu: cpu: unknown opcode".
//
// Curated errors also implement Unwrap() so that the errors.Is() and
// errors.As() functions in the standard library see any error values passed
// to Errorf().
package curated
