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


// Package digest creates fingerprints of the state of the emulation. The
// fingerprints are useful for checking that a program behaves the same way
// from one version of the emulator to the next.
package digest

// Digest implementations compute a hash of emulation state.
type Digest interface {
	Hash() string
	ResetDigest()
}
