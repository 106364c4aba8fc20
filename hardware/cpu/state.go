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

package cpu

// State of the CPU.
type State int

// List of valid states.
const (
	// the CPU has not executed an instruction since creation or the last
	// Restart(). the next call to Step() will load the reset vector
	Uninitialised State = iota

	// the CPU has executed at least one instruction
	Running

	// a BRK instruction has been executed
	Halted
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "Uninitialised"
	case Running:
		return "Running"
	case Halted:
		return "Halted"
	}
	return "unknown state"
}
