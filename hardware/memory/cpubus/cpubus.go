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

// Package cpubus defines the interface the CPU uses to access memory.
package cpubus

import "github.com/ducklingscorp/sixtyfive/hardware/cpu/address"

// Memory defines the operations for the memory system when accessed from the
// CPU. Because an Address is always valid there is no error condition.
type Memory interface {
	Read(address address.Address) uint8
	Write(address address.Address, data uint8)
}
