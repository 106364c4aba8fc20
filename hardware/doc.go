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


// Package hardware is the base package for the 6502 emulation. Its
// sub-packages contain everything required for a headless emulation.
//
// The cpu package executes instructions one at a time against any type that
// satisfies the cpubus.Memory interface. The memory package provides the 64KB
// address space used by the rest of the program, with the memorymap package
// describing the areas of that address space.
package hardware
