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

// Package memory implements the 64k address space of the 6502. The memory is
// flat: every address is RAM and there is no bank switching or memory mapped
// I/O. The memorymap package describes how areas of memory are used by
// convention.
//
// The CPU accesses memory through the cpubus.Memory interface. Everything
// else (the driver, the display, the program loader) uses the functions of the
// Memory type directly.
//
//	    CPU ---- cpu bus ---- MEMORY ---- DRIVER ---- DISPLAY
//	                            |
//	                            |
//	                      program loader
//
// Memory is zeroed when it is created and whenever Clear() is called. A
// program image of exactly 64k can be loaded with Load(). Smaller blocks of
// data can be placed anywhere in memory with LoadAt().
package memory
