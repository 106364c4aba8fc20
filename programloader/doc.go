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

// Package programloader is used to specify the program that is to be loaded
// into memory.
//
// When the program is ready to be loaded, the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported. The Image()
// function then returns a complete 64k memory image suitable for the driver
// package.
//
// Three formats are recognised, by file extension:
//
//	.HEX .IMG	a complete 64k memory image, including the reset vector
//	.PRG		a program preceded by its two byte, little-endian, load address
//	.BIN		a program with no header, loaded at the Origin field
//
// For the PRG and BIN formats the reset vector is set to the load address.
//
// The simplest instance of the Loader type:
//
//	pl := programloader.Loader{
//		Filename: "programs/colours.hex",
//	}
//
// It is preferred however that the NewLoader() function is used.
//
// When no program is specified the MustDemo() function provides a small program
// that draws to the framebuffer.
package programloader
