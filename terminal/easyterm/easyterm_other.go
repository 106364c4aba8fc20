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


//go:build !linux

// Package easyterm is a wrapper for "github.com/pkg/term/termios". Terminal
// modes are only supported on Linux.
package easyterm

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal is the main container for posix terminals. On this platform none
// of the terminal modes are supported.
type Terminal struct{}

// Initialise always fails on this platform.
func (et *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return fmt.Errorf("easyterm: terminal modes not supported on this platform")
}

// CleanUp does nothing on this platform.
func (et *Terminal) CleanUp() {}

// Print does nothing on this platform.
func (et *Terminal) Print(s string, a ...interface{}) {}

// UpdateGeometry always fails on this platform.
func (et *Terminal) UpdateGeometry() error {
	return fmt.Errorf("easyterm: terminal modes not supported on this platform")
}

// Geometry always returns zero on this platform.
func (et *Terminal) Geometry() (int, int) {
	return 0, 0
}

// CanonicalMode does nothing on this platform.
func (et *Terminal) CanonicalMode() error { return nil }

// RawMode does nothing on this platform.
func (et *Terminal) RawMode() error { return nil }

// CBreakMode does nothing on this platform.
func (et *Terminal) CBreakMode() error { return nil }

// Flush does nothing on this platform.
func (et *Terminal) Flush() error { return nil }

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
