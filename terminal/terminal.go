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


package terminal

import (
	"context"
	"os"

	"github.com/ducklingscorp/sixtyfive/driver"
	"github.com/ducklingscorp/sixtyfive/terminal/easyterm"
	"github.com/ducklingscorp/sixtyfive/terminal/easyterm/ansi"
)

// Terminal is the interactive front end for a terminal that supports ANSI
// control codes.
type Terminal struct {
	easyterm.Terminal
	display Display
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The input file must be a terminal.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	t := &Terminal{
		display: Display{
			Output: output,
			Colour: true,
		},
	}

	err := t.Initialise(input, output)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// Run puts the terminal into cbreak mode and calls Interact(). The terminal is
// returned to its normal mode before Run returns. The Recorder can be nil.
func (t *Terminal) Run(ctx context.Context, drv *driver.Driver, input *os.File, rec Recorder) error {
	err := t.CBreakMode()
	if err != nil {
		return err
	}
	defer t.CleanUp()

	t.Print(ansi.ClearScreen)
	t.Print(ansi.HideCursor)
	defer t.Print(ansi.ShowCursor)

	return Interact(ctx, drv, input, &t.display, rec)
}
