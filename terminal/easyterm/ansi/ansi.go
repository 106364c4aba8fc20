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


// Package ansi defines ANSI control codes for drawing the framebuffer and the
// status lines of the terminal display.
package ansi

import (
	"fmt"
	"strings"
)

// ansi color.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
	attrInverse   = 7
)

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[0m"

// ClearScreen is the CSI sequence to clear the screen.
const ClearScreen = "\033[2J"

// ClearLine is the CSI sequence to clear the current line.
const ClearLine = "\033[2K"

// CursorHome is the CSI sequence to move the cursor to the top left of the
// screen.
const CursorHome = "\033[H"

// HideCursor is the CSI sequence to stop the cursor being drawn.
const HideCursor = "\033[?25l"

// ShowCursor is the CSI sequence to start drawing the cursor again.
const ShowCursor = "\033[?25h"

// CursorPosition is the CSI sequence to move the cursor to the row and column.
// The top left of the screen is row 1, column 1.
func CursorPosition(row, col int) string {
	return fmt.Sprintf("\033[%d;%dH", row, col)
}

// PenBuild creates the ANSI sequence for the pen with the named color and
// attribute. Empty strings leave that part of the pen unchanged.
func PenBuild(pen, attribute string, bright bool) (string, error) {
	s := strings.Builder{}
	s.Grow(16)
	s.WriteString("\033[")

	if pen != "" {
		target := targetPen
		if bright {
			target = targetBrightPen
		}

		var col int
		switch strings.ToUpper(pen) {
		case "BLACK":
			col = colBlack
		case "RED":
			col = colRed
		case "GREEN":
			col = colGreen
		case "YELLOW":
			col = colYellow
		case "BLUE":
			col = colBlue
		case "MAGENTA":
			col = colMagenta
		case "CYAN":
			col = colCyan
		case "WHITE":
			col = colWhite
		case "NORMAL":
			col = colDefault
		default:
			return "", fmt.Errorf("ansi: unknown pen (%s)", pen)
		}
		fmt.Fprintf(&s, "%d%d", target, col)
	}

	if attribute != "" {
		var attr int
		switch strings.ToUpper(attribute) {
		case "BOLD":
			attr = attrBold
		case "UNDERLINE":
			attr = attrUnderline
		case "INVERSE":
			attr = attrInverse
		default:
			return "", fmt.Errorf("ansi: unknown attribute (%s)", attribute)
		}
		if s.Len() > 2 {
			s.WriteString(";")
		}
		fmt.Fprintf(&s, "%d", attr)
	}

	s.WriteString("m")

	return s.String(), nil
}

// Pens is the table of colors to be used for text.
var Pens = map[string]string{}

func init() {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = PenBuild(c, "", true)
	}
	Pens["bold"], _ = PenBuild("", "bold", false)
}
