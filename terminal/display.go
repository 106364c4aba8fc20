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
	"fmt"
	"io"
	"strings"

	"github.com/ducklingscorp/sixtyfive/driver"
	"github.com/ducklingscorp/sixtyfive/hardware/memory/memorymap"
	"github.com/ducklingscorp/sixtyfive/terminal/easyterm/ansi"
)

const keyHelp = "s: step  r: run  space: stop  x: reset  q: quit"

// Display draws driver snapshots to the Output writer.
type Display struct {
	Output io.Writer

	// draw the framebuffer with ANSI colours. if false the framebuffer is
	// drawn as hexadecimal digits
	Colour bool

	// most recent failure reported by the driver
	failure string
}

// Failure sets the error that is shown under the registers. A nil error
// clears the message.
func (d *Display) Failure(err error) {
	if err == nil {
		d.failure = ""
		return
	}
	d.failure = err.Error()
}

// Draw the snapshot. The drawing starts at the top left of the screen.
func (d *Display) Draw(s driver.Snapshot) error {
	var b strings.Builder

	b.WriteString(ansi.CursorHome)

	for row := 0; row < memorymap.FramebufferHeight; row++ {
		for col := 0; col < memorymap.FramebufferWidth; col++ {
			i := row*memorymap.FramebufferWidth + col
			var v uint8
			if i < len(s.Framebuffer) {
				v = s.Framebuffer[i]
			}
			if d.Colour {
				b.WriteString(ansi.Paper(v))
				b.WriteString("  ")
			} else {
				fmt.Fprintf(&b, "%x ", v&0x0f)
			}
		}
		if d.Colour {
			b.WriteString(ansi.NormalPen)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	d.line(&b, "", s.Regs.String())
	d.line(&b, "", fmt.Sprintf("%s  cycles=%d", s.State, s.Cycles))
	d.line(&b, "", s.LastResult.String())

	switch {
	case s.Faulted:
		d.line(&b, "red", fmt.Sprintf("faulted: %s", d.failure))
	case d.failure != "":
		d.line(&b, "yellow", d.failure)
	default:
		d.line(&b, "", "")
	}

	b.WriteString("\n")
	d.line(&b, "", keyHelp)

	_, err := io.WriteString(d.Output, b.String())
	return err
}

// line adds a single line of text in the named pen. the rest of the line on
// the screen is cleared.
func (d *Display) line(b *strings.Builder, pen string, s string) {
	if d.Colour {
		b.WriteString(ansi.ClearLine)
		if pen != "" {
			b.WriteString(ansi.Pens[pen])
			b.WriteString(s)
			b.WriteString(ansi.NormalPen)
			b.WriteString("\n")
			return
		}
	}
	b.WriteString(s)
	b.WriteString("\n")
}
