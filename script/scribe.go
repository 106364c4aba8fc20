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


package script

import (
	"fmt"
	"io"
	"time"

	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/driver"
)

// Scribe records driver requests as a Lua script.
type Scribe struct {
	output io.Writer

	// the time of the most recent Run request. the zero value indicates
	// that the driver is not running
	runStart time.Time

	// returns the current time. replaced in tests
	now func() time.Time
}

// NewScribe is the preferred method of initialisation for the Scribe type.
func NewScribe(output io.Writer) *Scribe {
	scr := &Scribe{
		output: output,
		now:    time.Now,
	}
	fmt.Fprintf(scr.output, "-- recorded %s\n", scr.now().Format(time.DateTime))
	return scr
}

// IsRunning returns true if a Run request has been recorded but has not yet
// been stopped.
func (scr *Scribe) IsRunning() bool {
	return !scr.runStart.IsZero()
}

// Record the request. Run requests are recorded when they are stopped so
// that the duration of the run is known.
func (scr *Scribe) Record(req driver.Request) error {
	var line string

	switch req.Cmd {
	case driver.Run:
		if !scr.IsRunning() {
			scr.runStart = scr.now()
		}
		return nil

	case driver.Stop:
		return scr.endRun()

	case driver.Step:
		line = "step()"

	case driver.Reset:
		line = "reset()"

	case driver.Get:
		switch req.Kind {
		case driver.Range:
			line = fmt.Sprintf("print(table.concat(range(%#04x, %#04x), \" \"))", req.Start, req.End)
		case driver.Value:
			line = fmt.Sprintf("print(peek(%#04x))", req.Address.Uint16())
		case driver.Flags:
			line = "print(flags())"
		}

	default:
		return curated.Errorf("script: cannot record %v", req)
	}

	// any request other than Stop while running ends the run in the driver
	if err := scr.endRun(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(scr.output, line)
	if err != nil {
		return curated.Errorf("script: %v", err)
	}

	return nil
}

func (scr *Scribe) endRun() error {
	if !scr.IsRunning() {
		return nil
	}

	d := scr.now().Sub(scr.runStart)
	scr.runStart = time.Time{}

	// a run of less than a millisecond is still recorded as a run
	ms := d.Milliseconds()
	if ms < 1 {
		ms = 1
	}

	_, err := fmt.Fprintf(scr.output, "run(%d)\n", ms)
	if err != nil {
		return curated.Errorf("script: %v", err)
	}

	return nil
}

// Close ends the recording. A run that has not been stopped is recorded as
// though it was stopped now.
func (scr *Scribe) Close() error {
	return scr.endRun()
}
