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
	"io"
	"time"

	"github.com/ducklingscorp/sixtyfive/driver"
	"github.com/ducklingscorp/sixtyfive/logger"
	"github.com/ducklingscorp/sixtyfive/terminal/easyterm"
)

// the longest time between redraws. the display is drawn more often than this
// if the driver sends notifications
const redrawInterval = 100 * time.Millisecond

// keyRequest returns the driver request for the key. The second return value
// is false if the key has no request.
func keyRequest(key byte) (driver.Request, bool) {
	switch key {
	case 's', 'S':
		return driver.StepRequest, true
	case 'r', 'R':
		return driver.RunRequest, true
	case easyterm.KeySpace:
		return driver.StopRequest, true
	case 'x', 'X':
		return driver.ResetRequest, true
	}
	return driver.Request{}, false
}

// isQuit returns true if the key should end the interaction.
func isQuit(key byte) bool {
	switch key {
	case 'q', 'Q', easyterm.KeyEsc, easyterm.KeyEndOfTransmit, easyterm.KeyInterrupt:
		return true
	}
	return false
}

// Recorder is told about every request sent to the driver by Interact().
type Recorder interface {
	Record(driver.Request) error
}

// Interact reads keys from input and sends the corresponding requests to the
// driver. The display is redrawn when the driver notifies that something has
// happened. Interact returns when the quit key is pressed, when input ends or
// when the context is done.
//
// The driver's Loop() must be running in another goroutine. The Recorder can
// be nil.
func Interact(ctx context.Context, drv *driver.Driver, input io.Reader, disp *Display, rec Recorder) error {
	keys := make(chan byte)
	readErr := make(chan error, 1)

	go func() {
		b := make([]byte, 1)
		for {
			n, err := input.Read(b)
			if err != nil {
				readErr <- err
				return
			}
			if n == 0 {
				continue
			}
			select {
			case keys <- b[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	redraw := time.NewTicker(redrawInterval)
	defer redraw.Stop()

	dirty := true

	draw := func() error {
		s, ok := drv.TrySnapshot()
		if !ok {
			return nil
		}
		dirty = false
		return disp.Draw(s)
	}

	if err := draw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-readErr:
			if err == io.EOF {
				return nil
			}
			return err

		case key := <-keys:
			if isQuit(key) {
				return nil
			}
			req, ok := keyRequest(key)
			if !ok {
				continue
			}
			if req.Cmd == driver.Reset {
				disp.Failure(nil)
			}
			logger.Logf(logger.Allow, "terminal", "key %q: %v", key, req)
			select {
			case drv.Commands() <- req:
			case <-ctx.Done():
				return nil
			}
			if rec != nil {
				if err := rec.Record(req); err != nil {
					return err
				}
			}

		case err := <-drv.Failures():
			disp.Failure(err)
			dirty = true

		case <-drv.Notify():
			dirty = true
			if err := draw(); err != nil {
				return err
			}

		case <-redraw.C:
			if dirty {
				if err := draw(); err != nil {
					return err
				}
			}
		}
	}
}
