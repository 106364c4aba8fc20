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


package terminal_test

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/driver"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/instructions"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/registers"
	"github.com/ducklingscorp/sixtyfive/programloader"
	"github.com/ducklingscorp/sixtyfive/terminal"
	"github.com/ducklingscorp/sixtyfive/terminal/easyterm/ansi"
	"github.com/ducklingscorp/sixtyfive/test"
)

func TestDrawPlain(t *testing.T) {
	tw := &test.CompareWriter{}
	disp := terminal.Display{Output: tw}

	s := driver.Snapshot{
		Regs:        registers.NewRegisters(),
		Framebuffer: make([]uint8, 256),
	}
	for i := range s.Framebuffer {
		s.Framebuffer[i] = uint8(i)
	}

	test.DemandSuccess(t, disp.Draw(s))

	lines := strings.Split(strings.TrimPrefix(tw.String(), ansi.CursorHome), "\n")
	test.ExpectEquality(t, lines[0], "0 1 2 3 4 5 6 7 8 9 a b c d e f ")
	test.ExpectEquality(t, lines[15], "0 1 2 3 4 5 6 7 8 9 a b c d e f ")
	test.ExpectEquality(t, lines[16], "")
	test.ExpectEquality(t, lines[17], s.Regs.String())
	test.ExpectEquality(t, lines[18], "Uninitialised  cycles=0")
	test.ExpectEquality(t, lines[20], "")

	tw.Clear()
	disp.Failure(curated.Errorf("cpu: test failure"))
	test.DemandSuccess(t, disp.Draw(s))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "\ncpu: test failure\n"))

	tw.Clear()
	s.Faulted = true
	test.DemandSuccess(t, disp.Draw(s))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "\nfaulted: cpu: test failure\n"))

	tw.Clear()
	disp.Failure(nil)
	s.Faulted = false
	test.DemandSuccess(t, disp.Draw(s))
	test.ExpectFailure(t, strings.Contains(tw.String(), "test failure"))
}

func TestDrawColour(t *testing.T) {
	tw := &test.CompareWriter{}
	disp := terminal.Display{Output: tw, Colour: true}

	s := driver.Snapshot{
		Regs:        registers.NewRegisters(),
		Framebuffer: make([]uint8, 256),
	}
	s.Framebuffer[0] = 0x01

	test.DemandSuccess(t, disp.Draw(s))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), ansi.CursorHome+ansi.Paper(1)+"  "+ansi.Paper(0)+"  "))

	// a short framebuffer is drawn as black
	tw.Clear()
	s.Framebuffer = s.Framebuffer[:1]
	test.DemandSuccess(t, disp.Draw(s))
	test.ExpectEquality(t, strings.Count(tw.String(), ansi.Paper(0)), 255)
}

type recorder struct {
	crit sync.Mutex
	reqs []string
}

func (r *recorder) Record(req driver.Request) error {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.reqs = append(r.reqs, req.Cmd.String())
	return nil
}

func (r *recorder) String() string {
	r.crit.Lock()
	defer r.crit.Unlock()
	return strings.Join(r.reqs, " ")
}

// waitFor waits until the writer contains the string.
func waitFor(t *testing.T, tw *test.CompareWriter, s string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(tw.String(), s) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %q", s)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestInteract(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	drv, err := driver.NewDriver(tab, programloader.MustDemo())
	test.DemandSuccess(t, err)
	drv.PollInterval = 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loopDone := make(chan error)
	go func() {
		loopDone <- drv.Loop(ctx)
	}()

	input, keys := io.Pipe()
	tw := &test.CompareWriter{}
	disp := &terminal.Display{Output: tw}
	rec := &recorder{}

	done := make(chan error)
	go func() {
		done <- terminal.Interact(ctx, drv, input, disp, rec)
	}()

	waitFor(t, tw, "cycles=0")

	// unrecognised keys are ignored
	_, err = keys.Write([]byte("ks"))
	test.DemandSuccess(t, err)
	waitFor(t, tw, "cycles=1")

	_, err = keys.Write([]byte("s"))
	test.DemandSuccess(t, err)
	waitFor(t, tw, "cycles=2")

	// run the demo to the end
	_, err = keys.Write([]byte("r"))
	test.DemandSuccess(t, err)
	waitFor(t, tw, fmt.Sprintf("cycles=%d", 256*8))

	_, err = keys.Write([]byte("x"))
	test.DemandSuccess(t, err)

	_, err = keys.Write([]byte("q"))
	test.DemandSuccess(t, err)

	select {
	case err := <-done:
		test.ExpectSuccess(t, err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for Interact() to return")
	}
	keys.Close()

	cancel()
	test.ExpectSuccess(t, <-loopDone)

	test.ExpectEquality(t, rec.String(), "Step Step Run Reset")
}

func TestInteractEOF(t *testing.T) {
	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	drv, err := driver.NewDriver(tab, programloader.MustDemo())
	test.DemandSuccess(t, err)

	disp := &terminal.Display{Output: io.Discard}
	err = terminal.Interact(context.Background(), drv, strings.NewReader(""), disp, nil)
	test.ExpectSuccess(t, err)
}
