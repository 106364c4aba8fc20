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


package script_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/driver"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/instructions"
	"github.com/ducklingscorp/sixtyfive/programloader"
	"github.com/ducklingscorp/sixtyfive/script"
	"github.com/ducklingscorp/sixtyfive/test"
)

// start a driver running the demo program. the driver loop ends when the
// test ends.
func start(t *testing.T) *driver.Driver {
	t.Helper()

	tab, err := instructions.NewTable()
	test.DemandSuccess(t, err)

	drv, err := driver.NewDriver(tab, programloader.MustDemo())
	test.DemandSuccess(t, err)
	drv.PollInterval = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- drv.Loop(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		test.ExpectSuccess(t, <-done)
	})

	return drv
}

func runScript(t *testing.T, src string) (string, error) {
	t.Helper()

	tw := &test.CompareWriter{}
	scr := script.NewScript(start(t), tw)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := scr.RunString(ctx, src)
	return tw.String(), err
}

func TestStep(t *testing.T) {
	out, err := runScript(t, `
		assert(cycles() == 0)
		assert(step() == nil)
		assert(cycles() == 1)
		local r = registers()
		assert(r.pc == 0x0602)
		assert(r.a == 0)
		assert(r.sr == 0x22)
		assert(step(3) == nil)
		print(registers().pc, peek(0x10))
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "1545\t1\n")
}

func TestRunToBreak(t *testing.T) {
	out, err := runScript(t, `
		local failure = run()
		assert(failure ~= nil)
		print(failure)
		assert(cycles() == 2048)
		assert(registers().pc == 0x0613)

		-- the framebuffer has been filled
		local fb = range(0x0200, 0x0300)
		assert(#fb == 256)
		for i = 1, 255 do
			assert(fb[i] == i)
		end
		assert(fb[256] == 0)

		-- the CPU stays halted until it is reset
		assert(step() ~= nil)
		reset()
		assert(cycles() == 0)
		assert(peek(0x0200) == 0)
		assert(step() == nil)
	`)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "break"), out)
}

func TestRunFor(t *testing.T) {
	_, err := runScript(t, `
		local failure = run(20)
		stop()
		local c = cycles()
		assert(c > 0)
		assert(c == cycles())
		assert(flags() == registers().sr)
	`)
	test.ExpectSuccess(t, err)
}

func TestArgumentErrors(t *testing.T) {
	_, err := runScript(t, `peek(0x10000)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	_, err = runScript(t, `range(0x0300, 0x0200)`)
	test.ExpectFailure(t, err)

	_, err = runScript(t, `step(0)`)
	test.ExpectFailure(t, err)

	_, err = runScript(t, `run(-1)`)
	test.ExpectFailure(t, err)

	_, err = runScript(t, `assert(false)`)
	test.ExpectFailure(t, err)

	// errors in the Lua source are reported
	_, err = runScript(t, `this is not lua`)
	test.ExpectFailure(t, err)
}

func TestRunFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("step()\nprint(cycles())\n"), 0644))

	tw := &test.CompareWriter{}
	scr := script.NewScript(start(t), tw)
	test.ExpectSuccess(t, scr.RunFile(context.Background(), fn))
	test.ExpectEquality(t, tw.String(), "1\n")

	err := scr.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestCancel(t *testing.T) {
	tw := &test.CompareWriter{}
	scr := script.NewScript(start(t), tw)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// the demo program only runs for a short time so the loop makes sure the
	// script is still running when the context is done
	err := scr.RunString(ctx, `
		while true do
			reset()
			step()
		end
	`)
	test.ExpectFailure(t, err)
}
