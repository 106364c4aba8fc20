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
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/driver"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
	"github.com/ducklingscorp/sixtyfive/hardware/memory"
	"github.com/ducklingscorp/sixtyfive/logger"
)

// Sentinal errors.
const (
	ScriptError = "script: %v"
)

// Script is a Lua interpreter with functions that control a driver. The
// driver's Loop() must be running in another goroutine. The script must be
// the only reader of the driver's Data() and Failures() channels.
type Script struct {
	drv    *driver.Driver
	output io.Writer

	// the context of the script currently running
	ctx context.Context
}

// NewScript is the preferred method of initialisation for the Script type.
// The output of the Lua print() function is written to output.
func NewScript(drv *driver.Driver, output io.Writer) *Script {
	return &Script{
		drv:    drv,
		output: output,
	}
}

// RunString runs the Lua source code.
func (scr *Script) RunString(ctx context.Context, src string) error {
	return scr.run(ctx, func(L *lua.LState) error {
		return L.DoString(src)
	})
}

// RunFile runs the Lua script in the named file.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return scr.run(ctx, func(L *lua.LState) error {
		return L.DoFile(filename)
	})
}

func (scr *Script) run(ctx context.Context, do func(L *lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()

	scr.ctx = ctx
	L.SetContext(ctx)

	L.SetGlobal("print", L.NewFunction(scr.print))
	L.SetGlobal("step", L.NewFunction(scr.step))
	L.SetGlobal("run", L.NewFunction(scr.runFor))
	L.SetGlobal("stop", L.NewFunction(scr.stop))
	L.SetGlobal("reset", L.NewFunction(scr.reset))
	L.SetGlobal("peek", L.NewFunction(scr.peek))
	L.SetGlobal("range", L.NewFunction(scr.memRange))
	L.SetGlobal("flags", L.NewFunction(scr.flags))
	L.SetGlobal("registers", L.NewFunction(scr.registers))
	L.SetGlobal("cycles", L.NewFunction(scr.cycles))
	L.SetGlobal("trace", L.NewFunction(scr.trace))

	err := do(L)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	return nil
}

// send request to driver. raises a Lua error if the context is done.
func (scr *Script) send(L *lua.LState, req driver.Request) {
	logger.Logf(logger.Allow, "script", "%v", req)
	select {
	case scr.drv.Commands() <- req:
	case <-scr.ctx.Done():
		L.RaiseError("%v", scr.ctx.Err())
	}
}

// receive data from the driver in response to a Get request. the request
// must be valid because the driver sends no data for a failed request.
func (scr *Script) receive(L *lua.LState) []uint8 {
	select {
	case data := <-scr.drv.Data():
		return data
	case <-scr.ctx.Done():
		L.RaiseError("%v", scr.ctx.Err())
	}
	return nil
}

// synchronise waits for all previous requests to be processed. requests are
// processed in order so once the reply to a Get request has been received
// the previous requests have been completed.
func (scr *Script) synchronise(L *lua.LState) {
	scr.send(L, driver.FlagsRequest)
	scr.receive(L)
}

// pushFailure pushes the most recent failure reported by the driver as a
// string. nil is pushed if there is no failure.
func (scr *Script) pushFailure(L *lua.LState) int {
	var failure error

	for done := false; !done; {
		select {
		case err := <-scr.drv.Failures():
			failure = err
		default:
			done = true
		}
	}

	if failure == nil {
		L.Push(lua.LNil)
	} else {
		L.Push(lua.LString(failure.Error()))
	}
	return 1
}

// checkAddress returns the numbered argument as an address.
func checkAddress(L *lua.LState, n int) address.Address {
	a, err := address.FromInt(L.CheckInt(n))
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return a
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	if n < 1 {
		L.ArgError(1, "number of steps must be positive")
	}

	for i := 0; i < n; i++ {
		scr.send(L, driver.StepRequest)
		scr.synchronise(L)

		select {
		case err := <-scr.drv.Failures():
			L.Push(lua.LString(err.Error()))
			return 1
		default:
		}
	}

	L.Push(lua.LNil)
	return 1
}

func (scr *Script) runFor(L *lua.LState) int {
	ms := L.OptInt(1, 0)
	if ms < 0 {
		L.ArgError(1, "duration must not be negative")
	}

	scr.send(L, driver.RunRequest)

	// without a duration the run continues until the driver reports a
	// failure, which will be the CPU halting on a BRK instruction if the
	// program is well behaved
	if ms == 0 {
		select {
		case err := <-scr.drv.Failures():
			L.Push(lua.LString(err.Error()))
		case <-scr.ctx.Done():
			scr.send(L, driver.StopRequest)
			L.RaiseError("%v", scr.ctx.Err())
		}
		scr.synchronise(L)
		return 1
	}

	select {
	case <-time.After(time.Duration(ms) * time.Millisecond):
	case <-scr.ctx.Done():
		scr.send(L, driver.StopRequest)
		L.RaiseError("%v", scr.ctx.Err())
	}

	scr.send(L, driver.StopRequest)
	scr.synchronise(L)

	return scr.pushFailure(L)
}

func (scr *Script) stop(L *lua.LState) int {
	scr.send(L, driver.StopRequest)
	scr.synchronise(L)
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.send(L, driver.ResetRequest)
	scr.synchronise(L)

	// failures from before the reset are no longer interesting
	scr.pushFailure(L)
	L.Pop(1)

	return 0
}

func (scr *Script) peek(L *lua.LState) int {
	a := checkAddress(L, 1)
	scr.send(L, driver.GetValue(a))
	data := scr.receive(L)
	if len(data) != 1 {
		L.RaiseError("peek: unexpected data length (%d)", len(data))
	}
	L.Push(lua.LNumber(data[0]))
	return 1
}

func (scr *Script) memRange(L *lua.LState) int {
	start := L.CheckInt(1)
	end := L.CheckInt(2)
	if start < 0 || end > memory.Size || start > end {
		L.RaiseError(memory.InvalidRange, start, end)
	}
	scr.send(L, driver.GetRange(start, end))
	data := scr.receive(L)

	t := L.CreateTable(len(data), 0)
	for i, v := range data {
		t.RawSetInt(i+1, lua.LNumber(v))
	}
	L.Push(t)
	return 1
}

func (scr *Script) flags(L *lua.LState) int {
	scr.send(L, driver.FlagsRequest)
	data := scr.receive(L)
	if len(data) != 1 {
		L.RaiseError("flags: unexpected data length (%d)", len(data))
	}
	L.Push(lua.LNumber(data[0]))
	return 1
}

func (scr *Script) registers(L *lua.LState) int {
	scr.synchronise(L)
	s := scr.drv.Snapshot()

	t := L.NewTable()
	L.SetField(t, "a", lua.LNumber(s.Regs.A))
	L.SetField(t, "x", lua.LNumber(s.Regs.X))
	L.SetField(t, "y", lua.LNumber(s.Regs.Y))
	L.SetField(t, "pc", lua.LNumber(s.Regs.PC))
	L.SetField(t, "sr", lua.LNumber(s.Regs.Status.Value()))
	L.SetField(t, "cycles", lua.LNumber(s.Cycles))
	L.Push(t)
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	scr.synchronise(L)
	L.Push(lua.LNumber(scr.drv.Snapshot().Cycles))
	return 1
}

func (scr *Script) trace(L *lua.LState) int {
	scr.drv.Trace(L.CheckBool(1))
	return 0
}
