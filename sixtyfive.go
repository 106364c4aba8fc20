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


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/sync/errgroup"

	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/digest"
	"github.com/ducklingscorp/sixtyfive/driver"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/instructions"
	"github.com/ducklingscorp/sixtyfive/hardware/memory"
	"github.com/ducklingscorp/sixtyfive/hardware/memory/memorymap"
	"github.com/ducklingscorp/sixtyfive/logger"
	"github.com/ducklingscorp/sixtyfive/modalflag"
	"github.com/ducklingscorp/sixtyfive/performance"
	"github.com/ducklingscorp/sixtyfive/programloader"
	"github.com/ducklingscorp/sixtyfive/script"
	"github.com/ducklingscorp/sixtyfive/statsview"
	"github.com/ducklingscorp/sixtyfive/terminal"
	"github.com/ducklingscorp/sixtyfive/terminal/easyterm"
	"github.com/ducklingscorp/sixtyfive/version"
)

const programHelp = `The program argument can be a complete 64KB memory image (.hex or .img),
a PRG file with a two byte load address (.prg) or a raw binary (.bin) that
is loaded at the address given by -origin. Programs can also be loaded from
http:// and https:// URLs.

Without a program argument the built-in demo program is used.`

func main() {
	// ctrl-c cancels the context. the modes end as soon as possible
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the arguments and runs the selected mode. the return value
// is the status code for os.Exit().
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "TRACE", "SCRIPT", "DISASM", "PERFORMANCE", "VERSION")

	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(output, false)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md, output)
	case "TRACE":
		err = trace(md, output)
	case "SCRIPT":
		err = runScript(ctx, md, output)
	case "DISASM":
		err = disasm(md, output)
	case "PERFORMANCE":
		err = perform(ctx, md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// programFlags are the flags common to all modes that load a program.
type programFlags struct {
	origin *address.Address
	hash   *string
}

func addProgramFlags(md *modalflag.Modes) programFlags {
	md.AdditionalHelp(programHelp)
	return programFlags{
		origin: md.AddAddress("origin", programloader.DefaultOrigin, "load address for .bin files"),
		hash:   md.AddString("hash", "", "expected SHA1 hash of the program file"),
	}
}

// loadProgram returns the memory image for the program named by the
// numbered argument. if there is no such argument the demo program is used.
func loadProgram(md *modalflag.Modes, pf programFlags, arg int) (programloader.Loader, []uint8, error) {
	var pl programloader.Loader

	switch len(md.RemainingArgs()) - arg {
	case 0:
		pl = programloader.DemoLoader()
	case 1:
		pl = programloader.NewLoader(md.GetArg(arg))
		if pl.Format == programloader.FormatBinary {
			pl.Origin = *pf.origin
		}
		pl.Hash = *pf.hash
		err := pl.Load()
		if err != nil {
			return pl, nil, err
		}
	default:
		return pl, nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	img, err := pl.Image()
	if err != nil {
		return pl, nil, err
	}

	logger.Logf(logger.Allow, "sixtyfive", "loaded %s (%s) sha1 %s", pl.ShortName(), pl.Format, pl.Hash)

	return pl, img, nil
}

func run(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pf := addProgramFlags(md)
	poll := md.AddDuration("poll", driver.DefaultPollInterval, "time to wait for a request before every instruction")
	traceInstructions := md.AddBool("trace", false, "log every instruction")
	record := md.AddString("record", "", "record key presses as a Lua script")
	viz := md.AddString("memviz", "", "write graphviz description of final CPU state to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, img, err := loadProgram(md, pf, 0)
	if err != nil {
		return err
	}

	drv, err := newDriver(img, *poll)
	if err != nil {
		return err
	}
	drv.Trace(*traceInstructions)

	var rec *script.Scribe
	if *record != "" {
		f, err := os.Create(*record)
		if err != nil {
			return curated.Errorf("sixtyfive: %v", err)
		}
		defer f.Close()
		rec = script.NewScribe(f)
		defer rec.Close()
	}

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		return drv.Loop(ctx)
	})

	g.Go(func() error {
		// the driver loop ends when the front end ends
		defer cancel()

		if !easyterm.IsTerminal(os.Stdin) {
			return headless(ctx, drv, output)
		}

		term, err := terminal.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}

		// a nil *Scribe must not be passed as a non-nil Recorder
		if rec == nil {
			return term.Run(ctx, drv, os.Stdin, nil)
		}
		return term.Run(ctx, drv, os.Stdin, rec)
	})

	err = g.Wait()
	if err != nil {
		return err
	}

	if *viz != "" {
		err = writeMemviz(*viz, drv.Snapshot())
		if err != nil {
			return err
		}
	}

	return nil
}

// headless runs the program until the CPU halts or faults and then draws
// the final state without ANSI control codes.
func headless(ctx context.Context, drv *driver.Driver, output io.Writer) error {
	select {
	case drv.Commands() <- driver.RunRequest:
	case <-ctx.Done():
		return nil
	}

	disp := &terminal.Display{Output: output}

	select {
	case err := <-drv.Failures():
		disp.Failure(err)
	case <-ctx.Done():
		// the driver loop will not be running to receive a stop request
	}

	return disp.Draw(drv.Snapshot())
}

func newDriver(img []uint8, poll time.Duration) (*driver.Driver, error) {
	tab, err := instructions.NewTable()
	if err != nil {
		return nil, err
	}

	drv, err := driver.NewDriver(tab, img)
	if err != nil {
		return nil, err
	}
	drv.PollInterval = poll

	return drv, nil
}

func writeMemviz(filename string, snapshot driver.Snapshot) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer f.Close()

	memviz.Map(f, &snapshot)

	return nil
}

// trace executes the program without the driver and prints every instruction
// and the state of the registers after it.
func trace(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pf := addProgramFlags(md)
	limit := md.AddInt("limit", 1000000, "maximum number of instructions to execute")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, img, err := loadProgram(md, pf, 0)
	if err != nil {
		return err
	}

	tab, err := instructions.NewTable()
	if err != nil {
		return err
	}

	mem := memory.NewMemory()
	err = mem.Load(img)
	if err != nil {
		return err
	}
	mc := cpu.NewCPU(tab, mem)

	// fingerprint of the framebuffer after every instruction
	dig := digest.NewFramebuffer()

	for i := 0; i < *limit; i++ {
		err = mc.Step()
		if err != nil {
			if curated.Is(err, cpu.Break) {
				fmt.Fprintln(output, mc.LastResult)
				fmt.Fprintf(output, "framebuffer digest: %s\n", dig.Hash())
				fmt.Fprintf(output, "halted after %d instructions\n", mc.Cycles)
				return nil
			}
			return err
		}

		if err := mc.LastResult.IsValid(); err != nil {
			return err
		}

		fb, err := mem.Range(memorymap.OriginFramebuffer.Int(), memorymap.MemtopFramebuffer.Int()+1)
		if err != nil {
			return err
		}
		dig.Update(fb)

		fmt.Fprintf(output, "%-32s %s\n", mc.LastResult, mc.Regs)
	}

	fmt.Fprintf(output, "framebuffer digest: %s\n", dig.Hash())
	fmt.Fprintf(output, "stopped after %d instructions\n", *limit)

	return nil
}

func runScript(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pf := addProgramFlags(md)
	poll := md.AddDuration("poll", 0, "time to wait for a request before every instruction")
	timeout := md.AddDuration("timeout", 0, "maximum running time of the script (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("lua script required for %s mode", md)
	}

	_, img, err := loadProgram(md, pf, 1)
	if err != nil {
		return err
	}

	drv, err := newDriver(img, *poll)
	if err != nil {
		return err
	}

	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		return drv.Loop(ctx)
	})

	g.Go(func() error {
		defer cancel()
		return script.NewScript(drv, output).RunFile(ctx, md.GetArg(0))
	})

	return g.Wait()
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pf := addProgramFlags(md)
	start := md.AddAddress("start", 0, "first address to disassemble (default: the reset address)")
	length := md.AddInt("length", 32, "number of bytes to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, img, err := loadProgram(md, pf, 0)
	if err != nil {
		return err
	}

	mem := memory.NewMemory()
	err = mem.Load(img)
	if err != nil {
		return err
	}

	tab, err := instructions.NewTable()
	if err != nil {
		return err
	}

	a := address.FromBytes(mem.Read(memorymap.ResetVector), mem.Read(memorymap.ResetVector+1))
	md.Visit(func(flag string) {
		if flag == "start" {
			a = *start
		}
	})

	end := a.Int() + *length
	if end > memory.Size {
		end = memory.Size
	}

	for _, l := range cpu.DisassembleRange(tab, mem, a, end) {
		fmt.Fprintln(output, l)
	}

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	pf := addProgramFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	_, img, err := loadProgram(md, pf, 0)
	if err != nil {
		return err
	}

	tab, err := instructions.NewTable()
	if err != nil {
		return err
	}

	_, err = performance.Check(ctx, output, prf, tab, img, *duration)
	return err
}
