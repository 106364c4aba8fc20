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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ducklingscorp/sixtyfive/programloader"
	"github.com/ducklingscorp/sixtyfive/terminal/easyterm"
	"github.com/ducklingscorp/sixtyfive/test"
)

func TestDisasm(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"disasm", "-length", "20"}, tw), 0)

	lines := strings.Split(tw.String(), "\n")
	test.ExpectEquality(t, lines[0], "$0600  a5 10     LDA $10")
	test.ExpectEquality(t, lines[1], "$0602  69 01     ADC #$01")
	test.ExpectEquality(t, lines[3], "$0606  8d 00 02  STA $0200")
	test.ExpectEquality(t, lines[7], "$0611  d0 ef     BNE $0600")
	test.ExpectEquality(t, lines[8], "$0613  00        BRK")

	// an explicit start address of zero is not the same as no start address
	for _, start := range []string{"0", "$0000"} {
		tw.Clear()
		test.ExpectEquality(t, launch(context.Background(), []string{"disasm", "-start", start, "-length", "2"}, tw), 0)
		test.ExpectEquality(t, tw.String(), "$0000  00        BRK\n$0001  00        BRK\n", start)
	}
}

func TestTrace(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"trace"}, tw), 0)
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "halted after 2048 instructions\n"))

	// the trace is the same every time
	first := tw.String()
	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"trace"}, tw), 0)
	test.ExpectEquality(t, tw.String(), first)
	test.ExpectSuccess(t, strings.Contains(first, "framebuffer digest: "))

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"trace", "-limit", "3"}, tw), 0)
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "stopped after 3 instructions\n"))
}

func TestProgramFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.bin")
	test.DemandSuccess(t, os.WriteFile(fn, []uint8{0xa9, 0x05, 0x00}, 0644))

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"disasm", "-origin", "$0700", "-length", "3", fn}, tw), 0)
	test.ExpectEquality(t, tw.String(), "$0700  a9 05     LDA #$05\n$0702  00        BRK\n")

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"trace", "-origin", "$0700", fn}, tw), 0)
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "halted after 1 instructions\n"))

	// wrong hash
	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"trace", "-hash", "1234", fn}, tw), 20)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "* error in TRACE mode"))
}

func TestScript(t *testing.T) {
	dir := t.TempDir()

	fn := filepath.Join(dir, "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("run()\nprint(cycles(), peek(0x0200))\n"), 0644))

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"script", fn}, tw), 0)
	test.ExpectEquality(t, tw.String(), "2048\t1\n")

	// the program can be given after the script
	img := filepath.Join(dir, "demo.hex")
	test.DemandSuccess(t, os.WriteFile(img, programloader.MustDemo(), 0644))

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"script", fn, img}, tw), 0)
	test.ExpectEquality(t, tw.String(), "2048\t1\n")

	// a script is required
	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"script"}, tw), 20)
}

func TestRunHeadless(t *testing.T) {
	if easyterm.IsTerminal(os.Stdin) {
		t.Skip("stdin is a terminal")
	}

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"run", "-poll", "0"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "cycles=2048"), tw.String())
	test.ExpectSuccess(t, strings.Contains(tw.String(), "cpu: break at $0613"), tw.String())
}

func TestPerformance(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"performance", "-duration", "20ms"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), " MIPS ("), tw.String())

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"performance", "-profile", "disk"}, tw), 20)
}

func TestArguments(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-nosuchflag"}, tw), 10)

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"disasm", "a", "b"}, tw), 20)

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "available sub-modes: RUN, TRACE, SCRIPT, DISASM, PERFORMANCE, VERSION"))

	tw.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"version"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Sixtyfive "))
}
