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


package modalflag_test

import (
	"testing"
	"time"

	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
	"github.com/ducklingscorp/sixtyfive/modalflag"
	"github.com/ducklingscorp/sixtyfive/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-trace", "1", "2"})
	trace := md.AddBool("trace", false, "log every instruction")
	test.ExpectFailure(t, *trace)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *trace)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-poll", "5ms", "script", "-timeout", "1s", "prog.lua"})
	md.AddSubModes("run", "trace", "script")
	poll := md.AddDuration("poll", time.Millisecond, "poll interval")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "SCRIPT")
	test.ExpectEquality(t, *poll, 5*time.Millisecond)
	test.ExpectEquality(t, md.GetArg(0), "-timeout")

	md.NewMode()
	timeout := md.AddDuration("timeout", 0, "maximum time")
	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *timeout, time.Second)
	test.ExpectEquality(t, md.GetArg(0), "prog.lua")
	test.ExpectEquality(t, md.Path(), "SCRIPT")
	test.ExpectEquality(t, md.Summary(), "timeout=1s")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"demo.hex"})
	md.AddSubModes("RUN", "DISASM")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "demo.hex")

	// nested mode with no arguments remaining
	md.NewArgs([]string{"disasm"})
	md.AddSubModes("RUN", "DISASM")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	md.NewMode()
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Path(), "DISASM")
	test.ExpectEquality(t, len(md.RemainingArgs()), 0)
}

func TestAddress(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-origin", "$0700"})
	origin := md.AddAddress("origin", 0x0600, "load address")
	test.ExpectEquality(t, *origin, address.Address(0x0600))

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *origin, address.Address(0x0700))

	md.NewArgs([]string{"-origin", "nowhere"})
	md.AddAddress("origin", 0x0600, "load address")
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs([]string{"-nosuchflag"})
	md.AddSubModes("RUN")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"), tw.String())
}

func TestHelpFlags(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("trace", true, "log every instruction")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -trace\n" +
		"    	log every instruction (default true)\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("run", "trace", "script")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: RUN, TRACE, SCRIPT\n" +
		"    default: RUN\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.CompareWriter{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("trace", true, "log every instruction")
	md.AddSubModes("A", "B")
	md.AdditionalHelp("more")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -trace\n" +
		"    	log every instruction (default true)\n" +
		"\n" +
		"  available sub-modes: A, B\n" +
		"    default: A\n" +
		"\n" +
		"more\n"

	test.ExpectSuccess(t, tw.Compare(expectedHelp), tw.String())
}
