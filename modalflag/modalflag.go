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


package modalflag

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments.
type Modes struct {
	// where to print help messages. defaults to os.Stdout
	Output io.Writer

	// the flagset for the current mode. a new flagset is created for every
	// call to NewMode()
	flags *flag.FlagSet

	// the full argument list and the index of the first argument that has not
	// yet been consumed by a mode selection
	args    []string
	argsIdx int

	// sub-modes for the current mode. the first entry is the default
	subModes []string

	// modes selected by previous calls to Parse()
	path []string

	additionalHelp string
	parsed         bool
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode. Empty string if no mode has
// been selected.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs resets the argument list and starts a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.path = md.path[:0]
	md.parsed = false
	md.NewMode()
}

// NewMode starts a new set of flags and sub-modes. Arguments that have not
// been consumed by previous calls to Parse() are used by the next call to
// Parse().
func (md *Modes) NewMode() {
	if md.flags != nil && md.parsed {
		md.argsIdx = len(md.args) - md.flags.NArg()
		if md.selected() {
			md.argsIdx++
		}
	}

	md.subModes = md.subModes[:0]
	md.additionalHelp = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
}

// selected returns true if the first remaining argument named the current mode.
func (md *Modes) selected() bool {
	return len(md.subModes) > 0 && md.flags.NArg() > 0 &&
		strings.ToUpper(md.flags.Arg(0)) == md.Mode()
}

// AdditionalHelp is added to the help message of the current mode.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns false if Parse() has not been called since the last call to
// NewMode().
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added then
	// the selected mode is returned by Mode()
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

func (p ParseResult) String() string {
	switch p {
	case ParseContinue:
		return "continue"
	case ParseHelp:
		return "help"
	case ParseError:
		return "error"
	}
	return "unknown parse result"
}

// Parse the arguments for the current mode.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	output := md.Output
	if output == nil {
		output = os.Stdout
	}

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				break // for loop
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that follow the flags and the mode
// selector, if any.
func (md *Modes) RemainingArgs() []string {
	if md.selected() {
		return md.flags.Args()[1:]
	}
	return md.flags.Args()
}

// GetArg returns the numbered argument from the list returned by
// RemainingArgs(). Empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	args := md.RemainingArgs()
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}

// AddSubModes adds to the list of modes that can be selected. The first
// sub-mode added is the default.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool adds a boolean flag to the current mode.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration adds a time.Duration flag to the current mode.
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt adds an integer flag to the current mode.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString adds a string flag to the current mode.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAddress adds a flag to the current mode that takes a value in the
// formats accepted by address.Parse().
func (md *Modes) AddAddress(name string, value address.Address, usage string) *address.Address {
	v := &addressValue{a: value}
	md.flags.Var(v, name, usage)
	return &v.a
}

type addressValue struct {
	a address.Address
}

func (v *addressValue) String() string {
	return v.a.String()
}

func (v *addressValue) Set(s string) error {
	a, err := address.Parse(s)
	if err != nil {
		return err
	}
	v.a = a
	return nil
}

// Visit calls the function for every flag that has been set by Parse().
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}

// Usage returns a short description of the flag, as given to the Add*()
// function. Empty string if the flag does not exist.
func (md *Modes) Usage(name string) string {
	if f := md.flags.Lookup(name); f != nil {
		return f.Usage
	}
	return ""
}

// Summary returns a one line summary of the flags set by Parse().
func (md *Modes) Summary() string {
	var s []string
	md.flags.Visit(func(f *flag.Flag) {
		s = append(s, fmt.Sprintf("%s=%s", f.Name, f.Value))
	})
	return strings.Join(s, " ")
}
