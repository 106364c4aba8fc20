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

package driver

import (
	"fmt"

	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
)

// Command is the type of request sent to the driver.
type Command int

// List of valid commands.
const (
	Step Command = iota
	Run
	Stop
	Reset
	Get
)

func (c Command) String() string {
	switch c {
	case Step:
		return "Step"
	case Run:
		return "Run"
	case Stop:
		return "Stop"
	case Reset:
		return "Reset"
	case Get:
		return "Get"
	}
	return "unknown command"
}

// GetKind says what data a Get request is asking for.
type GetKind int

// List of valid Get requests.
const (
	// a copy of memory from Start up to but not including End
	Range GetKind = iota

	// a single byte of memory at Address
	Value

	// the value of the status register
	Flags
)

func (g GetKind) String() string {
	switch g {
	case Range:
		return "Range"
	case Value:
		return "Value"
	case Flags:
		return "Flags"
	}
	return "unknown get"
}

// Request is sent on the command channel.
type Request struct {
	Cmd Command

	// the following fields are only used by the Get command
	Kind    GetKind
	Start   int
	End     int
	Address address.Address
}

func (r Request) String() string {
	if r.Cmd != Get {
		return r.Cmd.String()
	}
	switch r.Kind {
	case Range:
		return fmt.Sprintf("Get Range(%#04x, %#04x)", r.Start, r.End)
	case Value:
		return fmt.Sprintf("Get Value(%v)", r.Address)
	}
	return fmt.Sprintf("Get %v", r.Kind)
}

// Requests that need no argument.
var (
	StepRequest  = Request{Cmd: Step}
	RunRequest   = Request{Cmd: Run}
	StopRequest  = Request{Cmd: Stop}
	ResetRequest = Request{Cmd: Reset}
	FlagsRequest = Request{Cmd: Get, Kind: Flags}
)

// GetRange creates a request for a copy of memory from start up to but not
// including end.
func GetRange(start int, end int) Request {
	return Request{Cmd: Get, Kind: Range, Start: start, End: end}
}

// GetValue creates a request for a single byte of memory.
func GetValue(a address.Address) Request {
	return Request{Cmd: Get, Kind: Value, Address: a}
}
