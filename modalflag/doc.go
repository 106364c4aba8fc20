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


// Package modalflag wraps the flag package in the standard library. It adds
// program modes, each with its own set of flags.
//
// Unlike flag.FlagSet, the arguments are given with NewArgs() and Parse() is
// called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TRACE", "SCRIPT", "DISASM")
//	trace := md.AddBool("trace", false, "log every instruction")
//	p, err := md.Parse()
//
// After Parse() the selected mode is available with Mode(). If the first
// argument after the flags is not a recognised mode then the first of the
// sub-modes is selected. Mode names are not case sensitive.
//
// Modes can be nested. Calling NewMode() after a successful Parse() starts a
// new set of flags and sub-modes which are parsed from the arguments that
// remain:
//
//	switch md.Mode() {
//	case "SCRIPT":
//		md.NewMode()
//		timeout := md.AddDuration("timeout", 0, "maximum time for script")
//		p, err := md.Parse()
//		...
//		runScript(md.GetArg(0), *timeout)
//	}
//
// The Path() function returns the series of modes that have been selected,
// separated by a slash. For example "SCRIPT" or "RUN/DEMO".
//
// Asking for help with -help or -h results in a ParseHelp result. The help
// message is written to the Output writer and includes the list of sub-modes
// and any text given to AdditionalHelp().
package modalflag
