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


// Package statsview runs a local HTTP server showing runtime statistics of
// the emulator process, using github.com/go-echarts/statsview. It is useful
// for watching allocations and goroutines while the driver is running.
//
// The server is only included when the program is built with the statsview
// build tag:
//
//	go build -tags statsview
//
// After launch the graphs are viewable at:
//
//	localhost:16502/debug/statsview
//
// And the standard Go pprof pages at:
//
//	localhost:16502/debug/pprof/
package statsview
