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
	"github.com/ducklingscorp/sixtyfive/hardware/cpu"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/execution"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/registers"
	"github.com/ducklingscorp/sixtyfive/hardware/memory/memorymap"
)

// Snapshot is a copy of the state of the CPU, along with the framebuffer area
// of memory.
type Snapshot struct {
	Regs        registers.Registers
	Cycles      int
	State       cpu.State
	LastResult  execution.Result
	Framebuffer []uint8
	Faulted     bool
}

// take snapshot. the critical section must be locked.
func (d *Driver) snapshot() Snapshot {
	fb, _ := d.mem.Range(memorymap.OriginFramebuffer.Int(), memorymap.MemtopFramebuffer.Int()+1)
	return Snapshot{
		Regs:        d.mc.Regs,
		Cycles:      d.mc.Cycles,
		State:       d.mc.State(),
		LastResult:  d.mc.LastResult,
		Framebuffer: fb,
		Faulted:     d.fault != nil,
	}
}

// Snapshot returns the current state of the CPU. It will wait for the current
// instruction to complete.
func (d *Driver) Snapshot() Snapshot {
	d.crit.Lock()
	defer d.crit.Unlock()
	return d.snapshot()
}

// TrySnapshot returns the current state of the CPU but only if it can do so
// without waiting. The second return value is false if the snapshot could not
// be taken.
func (d *Driver) TrySnapshot() (Snapshot, bool) {
	if !d.crit.TryLock() {
		return Snapshot{}, false
	}
	defer d.crit.Unlock()
	return d.snapshot(), true
}
