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


package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/instructions"
	"github.com/ducklingscorp/sixtyfive/hardware/memory"
	"github.com/ducklingscorp/sixtyfive/logger"
)

// the number of instructions executed between checks of the time. checking
// the time on every instruction is a significant part of the measurement
const brake = 1000

// Result of a performance check.
type Result struct {
	Instructions int
	Restarts     int
	Duration     time.Duration
}

// MIPS returns the number of millions of instructions executed per second.
func (r Result) MIPS() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds() / 1000000
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f MIPS (%d instructions in %.2f seconds, %d restarts)",
		r.MIPS(), r.Instructions, r.Duration.Seconds(), r.Restarts)
}

// Check the performance of the CPU emulation by running the program in the
// memory image for the duration. Every time the program halts the CPU is
// restarted and the image is reloaded. The result is written to output.
func Check(ctx context.Context, output io.Writer, profile Profile, tab *instructions.Table, img []uint8, duration time.Duration) (Result, error) {
	var res Result

	mem := memory.NewMemory()
	err := mem.Load(img)
	if err != nil {
		return res, curated.Errorf("performance: %v", err)
	}
	mc := cpu.NewCPU(tab, mem)

	runner := func() error {
		start := time.Now()
		deadline := start.Add(duration)

		defer func() {
			res.Duration = time.Since(start)
		}()

		for n := 0; ; n++ {
			if n >= brake {
				n = 0
				if time.Now().After(deadline) {
					return nil
				}
				if ctx.Err() != nil {
					return nil
				}
			}

			err := mc.Step()
			if err != nil {
				if !curated.Is(err, cpu.Break) {
					return curated.Errorf("performance: %v", err)
				}

				res.Instructions += mc.Cycles
				res.Restarts++
				mc.Restart()
				err = mem.Load(img)
				if err != nil {
					return curated.Errorf("performance: %v", err)
				}
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	res.Instructions += mc.Cycles
	if err != nil {
		return res, err
	}

	logger.Logf(logger.Allow, "performance", "%v", res)
	fmt.Fprintln(output, res)

	return res, nil
}
