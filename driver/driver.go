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
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/instructions"
	"github.com/ducklingscorp/sixtyfive/hardware/memory"
	"github.com/ducklingscorp/sixtyfive/logger"
)

// Sentinal errors.
const (
	EngineFaulted = "driver: cpu has faulted (%v): reset required"
	EnginePanic   = "driver: cpu panicked: %v"
)

// DefaultPollInterval is the time the run loop waits for a new request before
// executing each instruction.
const DefaultPollInterval = time.Millisecond

// the number of failures that can be queued before they are dropped.
const failureQueueLen = 16

// Driver runs the CPU under the control of requests.
type Driver struct {
	// crit protects the CPU and memory
	crit sync.Mutex
	mc   *cpu.CPU
	mem  *memory.Memory

	// the program image that is loaded on Reset
	image []uint8

	// a fatal error from the CPU. Step and Run are refused until Reset
	fault error

	commands chan Request
	data     chan []uint8

	// replies to Get requests waiting to be forwarded to the data channel.
	// the loop never waits for the consumer of the data channel
	repliesCrit  sync.Mutex
	replies      [][]uint8
	repliesReady chan struct{}

	failures chan error
	notify   chan struct{}

	running atomic.Bool

	// PollInterval is the time to wait for a request before every instruction
	// while running. must not be changed after Loop() has started
	PollInterval time.Duration
}

// NewDriver is the preferred method of initialisation for the Driver type. The
// image is loaded into memory immediately and again on every Reset request.
func NewDriver(tab *instructions.Table, image []uint8) (*Driver, error) {
	mem := memory.NewMemory()
	err := mem.Load(image)
	if err != nil {
		return nil, curated.Errorf("driver: %v", err)
	}

	d := &Driver{
		mc:           cpu.NewCPU(tab, mem),
		mem:          mem,
		image:        append([]uint8{}, image...),
		commands:     make(chan Request),
		data:         make(chan []uint8),
		repliesReady: make(chan struct{}, 1),
		failures:     make(chan error, failureQueueLen),
		notify:       make(chan struct{}, 1),
		PollInterval: DefaultPollInterval,
	}

	return d, nil
}

// Commands returns the channel on which requests are sent. Closing the
// channel ends the Loop().
func (d *Driver) Commands() chan<- Request {
	return d.commands
}

// Data returns the channel on which replies to Get requests are delivered.
// Replies are queued in the order the requests were received and are
// delivered while Loop() is running. Replies that have not been read when
// Loop() returns are discarded.
func (d *Driver) Data() <-chan []uint8 {
	return d.data
}

// Failures returns the channel on which CPU errors are delivered. If the
// channel is not read, failures are still logged but are otherwise dropped.
func (d *Driver) Failures() <-chan error {
	return d.failures
}

// Notify returns a channel that receives a value after each request has been
// processed and after every instruction while running. Notifications are
// merged if the channel is not read quickly enough.
func (d *Driver) Notify() <-chan struct{} {
	return d.notify
}

// IsRunning returns true if the driver is processing a Run request.
func (d *Driver) IsRunning() bool {
	return d.running.Load()
}

// Trace sets whether every instruction executed is logged.
func (d *Driver) Trace(trace bool) {
	d.crit.Lock()
	defer d.crit.Unlock()
	d.mc.Trace = logger.PermissionFlag(trace)
}

// Loop processes requests until the command channel is closed or the context
// is done. CPU errors do not end the loop. A non-nil error is only returned
// if the CPU panics.
func (d *Driver) Loop(ctx context.Context) error {
	fwdCtx, cancel := context.WithCancel(ctx)
	fwdDone := make(chan struct{})
	go func() {
		d.forward(fwdCtx)
		close(fwdDone)
	}()
	defer func() {
		cancel()
		<-fwdDone
	}()

	var pending *Request

	for {
		var req Request

		if pending != nil {
			req = *pending
			pending = nil
		} else {
			var ok bool
			select {
			case <-ctx.Done():
				return nil
			case req, ok = <-d.commands:
				if !ok {
					return nil
				}
			}
		}

		var err error
		var closed bool

		switch req.Cmd {
		case Step:
			err = d.step()

		case Run:
			pending, closed, err = d.run(ctx)
			if closed {
				return err
			}

		case Stop:
			// stop is only meaningful while running

		case Reset:
			err = d.reset()

		case Get:
			err = d.get(req)

		default:
			logger.Logf(logger.Allow, "driver", "unknown request: %v", req)
		}

		if curated.Is(err, EnginePanic) {
			return err
		}

		d.signal()
	}
}

// run executes instructions until a request arrives or there is an error.
// the request that ended the run is returned unless it was a Stop request.
// the closed return value is true if the command channel has been closed or
// the context is done.
func (d *Driver) run(ctx context.Context) (*Request, bool, error) {
	d.running.Store(true)
	defer d.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			return nil, true, nil
		case req, ok := <-d.commands:
			if !ok {
				return nil, true, nil
			}
			if req.Cmd == Stop {
				return nil, false, nil
			}
			return &req, false, nil
		case <-time.After(d.PollInterval):
		}

		err := d.step()
		if err != nil {
			if curated.Is(err, EnginePanic) {
				return nil, true, err
			}
			return nil, false, nil
		}

		d.signal()
	}
}

// step executes a single instruction. errors are reported by step() and
// returned for the benefit of run().
func (d *Driver) step() (err error) {
	d.crit.Lock()
	defer d.crit.Unlock()

	// the mutex is released even if the CPU panics but the CPU can't be
	// trusted afterwards
	defer func() {
		if r := recover(); r != nil {
			err = curated.Errorf(EnginePanic, r)
			d.fault = err
			logger.Log(logger.Allow, "driver", err)
		}
	}()

	if d.fault != nil {
		err = curated.Errorf(EngineFaulted, d.fault)
		d.report(err)
		return err
	}

	err = d.mc.Step()
	if err != nil {
		if cpu.IsFatal(err) {
			d.fault = err
		}
		d.report(err)
	}

	return err
}

func (d *Driver) reset() error {
	d.crit.Lock()
	defer d.crit.Unlock()

	d.fault = nil
	d.mc.Restart()
	err := d.mem.Load(d.image)
	if err != nil {
		err = curated.Errorf("driver: %v", err)
		d.report(err)
	}

	return err
}

func (d *Driver) get(req Request) error {
	var data []uint8

	// the mutex is released before the reply is queued
	err := func() error {
		d.crit.Lock()
		defer d.crit.Unlock()

		switch req.Kind {
		case Range:
			var err error
			data, err = d.mem.Range(req.Start, req.End)
			if err != nil {
				return curated.Errorf("driver: %v", err)
			}
		case Value:
			data = []uint8{d.mem.Read(req.Address)}
		case Flags:
			data = []uint8{d.mc.Regs.Status.Value()}
		default:
			return curated.Errorf("driver: unknown get request (%v)", req.Kind)
		}

		return nil
	}()

	if err != nil {
		d.report(err)
		return err
	}

	d.queueReply(data)

	return nil
}

// queueReply adds data to the end of the reply queue and wakes the forwarder.
func (d *Driver) queueReply(data []uint8) {
	d.repliesCrit.Lock()
	d.replies = append(d.replies, data)
	d.repliesCrit.Unlock()

	select {
	case d.repliesReady <- struct{}{}:
	default:
	}
}

// forward sends queued replies to the data channel in order until the context
// is done.
func (d *Driver) forward(ctx context.Context) {
	for {
		d.repliesCrit.Lock()
		if len(d.replies) == 0 {
			d.repliesCrit.Unlock()
			select {
			case <-d.repliesReady:
				continue
			case <-ctx.Done():
				return
			}
		}
		data := d.replies[0]
		d.replies[0] = nil
		d.replies = d.replies[1:]
		d.repliesCrit.Unlock()

		select {
		case d.data <- data:
		case <-ctx.Done():
			return
		}
	}
}

// report error to the log and to the failures channel.
func (d *Driver) report(err error) {
	logger.Log(logger.Allow, "driver", err)
	select {
	case d.failures <- err:
	default:
	}
}

func (d *Driver) signal() {
	select {
	case d.notify <- struct{}{}:
	default:
	}
}

func (d *Driver) String() string {
	d.crit.Lock()
	defer d.crit.Unlock()
	return fmt.Sprintf("%s [%v]", d.mc, d.mc.State())
}
