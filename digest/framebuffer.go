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


package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/ducklingscorp/sixtyfive/hardware/memory/memorymap"
)

// Framebuffer is a chained fingerprint of the framebuffer. Every call to
// Update() hashes the framebuffer along with the previous fingerprint so the
// final hash depends on every update and not just the final state.
type Framebuffer struct {
	digest [sha1.Size]byte

	// the previous digest followed by the framebuffer
	data []byte

	updates int
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{
		data: make([]byte, sha1.Size+memorymap.FramebufferWidth*memorymap.FramebufferHeight),
	}
}

// Hash implements digest.Digest interface.
func (dig Framebuffer) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Framebuffer) ResetDigest() {
	clear(dig.digest[:])
	dig.updates = 0
}

// Updates returns the number of calls to Update() since the last reset.
func (dig Framebuffer) Updates() int {
	return dig.updates
}

// Update the fingerprint with the current contents of the framebuffer. Data
// beyond the size of the framebuffer is ignored and short data is padded with
// zeroes.
func (dig *Framebuffer) Update(fb []uint8) {
	n := copy(dig.data, dig.digest[:])
	m := copy(dig.data[n:], fb)
	clear(dig.data[n+m:])
	dig.digest = sha1.Sum(dig.data)
	dig.updates++
}
