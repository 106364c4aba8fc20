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

package execution

import (
	"github.com/ducklingscorp/sixtyfive/curated"
)

// Sentinal errors returned by IsValid().
const (
	NotFinalised        = "execution: not finalised (bad opcode?)"
	UnexpectedPageFault = "execution: unexpected page fault"
	WrongByteCount      = "execution: unexpected number of bytes read during decode (%d instead of %d)"
	WrongCycles         = "execution: number of cycles wrong for opcode %#02x [%v] (%d instead of %d)"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final || r.Defn == nil {
		return curated.Errorf(NotFinalised)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault {
		return curated.Errorf(UnexpectedPageFault)
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(WrongByteCount, r.ByteCount, r.Defn.Bytes)
	}

	expected := r.Defn.Cycles
	if r.Defn.IsBranch() {
		if r.BranchTaken {
			expected++
			if r.PageFault {
				expected++
			}
		}
	} else if r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf(WrongCycles, r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
