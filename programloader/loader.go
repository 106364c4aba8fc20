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

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/ducklingscorp/sixtyfive/curated"
	"github.com/ducklingscorp/sixtyfive/hardware/cpu/address"
	"github.com/ducklingscorp/sixtyfive/hardware/memory"
	"github.com/ducklingscorp/sixtyfive/hardware/memory/memorymap"
)

// Sentinal errors.
const (
	WrongSize         = "programloader: image is %d bytes, expected %d"
	NoProgram         = "programloader: no program data"
	Overlaps          = "programloader: %d bytes at %v overlaps the vectors"
	UnexpectedHash    = "programloader: unexpected hash value"
	UnsupportedScheme = "programloader: unsupported URL scheme (%s)"
)

// DefaultOrigin is the load address for programs in the binary format.
const DefaultOrigin = address.Address(0x0600)

// Loader is used to specify the program to load into memory.
type Loader struct {
	// filename of program to load
	Filename string

	// the format of the data. decided by the file extension if NewLoader() is
	// used
	Format Format

	// the load address of a program in the binary format. after loading a
	// PRG file the value will be the load address in the file header
	Origin address.Address

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []uint8
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The Format field is set according to the file extension. Extensions are not
// case sensitive. Unrecognised extensions are treated as complete memory
// images.
func NewLoader(filename string) Loader {
	pl := Loader{
		Filename: filename,
		Origin:   DefaultOrigin,
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".PRG":
		pl.Format = FormatPRG
	case ".BIN":
		pl.Format = FormatBinary
	default:
		pl.Format = FormatImage
	}

	return pl
}

// ShortName returns a shortened version of the Loader filename.
func (pl Loader) ShortName() string {
	return strings.TrimSuffix(path.Base(pl.Filename), path.Ext(pl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return len(pl.Data) > 0
}

// Load the program data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (pl *Loader) Load() error {
	if len(pl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(pl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(pl.Filename)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("programloader: %v", resp.Status)
		}

		pl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}

	case "file", "":
		pl.Data, err = os.ReadFile(pl.Filename)
		if err != nil {
			return curated.Errorf("programloader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	h := hash(pl.Data)
	if pl.Hash != "" && pl.Hash != h {
		pl.Data = nil
		return curated.Errorf(UnexpectedHash)
	}
	pl.Hash = h

	if pl.Format == FormatPRG {
		if len(pl.Data) < 2 {
			return curated.Errorf(NoProgram)
		}
		pl.Origin = address.FromBytes(pl.Data[0], pl.Data[1])
	}

	return nil
}

func hash(data []uint8) string {
	return fmt.Sprintf("%x", sha1.Sum(data))
}

// Image returns a complete memory image of the loaded program. Load() must
// have been called successfully beforehand.
func (pl Loader) Image() ([]uint8, error) {
	switch pl.Format {
	case FormatPRG:
		if len(pl.Data) < 2 {
			return nil, curated.Errorf(NoProgram)
		}
		return Place(pl.Origin, pl.Data[2:])

	case FormatBinary:
		return Place(pl.Origin, pl.Data)
	}

	if len(pl.Data) != memory.Size {
		return nil, curated.Errorf(WrongSize, len(pl.Data), memory.Size)
	}

	return append([]uint8{}, pl.Data...), nil
}

// Place creates a memory image with the program at origin and with the reset
// vector pointing to the origin. The program must not overlap the vectors at
// the top of memory.
func Place(origin address.Address, program []uint8) ([]uint8, error) {
	if len(program) == 0 {
		return nil, curated.Errorf(NoProgram)
	}
	if origin.Int()+len(program) > memorymap.OriginVectors.Int() {
		return nil, curated.Errorf(Overlaps, len(program), origin)
	}

	img := make([]uint8, memory.Size)
	copy(img[origin:], program)
	img[memorymap.ResetVector] = origin.Offset()
	img[memorymap.ResetVector+1] = origin.Page()

	return img, nil
}
