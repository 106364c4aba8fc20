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

// the demo program fills the framebuffer with an increasing colour value. it
// changes the operand of its own STA instruction to move through the
// framebuffer and stops with a BRK when the operand wraps around to zero.
var demo = []uint8{
	0xa5, 0x10, //       loop:  LDA $10
	0x69, 0x01, //              ADC #$01
	0x85, 0x10, //              STA $10
	0x8d, 0x00, 0x02, // store: STA $0200
	0xad, 0x07, 0x06, //        LDA store+1
	0x69, 0x01, //              ADC #$01
	0x8d, 0x07, 0x06, //        STA store+1
	0xd0, 0xef, //              BNE loop
	0x00, //                    BRK
}

// MustDemo returns a memory image containing a short program that draws to the
// framebuffer. The program is at $0600. It panics if the program cannot be
// placed in memory, which can only happen if the program itself is faulty.
func MustDemo() []uint8 {
	img, err := Place(DefaultOrigin, demo)
	if err != nil {
		panic(err)
	}
	return img
}

// DemoLoader returns a Loader with the demo program already loaded.
func DemoLoader() Loader {
	img := MustDemo()
	return Loader{
		Filename: "demo",
		Format:   FormatImage,
		Origin:   DefaultOrigin,
		Data:     img,
		Hash:     hash(img),
	}
}

