// This file is part of shymem.
//
// shymem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// shymem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with shymem.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package vram

import (
	"github.com/shyisa/shymem/hardware/memory/bus"
	"github.com/shyisa/shymem/hardware/memory/memorymap"
	"github.com/shyisa/shymem/hardware/memory/ram"
)

// WordsForResolution returns the number of words required by a square
// framebuffer with the given resolution.
func WordsForResolution(res int) int {
	return res * res
}

// VRAM is the video memory device.
type VRAM struct {
	data []bus.Word
}

// NewVRAM is the preferred method of initialisation for the VRAM type.
func NewVRAM(words int) *VRAM {
	if words < 0 {
		words = 0
	}
	return &VRAM{
		data: make([]bus.Word, words),
	}
}

// Snapshot creates a copy of video memory in its current state.
func (vr *VRAM) Snapshot() *VRAM {
	n := &VRAM{
		data: make([]bus.Word, len(vr.data)),
	}
	copy(n.data, vr.data)
	return n
}

// Reset sets every pixel to zero.
func (vr *VRAM) Reset() {
	for i := range vr.data {
		vr.data[i] = 0
	}
}

// Label implements the bus.Device interface.
func (vr *VRAM) Label() string {
	return "vram"
}

// Len implements the bus.Device interface.
func (vr *VRAM) Len() int {
	return len(vr.data)
}

// Read implements the bus.Device interface.
func (vr *VRAM) Read(offset int) (bus.Word, error) {
	if err := bus.CheckBounds(vr, offset); err != nil {
		return 0, err
	}
	return vr.data[offset], nil
}

// Write implements the bus.Device interface.
func (vr *VRAM) Write(offset int, data bus.Word) error {
	if err := bus.CheckBounds(vr, offset); err != nil {
		return err
	}
	vr.data[offset] = data
	return nil
}

// Data returns the underlying framebuffer. Changes to the returned slice are
// changes to video memory.
func (vr *VRAM) Data() []bus.Word {
	return vr.data
}

func (vr *VRAM) String() string {
	return ram.Dump(vr.data, memorymap.OriginVideo)
}
