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

package ram

import (
	"fmt"
	"strings"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory/bus"
	"github.com/shyisa/shymem/hardware/memory/memorymap"
)

// RAM is the main memory bank. Offset zero is the word at
// memorymap.OriginRAM.
type RAM struct {
	data []bus.Word
}

// NewRAM is the preferred method of initialisation for the RAM type. Every
// word is zero.
func NewRAM(words int) *RAM {
	if words < 0 {
		words = 0
	}
	return &RAM{
		data: make([]bus.Word, words),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := &RAM{
		data: make([]bus.Word, len(ram.data)),
	}
	copy(n.data, ram.data)
	return n
}

// Reset sets every word to zero.
func (ram *RAM) Reset() {
	for i := range ram.data {
		ram.data[i] = 0
	}
}

// Label implements the bus.Device interface.
func (ram *RAM) Label() string {
	return "ram"
}

// Len implements the bus.Device interface.
func (ram *RAM) Len() int {
	return len(ram.data)
}

// the error for a RAM access quotes the bus address as well as the offset
func (ram *RAM) checkBounds(offset int) error {
	if err := bus.CheckBounds(ram, offset); err != nil {
		return errors.New(errors.MemoryError, fmt.Sprintf("address 0x%08x", uint64(memorymap.OriginRAM)+uint64(offset)), err)
	}
	return nil
}

// Read implements the bus.Device interface.
func (ram *RAM) Read(offset int) (bus.Word, error) {
	if err := ram.checkBounds(offset); err != nil {
		return 0, err
	}
	return ram.data[offset], nil
}

// Write implements the bus.Device interface.
func (ram *RAM) Write(offset int, data bus.Word) error {
	if err := ram.checkBounds(offset); err != nil {
		return err
	}
	ram.data[offset] = data
	return nil
}

// Data returns the underlying storage. Changes to the returned slice are
// changes to RAM.
func (ram *RAM) Data() []bus.Word {
	return ram.data
}

// String returns a hex dump of RAM. Rows of zero words are collapsed.
func (ram *RAM) String() string {
	return Dump(ram.data, memorymap.OriginRAM)
}

// Dump returns a hex dump of data, with each row labelled by its bus address
// relative to origin. Runs of rows that are entirely zero are collapsed into
// a single "*" line.
func Dump(data []bus.Word, origin uint32) string {
	const rowLen = 8

	s := strings.Builder{}
	skipping := false
	for i := 0; i < len(data); i += rowLen {
		end := i + rowLen
		if end > len(data) {
			end = len(data)
		}
		row := data[i:end]

		zero := true
		for _, v := range row {
			if v != 0 {
				zero = false
				break
			}
		}
		if zero && i > 0 && end < len(data) {
			if !skipping {
				s.WriteString("*\n")
				skipping = true
			}
			continue
		}
		skipping = false

		s.WriteString(fmt.Sprintf("%08x:", uint64(origin)+uint64(i)))
		for _, v := range row {
			s.WriteString(fmt.Sprintf(" %08x", v))
		}
		s.WriteString("\n")
	}
	return s.String()
}
