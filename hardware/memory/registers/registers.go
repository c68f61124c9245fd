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

package registers

import (
	"fmt"
	"strings"

	"github.com/shyisa/shymem/hardware/memory/bus"
)

// NumRegisters is the number of words in the register file.
const NumRegisters = 0x20

// File is the register file device.
type File struct {
	regs [NumRegisters]bus.Word
}

// NewFile is the preferred method of initialisation for the File type. All
// registers are zero.
func NewFile() *File {
	return &File{}
}

// Snapshot creates a copy of the register file in its current state.
func (f *File) Snapshot() *File {
	n := *f
	return &n
}

// Reset sets every register to zero.
func (f *File) Reset() {
	f.regs = [NumRegisters]bus.Word{}
}

// Label implements the bus.Device interface.
func (f *File) Label() string {
	return "registers"
}

// Len implements the bus.Device interface.
func (f *File) Len() int {
	return len(f.regs)
}

// Read implements the bus.Device interface.
func (f *File) Read(offset int) (bus.Word, error) {
	if err := bus.CheckBounds(f, offset); err != nil {
		return 0, err
	}
	return f.regs[offset], nil
}

// Write implements the bus.Device interface.
func (f *File) Write(offset int, data bus.Word) error {
	if err := bus.CheckBounds(f, offset); err != nil {
		return err
	}
	f.regs[offset] = data
	return nil
}

// GetRaw returns the value at offset. The boolean is false if the offset is
// out of range.
func (f *File) GetRaw(offset int) (bus.Word, bool) {
	if offset < 0 || offset >= len(f.regs) {
		return 0, false
	}
	return f.regs[offset], true
}

// Get returns the value of a special register. A value that is not one of
// the SpecialRegister constants reads as zero.
func (f *File) Get(r SpecialRegister) bus.Word {
	if r < PC || r > BLTL {
		return 0
	}
	return f.regs[r]
}

// Set the value of a special register. A value that is not one of the
// SpecialRegister constants is ignored.
func (f *File) Set(r SpecialRegister, data bus.Word) {
	if r < PC || r > BLTL {
		return
	}
	f.regs[r] = data
}

func (f *File) String() string {
	s := strings.Builder{}
	for i := 0x01; i < int(PC)+NumSpecial; i++ {
		s.WriteString(fmt.Sprintf("%s=0x%08x", Name(i), f.regs[i]))
		if i%4 == 0 {
			s.WriteString("\n")
		} else {
			s.WriteString(" ")
		}
	}
	return strings.TrimSpace(s.String())
}
