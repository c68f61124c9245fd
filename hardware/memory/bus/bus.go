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

package bus

import (
	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory/memorymap"
)

// Word is the unit of storage of every device. The architecture has no
// smaller addressable unit.
type Word = uint32

// WordSize is the number of bytes in a Word.
const WordSize = 4

// Device defines the operations common to every memory-mapped device. Offsets
// are device local, starting at zero. Implementations must check the offset
// before any mutation and must never panic or clamp on a bad offset.
type Device interface {
	Label() string
	Read(offset int) (Word, error)
	Write(offset int, data Word) error
	Len() int
}

// DebuggerBus defines the meta-operations for the address space. Think of
// these functions as "debugging" functions, that is operations outside of the
// normal operation of the machine.
type DebuggerBus interface {
	Peek(address memorymap.Address) (Word, error)
	Poke(address memorymap.Address, data Word) error
}

// CheckBounds returns a MemoryError if offset is not a valid offset for the
// device.
func CheckBounds(dev Device, offset int) error {
	if offset < 0 || offset >= dev.Len() {
		return boundsError(dev, int64(offset))
	}
	return nil
}

// CheckAreaOffset is the same as CheckBounds but for an offset returned by
// memorymap.MapAddress(). It must be called before the offset is converted to
// an int.
func CheckAreaOffset(dev Device, offset uint32) error {
	if uint64(offset) >= uint64(dev.Len()) {
		return boundsError(dev, int64(offset))
	}
	return nil
}

func boundsError(dev Device, offset int64) error {
	return errors.Errorf(errors.MemoryError, "%s offset %#x out of bounds (len=%#x)", dev.Label(), offset, dev.Len())
}
