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

package image

import (
	"encoding/binary"
	"fmt"

	"github.com/shyisa/shymem/errors"
	"github.com/shyisa/shymem/hardware/memory"
	"github.com/shyisa/shymem/hardware/memory/bus"
	"github.com/shyisa/shymem/hardware/memory/memorymap"
)

// Encode returns the image of the RAM in mem.
func Encode(mem *memory.Memory) ([]byte, error) {
	words := mem.RAM().Len()
	data := make([]byte, words*bus.WordSize)

	for i := 0; i < words; i++ {
		v, err := mem.Read(memorymap.RAMAddress(i))
		if err != nil {
			return nil, err
		}
		binary.BigEndian.PutUint32(data[i*bus.WordSize:], v)
	}

	return data, nil
}

// Decode writes the image to the RAM in mem.
func Decode(mem *memory.Memory, data []byte) error {
	if len(data)%bus.WordSize != 0 {
		return errors.Errorf(errors.InvalidInput, "image length (%d bytes) is not a multiple of the word size", len(data))
	}

	words := len(data) / bus.WordSize
	if words > mem.RAM().Len() {
		return errors.Errorf(errors.InvalidInput, "image (%d words) is larger than ram (%d words)", words, mem.RAM().Len())
	}

	for i := 0; i < words; i++ {
		v := binary.BigEndian.Uint32(data[i*bus.WordSize:])
		if err := mem.Write(memorymap.RAMAddress(i), v); err != nil {
			return errors.New(errors.MemoryError, fmt.Sprintf("image word %d", i), err)
		}
	}

	return nil
}
