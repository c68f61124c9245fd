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

package memorymap

import (
	"fmt"
	"strings"
)

// boundaries lists the first address of every run of addresses that share an
// area, in ascending order. it is enough to describe the whole address space
// because areas are contiguous.
var boundaries = []uint32{
	OriginRegister,
	MemtopRegister + 1,
	OriginOpcode,
	MemtopOpcode + 1,
	OriginPorts,
	OriginVideo,
	OriginRAM,
}

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	s := strings.Builder{}

	for i, origin := range boundaries {
		memtop := Memtop
		if i < len(boundaries)-1 {
			memtop = boundaries[i+1] - 1
		}
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", origin, memtop, Address(origin).Area()))
	}

	return s.String()
}
