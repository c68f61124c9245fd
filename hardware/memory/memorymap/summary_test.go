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

package memorymap_test

import (
	"math"
	"testing"

	"github.com/shyisa/shymem/hardware/memory/memorymap"
	"github.com/shyisa/shymem/test"
)

const validMemMap = `00000000 -> 0000001d	Register
0000001e -> 0000001f	Reserved
00000020 -> 00000054	Opcode
00000055 -> 0000006f	Reserved
00000070 -> 000000ff	Ports
00000100 -> 001000ff	Video
00100100 -> ffffffff	RAM
`

func TestSummary(t *testing.T) {
	test.ExpectEquality(t, memorymap.Summary(), validMemMap)
}

func TestBoundaries(t *testing.T) {
	cases := []struct {
		address uint32
		area    memorymap.Area
		offset  uint32
	}{
		{0x00, memorymap.Register, 0x00},
		{0x10, memorymap.Register, 0x10},
		{0x1d, memorymap.Register, 0x1d},
		{0x1e, memorymap.Reserved, 0},
		{0x1f, memorymap.Reserved, 0},
		{0x20, memorymap.Opcode, 0},
		{0x50, memorymap.Opcode, 0},
		{0x54, memorymap.Opcode, 0},
		{0x55, memorymap.Reserved, 0},
		{0x6f, memorymap.Reserved, 0},
		{0x70, memorymap.Ports, 0x00},
		{0x80, memorymap.Ports, 0x10},
		{0xff, memorymap.Ports, 0x8f},
		{0x00000100, memorymap.Video, 0},
		{0x001000ff, memorymap.Video, 0xfffff},
		{0x00100100, memorymap.RAM, 0},
		{0x00100105, memorymap.RAM, 5},
		{math.MaxUint32, memorymap.RAM, math.MaxUint32 - memorymap.OriginRAM},
	}

	for _, c := range cases {
		offset, area := memorymap.MapAddress(memorymap.NewAddress(c.address))
		test.ExpectEquality(t, area, c.area, memorymap.Address(c.address))
		test.ExpectEquality(t, offset, c.offset, memorymap.Address(c.address))
		test.ExpectSuccess(t, memorymap.IsArea(memorymap.Address(c.address), c.area))
	}
}

// every address either side of an area boundary must classify into exactly
// the area the boundary table says it does
func TestTotality(t *testing.T) {
	areas := []memorymap.Area{
		memorymap.Reserved, memorymap.Register, memorymap.Opcode,
		memorymap.Ports, memorymap.Video, memorymap.RAM,
	}

	for a := uint32(0); a < 0x00100200; a++ {
		n := 0
		for _, area := range areas {
			if memorymap.IsArea(memorymap.Address(a), area) {
				n++
			}
		}
		if n != 1 {
			t.Fatalf("address %#08x classifies into %d areas", a, n)
		}
	}
}

func TestOffsetWithinArea(t *testing.T) {
	for _, a := range []uint32{0x00, 0x1d, 0x70, 0xff, 0x100, 0x1000ff, 0x100100, 0x100fff} {
		addr := memorymap.NewAddress(a)
		test.ExpectEquality(t, addr.Offset(), a-addr.Area().Origin())
	}
}

func TestAddress(t *testing.T) {
	test.ExpectEquality(t, memorymap.RAMAddress(10).Raw(), uint32(0x0010010a))
	test.ExpectEquality(t, memorymap.NewAddress(0x80).String(), "0x00000080")
	test.ExpectEquality(t, memorymap.Opcode.String(), "Opcode")
	test.ExpectEquality(t, memorymap.Area(99).String(), "Reserved")
}
