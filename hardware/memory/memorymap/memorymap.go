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

import "fmt"

// Address is a raw 32-bit value on the address bus. All 32-bit values are
// legal addresses, just not all of them are mapped.
type Address uint32

// NewAddress creates an Address from a raw value. There is no validation.
func NewAddress(raw uint32) Address {
	return Address(raw)
}

// RAMAddress returns the address of the idx'th word of RAM.
func RAMAddress(idx int) Address {
	return Address(OriginRAM + uint32(idx))
}

// Raw returns the address as an unsigned 32-bit value.
func (a Address) Raw() uint32 {
	return uint32(a)
}

// Area returns the area the address belongs to.
func (a Address) Area() Area {
	_, area := MapAddress(a)
	return area
}

// Offset returns the offset of the address within its area.
func (a Address) Offset() uint32 {
	offset, _ := MapAddress(a)
	return offset
}

func (a Address) String() string {
	return fmt.Sprintf("0x%08x", uint32(a))
}

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case Register:
		return "Register"
	case Opcode:
		return "Opcode"
	case Ports:
		return "Ports"
	case Video:
		return "Video"
	case RAM:
		return "RAM"
	}

	return "Reserved"
}

// The different memory areas. Reserved is every address not covered by
// another area.
const (
	Reserved Area = iota
	Register
	Opcode
	Ports
	Video
	RAM
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and translating the address to an offset is handled
// by the MapAddress() function. Bounds are inclusive.
const (
	OriginRegister = uint32(0x00000000)
	MemtopRegister = uint32(0x0000001d)
	OriginOpcode   = uint32(0x00000020)
	MemtopOpcode   = uint32(0x00000054)
	OriginPorts    = uint32(0x00000070)
	MemtopPorts    = uint32(0x000000ff)
	OriginVideo    = uint32(0x00000100)
	MemtopVideo    = uint32(0x001000ff)
	OriginRAM      = uint32(0x00100100)
)

// Memtop is the top most address of the address space.
const Memtop = uint32(0xffffffff)

// MapAddress returns the area of the address and the offset of the address
// within the area. The offset for Opcode and Reserved addresses is always
// zero. Offsets into RAM can exceed the range of a 32-bit int.
func MapAddress(address Address) (uint32, Area) {
	// note that the order of these filters is important
	a := uint32(address)

	if a <= MemtopRegister {
		return a - OriginRegister, Register
	}

	if a >= OriginOpcode && a <= MemtopOpcode {
		return 0, Opcode
	}

	if a >= OriginPorts && a <= MemtopPorts {
		return a - OriginPorts, Ports
	}

	if a >= OriginVideo && a <= MemtopVideo {
		return a - OriginVideo, Video
	}

	if a >= OriginRAM {
		return a - OriginRAM, RAM
	}

	return 0, Reserved
}

// IsArea returns true if the address is in the specified area.
func IsArea(address Address, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

// Origin returns the first address of the area. Reserved has no single
// origin and returns zero.
func (a Area) Origin() uint32 {
	switch a {
	case Register:
		return OriginRegister
	case Opcode:
		return OriginOpcode
	case Ports:
		return OriginPorts
	case Video:
		return OriginVideo
	case RAM:
		return OriginRAM
	}
	return 0
}
