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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents. It partitions the flat 32-bit address space into six
// disjoint areas:
//
//	00000000 -> 0000001d	Register
//	0000001e -> 0000001f	Reserved
//	00000020 -> 00000054	Opcode
//	00000055 -> 0000006f	Reserved
//	00000070 -> 000000ff	Ports
//	00000100 -> 001000ff	Video
//	00100100 -> ffffffff	RAM
//
// The upper bound of the Video area is the architectural ceiling. The
// number of video words actually backed by storage is decided when the
// address space is created (see the memory package) and must never exceed
// this ceiling. The same is true of RAM; addresses past the configured RAM
// capacity still classify as RAM but accessing them is a bounds error.
//
// Classification is total: every 32-bit value maps to exactly one area. The
// MapAddress() function returns the area and the offset of the address
// within that area. Offsets are only meaningful for the Register, Ports,
// Video and RAM areas; the Opcode and Reserved areas are never indexed into
// a device and always return an offset of zero.
package memorymap
