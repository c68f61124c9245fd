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

// Package memory implements the address space of the machine. The address
// space owns exactly one of each device:
//
//	                 ---- registers
//	                |
//	                |---- ports
//	    CPU ---- *
//	                |---- vram
//	                |
//	                 ---- ram
//
// The asterisk indicates that every address is classified by the memorymap
// package before being forwarded to the device at the device-local offset.
// The memorymap package contains more detail on this.
//
// The Opcode and Reserved areas have no device. Reading or writing an
// address in either area is a MemoryError, as is any access beyond the
// capacity of the device in the area.
//
// The size of RAM and video memory are given to NewMemory(). The end of video
// memory must not be beyond memorymap.MemtopVideo.
//
// Memory implements the bus.DebuggerBus interface. Peek() and Poke() are
// identical to Read() and Write() except that they are not logged.
package memory
