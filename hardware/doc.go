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

// Package hardware is the base package for the machine. It brings together
// the memory subsystem and the hardware preferences.
//
// The execution engine is not part of this package. The engine is given the
// Machine and accesses memory through the Mem field, either with the
// Read()/Write() functions of the address space or through the device
// accessors for fast register access.
//
// The Snapshot() and Plumb() functions save and restore the entire memory
// state of the machine. Memory images only cover main memory. See the image
// package for details.
package hardware
