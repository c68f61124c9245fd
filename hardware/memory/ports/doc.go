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

// Package ports implements the IO port device. The ports occupy the Ports
// area of the address space, 0x70 to 0xff inclusive.
//
// The lowest six ports are written by the keyboard and hold the state of the
// direction, confirm and cancel keys. Ports 0x80 to 0xff form the ASCII
// output range: the port for a character is at 0x80 plus the low seven bits
// of the character code.
//
// The device is storage only. Keyboard and sound side effects belong to the
// execution engine.
package ports
