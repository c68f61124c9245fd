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

// Package bus defines the memory bus concept. For an explanation see the
// memory package documentation.
//
// Every memory-mapped component implements the Device interface. The set of
// devices is closed: the register file, the RAM bank, the IO ports and the
// video memory. Devices share a contract, not any state.
//
// The DebuggerBus is for the exclusive use of debuggers and other tools that
// inspect the machine from outside the normal flow of execution.
package bus
