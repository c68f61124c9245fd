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

// Package registers implements the register file device. The register file
// occupies the Register area of the address space (see memorymap package).
//
// Offsets 0x01 to 0x0f are the general purpose registers. Offsets 0x10 to
// 0x1d are the special registers, each with a fixed meaning to the execution
// engine:
//
//	PC    program counter
//	MD    mode switch
//	SP    stack pointer
//	TM    timer value
//	TA1   interrupt handler entry
//	TA2   interrupt return address
//	M1-M4 sound channels (sine, square, triangle, sawtooth)
//	RS    result of the most recent comparison
//	EX    exit trigger
//	BLTS  block transfer source
//	BLTL  block transfer length
//
// Writes to EX, TM, TA1 and TA2 have side effects in the execution engine.
// The register file itself performs no side effects; it is storage only.
//
// The file holds 32 words but only offsets up to 0x1d are reachable through
// the address space. The two remaining words are padding.
package registers
