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

package registers

// SpecialRegister identifies one of the special registers by its offset in
// the register file.
type SpecialRegister int

// List of special registers.
const (
	PC SpecialRegister = iota + 0x10
	MD
	SP
	TM
	TA1
	TA2
	M1
	M2
	M3
	M4
	RS
	EX
	BLTS
	BLTL
)

// NumSpecial is the number of special registers.
const NumSpecial = int(BLTL-PC) + 1

var specialNames = [NumSpecial]string{
	"PC", "MD", "SP", "TM", "TA1", "TA2",
	"M1", "M2", "M3", "M4",
	"RS", "EX", "BLTS", "BLTL",
}

func (r SpecialRegister) String() string {
	if r < PC || r > BLTL {
		return "unknown"
	}
	return specialNames[r-PC]
}

// SpecialFromOffset returns the special register at the register file offset.
func SpecialFromOffset(offset int) (SpecialRegister, bool) {
	r := SpecialRegister(offset)
	if r < PC || r > BLTL {
		return 0, false
	}
	return r, true
}

// Name returns the canonical name of the register at the offset. General
// purpose registers are named R1x to Rfx. Offsets that do not name a
// register return the empty string.
func Name(offset int) string {
	if r, ok := SpecialFromOffset(offset); ok {
		return r.String()
	}
	if offset >= 0x01 && offset <= 0x0f {
		return "R" + string("0123456789abcdef"[offset]) + "x"
	}
	return ""
}
