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

package errors

// Category identifies the broad class of a CoreError.
type Category int

// List of error categories.
const (
	// malformed configuration or arguments
	InvalidInput Category = iota

	// referenced external resource is absent
	ResourceNotFound

	// filesystem read/write failure. the underlying cause and the target
	// path are always part of the error values
	IOError

	// address or offset outside of a device's bounds, or an illegal access
	// into opcode or reserved space
	MemoryError
)

func (c Category) String() string {
	switch c {
	case InvalidInput:
		return "invalid input"
	case ResourceNotFound:
		return "resource not found"
	case IOError:
		return "io error"
	case MemoryError:
		return "memory error"
	}
	return "unknown error"
}
