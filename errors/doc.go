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

// Package errors is a helper package for the error type. It defines the
// CoreError type, an implementation of the error interface, that allows code
// to wrap errors around other errors and to allow normalised formatted output
// of error messages.
//
// Every CoreError belongs to one Category. The four categories make up the
// entire error taxonomy of the memory subsystem:
//
//	InvalidInput      malformed configuration or arguments
//	ResourceNotFound  referenced external resource absent
//	IOError           filesystem read/write failure
//	MemoryError       out of bounds offset or illegal address space access
//
// The most useful feature is deduplication of wrapped errors. This means that
// code does not need to worry about the immediate context of the function
// which creates the error. For instance:
//
//	func A() error {
//		err := B()
//		if err != nil {
//			return errors.New(errors.MemoryError, "address 0x00100105", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return errors.New(errors.MemoryError, "ram offset 0x5 out of bounds")
//	}
//
// The message for the error returned by A() will be:
//
//	memory error: address 0x00100105: ram offset 0x5 out of bounds
//
// and not
//
//	memory error: address 0x00100105: memory error: ram offset 0x5 out of bounds
//
// The Is() function checks the category of the outermost error. The Has()
// function checks whether a category appears anywhere in the chain. Errors
// from outside the package that are passed as values to New() can be
// recovered with the standard library's errors.Is() and errors.As()
// functions.
package errors
