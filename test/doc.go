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

// Package test bundles a bunch of useful functions useful for testing
// purposes, particular useful in conjunction with the standard go test
// harness.
//
// The Expect*() functions test for success, failure and equality under
// generic conditions. A failed expectation is reported with t.Errorf() and
// testing continues. The Demand*() functions are the same except that a
// failure is reported with t.Fatalf().
//
// It is worth describing how success and failure handle the nil type because
// it is not obvious. The nil type is considered a success and consequently
// will cause ExpectFailure to fail and ExpectSuccess to succeed. This may not
// be how we want to interpret nil in all situations but because of how errors
// usually works (nil to indicate no error) we *need* to interpret nil in this
// way.
//
// The CompareWriter type meanwhile, implements the io.Writer interface and
// should be used to capture output. The CompareWriter.Compare() function can
// then be used to test for equality.
package test
