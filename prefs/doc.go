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

// Package prefs holds the typed preference values and the means to persist
// them.
//
// A preference value is one of Bool, Int or String. Values are safe to read
// from any goroutine. Each value can have a hook function called before the
// value changes (which can veto the change by returning an error) and a hook
// function called after the value changes.
//
// Values are associated with a key in a Disk instance. The Disk type saves
// and loads values to a file, one value per line, in the form:
//
//	key :: value
//
// More than one Disk instance can share a file. Saving one instance will not
// clobber the entries of another.
//
// Values can also be given on the command line, as a string of key/value
// pairs:
//
//	memory.ram::1024; memory.video::256
//
// See PushCommandLineStack() for details. A value on the command line stack
// takes precedence over the value in the file when a Disk is loaded.
package prefs
