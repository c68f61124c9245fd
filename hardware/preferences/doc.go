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

// Package preferences holds the preference values of the machine hardware.
// The values are stored in the prefs file under the "memory" and "hardware"
// groups:
//
//	memory.ram          size of main memory in words
//	memory.video        size of video memory in words
//	memory.resolution   screen resolution. setting this also sets memory.video
//	hardware.randstate  fill memory with random values on reset
//
// Memory sizes only take effect when a new machine is created.
package preferences
