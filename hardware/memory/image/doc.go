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

// Package image converts the contents of main memory to and from a memory
// image.
//
// An image is a flat sequence of 32-bit words in big-endian byte order. There
// is no header. Word i of the image is the word at bus address
// memorymap.OriginRAM+i. Images written by Encode() and Save() cover the whole
// of RAM. Images shorter than RAM are accepted by Decode() and Load() and are
// placed at the start of RAM, leaving the remainder unchanged.
//
// Registers, IO ports and video memory are not part of an image.
//
// Decode() checks the image before writing any word. An image that is not a
// whole number of words, or that is larger than RAM, is rejected and memory
// is left untouched.
package image
