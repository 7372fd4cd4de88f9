// This file is part of Mule-GB.
//
// Mule-GB is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mule-GB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mule-GB.  If not, see <https://www.gnu.org/licenses/>.

// Package cartridge decodes GameBoy cartridge images. The Decode() function
// takes the complete image as a byte buffer and returns the decoded header
// along with the sequence of program banks. It neither reads files nor
// writes output; loading and serialisation are handled by the
// cartridgeloader and dump packages respectively.
//
// The header layout is fixed but one byte changes how part of it must be
// read. The old-style licensee byte at the end of the header decides the
// width of the game title field, whether a manufacturer code is present,
// and which of the two licensee code forms is in effect. Decode() therefore
// works in two phases: it peeks that byte at its absolute offset to fix the
// layout variant and then decodes the rest of the header sequentially.
//
// The number of program banks is a function of the decoded ROM size field.
// Every bank is 16KB wide except bank 0, which loses the space occupied by
// the boot vectors, logo and header fields.
//
// Most of the enumerated header fields are strict. A byte outside the
// documented set decodes to an error with the UnsupportedValue pattern.
// The cartridge type and licensee code fields are the exception: unknown
// bytes there decode to an explicit unknown value and decoding continues.
package cartridge
