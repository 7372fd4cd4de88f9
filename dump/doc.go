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

// Package dump serialises a decoded cartridge for human inspection. Three
// formats are supported: pretty-printed JSON (the default), an association
// list s-expression, and a graphviz digraph of the record structure (via
// the memviz package).
//
// Program bank data is large and of little interest in human-facing
// output, so banks are reduced to their number, size and a sha1 hash of
// their content. Even that summary is only included when asked for with
// the Banks field of WriteAttr.
package dump
