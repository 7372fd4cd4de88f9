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

// Package catalog maintains a persistent record of known cartridge
// images. Each entry stores the filename, the sha1 hash of the file
// content and a summary of the decoded header. The Verify() function
// re-loads and re-decodes every catalogued file and reports the entries
// that no longer match.
//
// The catalog lives in a database session (see the database package) at a
// location decided by the resources package.
package catalog
