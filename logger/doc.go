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

// Package logger is the central log for the application. There is one
// central logger and all log requests made through the package level
// functions are added to it.
//
//	logger.Log(logger.Allow, "inspect", "decode complete")
//
// The Permission argument controls whether the log request is allowed to
// create an entry. logger.Allow is the correct value to use when the entry
// should always be made. Types that want finer control can implement the
// Permission interface themselves.
//
// Repeated entries are not added to the log again. Instead, the most recent
// entry is marked and the repetition shown when the log is written:
//
//	loader: open test.gb (repeat x2)
//
// The central log can be echoed to any io.Writer as entries arrive with the
// SetEcho() function. The -log flag of the command line modes uses this to
// relay the log to stdout. The Colorizer type can be used as the echo
// target to dim continuation lines on ANSI terminals.
//
// Independent Logger instances can be created with NewLogger() where a
// separate log is more appropriate. The central log is itself a plain
// Logger instance.
package logger
