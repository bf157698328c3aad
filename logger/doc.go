// This file is part of gsfplayer.
//
// gsfplayer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gsfplayer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gsfplayer.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central log for the application. Entries are made up
// of a tag and a detail string. Repeated entries are collapsed into a single
// entry with a repeat count.
//
// Logging requests must supply a Permission instance. The CPU, for example,
// only allows logging if the LogUndefined preference is set. The Allow value
// can be used if the entry should always be made.
//
// The package level functions act on the central logger. Additional Logger
// instances can be created with NewLogger().
package logger
