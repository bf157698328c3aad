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

// Package disassembly produces a linear disassembly of Thumb code from
// memory. The second half of a long branch with link is combined with the
// first half so that the branch target can be shown.
//
// The disassembly is linear only. No attempt is made to follow the flow of
// the program and so data in the program area will be disassembled as if it
// were code.
package disassembly
