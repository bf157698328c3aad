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

// Package debugger implements the STEP mode. The emulation is advanced one
// instruction at a time under the control of single key presses. Each
// executed instruction is disassembled along with the number of cycles it
// consumed.
//
// Keys:
//
//	space/return	step one instruction
//	f		run to the end of the frame
//	c		continue until a breakpoint is reached
//	r		show the CPU registers
//	q		quit
//	h		help
//
// Breakpoints are addresses of instructions. A continue stops before the
// instruction at a breakpoint is executed. Breakpoints are also checked when
// running to the end of a frame.
package debugger
