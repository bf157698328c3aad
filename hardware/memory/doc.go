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

// Package memory implements the memory bus of the GBA as seen by the ARM7
// CPU. The Memory type implements the arm7.Bus interface and the Timing type
// implements the arm7.Timing interface.
//
// The BIOS region is not populated. BIOS calls are handled at a higher level
// by the bios package and reads from the BIOS region return zero.
//
// Only the IO registers required for sound capture and bus timing have any
// side effects. They are:
//
//	WAITCNT    wait states of the game pak regions and the prefetch buffer
//	FIFO_A     direct sound channel A
//	FIFO_B     direct sound channel B
//	TM0CNT     timer 0 reload and control
//	TM1CNT     timer 1 reload and control
//	SOUNDCNT_H direct sound timer selection
//
// Writes to the FIFO registers are forwarded, one signed 8bit sample per
// byte, to the FIFO instance plumbed into the Memory. Writes to all other IO
// registers are stored and can be read back.
package memory
