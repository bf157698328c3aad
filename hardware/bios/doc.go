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

// Package bios is a high level emulation of the GBA BIOS. It implements the
// arm7.Interrupts interface.
//
// Software interrupts are serviced immediately in Go and control returns to
// the instruction following the SWI, as though the BIOS routine had been
// called and had returned. No code is executed in the BIOS region.
//
// The calls that wait for an interrupt (Halt, Stop, IntrWait and
// VBlankIntrWait) set the Hold field of the arm7.Clock. The scheduler in the
// gba package releases the hold at the start of the next frame.
//
// Calls for the sound driver that is built into the BIOS are accepted and
// ignored. Calls that are not supported are logged once and otherwise
// ignored.
package bios
