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

// Package hardware is the base package for the GBA emulation. It and its
// sub-packages contain everything required to run the sound driver of a rip.
//
// The GBA type is the root of the emulation and contains external references
// to all the GBA sub-systems. From here, the emulation can either be started
// to run continuously (with optional callback to check for continuation); or
// it can be stepped one instruction at a time.
//
// The unit of time is the frame. The BIOS calls that wait for the vertical
// blank hold the CPU until the end of the frame.
package hardware
