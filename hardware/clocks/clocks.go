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

// Package clocks defines the constant values that describe the speed of the
// GBA. The CPU clock itself is a preference value (see the
// hardware/preferences package) and the value here is the default.
package clocks

// CPU is the speed of the GBA processor in MHz. It is exactly 2^24 Hz.
const CPU = 16.777216

// The display timing drives the frame rate. Sound drivers almost always
// synchronise to the vertical blank so the frame is the unit of time used by
// the scheduler.
const (
	CyclesPerScanline = 1232
	ScanlinesPerFrame = 228
	CyclesPerFrame    = CyclesPerScanline * ScanlinesPerFrame
)

// FramesPerSecond at the default CPU speed.
const FramesPerSecond = CPU * 1000000 / CyclesPerFrame
