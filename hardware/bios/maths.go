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

package bios

import (
	"math"

	"github.com/jetsetilly/gsfplayer/logger"
)

// signed division of R0 by R1. the quotient is returned in R0, the remainder
// in R1 and the absolute value of the quotient in R3
func (b *BIOS) div() {
	num := int32(b.cpu.Register(0))
	den := int32(b.cpu.Register(1))
	if den == 0 {
		// the real BIOS never returns
		logger.Logf(b, "BIOS", "division by zero (%d / 0)", num)
		return
	}

	quot := num / den
	b.cpu.SetRegister(0, uint32(quot))
	b.cpu.SetRegister(1, uint32(num%den))
	if quot < 0 {
		quot = -quot
	}
	b.cpu.SetRegister(3, uint32(quot))
}

func (b *BIOS) sqrt() {
	b.cpu.SetRegister(0, uint32(math.Sqrt(float64(b.cpu.Register(0)))))
}

// arctangent of R0, a 1.14 fixed point value. the result is in R0 with the
// range -pi/2 to pi/2 mapped to -0x4000 to 0x4000
func (b *BIOS) arcTan() {
	x := int32(b.cpu.Register(0))
	a := -((x * x) >> 14)
	r := ((0xa9 * a) >> 14) + 0x390
	for _, k := range []int32{0x91c, 0xfb6, 0x16aa, 0x2081, 0x3651, 0xa2f9} {
		r = ((r * a) >> 14) + k
	}
	b.cpu.SetRegister(0, uint32((x*r)>>16))
}

// arctangent of R1/R0 (y/x). the result in R0 is the full circle mapped to
// 0x0000 to 0xffff
func (b *BIOS) arcTan2() {
	x := int32(b.cpu.Register(0))
	y := int32(b.cpu.Register(1))

	abs := func(v int32) int32 {
		if v < 0 {
			return -v
		}
		return v
	}

	var res uint32

	switch {
	case y == 0:
		res = uint32(x>>16) & 0x8000
	case x == 0:
		res = (uint32(y>>16) & 0x8000) + 0x4000
	case abs(x) > abs(y) || (abs(x) == abs(y) && !(x < 0 && y < 0)):
		b.cpu.SetRegister(0, uint32(y<<14))
		b.cpu.SetRegister(1, uint32(x))
		b.div()
		b.arcTan()
		if x < 0 {
			res = 0x8000 + b.cpu.Register(0)
		} else {
			res = ((uint32(y>>16) & 0x8000) << 1) + b.cpu.Register(0)
		}
	default:
		b.cpu.SetRegister(0, uint32(x<<14))
		b.cpu.SetRegister(1, uint32(y))
		b.div()
		b.arcTan()
		res = (0x4000 + (uint32(y>>16) & 0x8000)) - b.cpu.Register(0)
	}

	b.cpu.SetRegister(0, res)
}
