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

// Package curated wraps the plain Go error type with a pattern based
// classification. A curated error is created with Errorf(), which stores the
// formatting pattern and its values rather than the formatted message.
//
// The pattern is how the error is identified later. Is() checks the outermost
// pattern and Has() checks every curated error in the chain:
//
//	e := curated.Errorf("rip: unsupported version (%02x)", v)
//	f := curated.Errorf("gsf: %v", e)
//
//	curated.Is(f, "rip: unsupported version (%02x)")  // false
//	curated.Has(f, "rip: unsupported version (%02x)") // true
//
// Error() normalises the message by removing a duplicated leading part. For
// example, an error "arm7: arm7: undefined instruction" is reported as "arm7:
// undefined instruction". Parts are separated by the sub-string ': ' in the
// manner suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan).
//
// Sentinel errors are patterns stored as exported string constants. Packages
// in this project declare their patterns next to the functions that use them.
//
// Curated errors cooperate with the errors package in the standard library.
// Unwrap() returns the first error value in the list of values, so errors.Is()
// and errors.As() can see an uncurated error wrapped by a curated one.
package curated
