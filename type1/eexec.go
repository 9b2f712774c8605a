// seehuhn.de/go/sfnt - a library for reading and writing font files
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package type1

// decryptEexec reverses the eexec encryption applied to the binary portion
// of a Type 1 font program (the part following the "eexec" keyword). This
// uses a fixed key and always discards the first 4 plaintext bytes, as
// mandated by the Adobe Type 1 Font Format for the outer eexec block
// (charstring/subr-level encryption uses deobfuscateCharstring instead,
// with a font-supplied lenIV).
func decryptEexec(cipher []byte) []byte {
	return deobfuscateCharstring(cipher, 4, 55665)
}

func deobfuscateCharstring(cipher []byte, n int, rInit ...uint16) []byte {
	var R uint16 = 4330
	if len(rInit) > 0 {
		R = rInit[0]
	}
	var c1 uint16 = 52845
	var c2 uint16 = 22719
	plain := make([]byte, 0, len(cipher)-n)
	for i, c := range cipher {
		if i >= n {
			plain = append(plain, c^byte(R>>8))
		}
		R = (uint16(c)+R)*c1 + c2
	}
	return plain
}
