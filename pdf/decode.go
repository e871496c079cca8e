// seehuhn.de/go/txt2pdf - convert plain text files to PDF
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package pdf

import (
	"errors"
	"fmt"
	"strconv"
)

// DecodeString reverses the escaping applied by String.PDF.  The argument
// must include the enclosing parentheses.
func DecodeString(literal []byte) (String, error) {
	n := len(literal)
	if n < 2 || literal[0] != '(' || literal[n-1] != ')' {
		return nil, errMalformedString
	}
	body := literal[1 : n-1]
	res := make(String, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '\\' {
			i++
			if i >= len(body) {
				return nil, errMalformedString
			}
			c = body[i]
			switch c {
			case '\\', '(', ')':
				// pass
			default:
				return nil, fmt.Errorf("unsupported escape \\%c in string", c)
			}
		}
		res = append(res, c)
	}
	return res, nil
}

// DecodeName reverses the escaping applied by Name.PDF.  The argument must
// include the leading slash.
func DecodeName(enc []byte) (Name, error) {
	if len(enc) == 0 || enc[0] != '/' {
		return "", errMalformedName
	}
	res := make([]byte, 0, len(enc)-1)
	for i := 1; i < len(enc); i++ {
		c := enc[i]
		if c < '!' || c > '~' {
			return "", errMalformedName
		}
		if c == '#' {
			if i+2 >= len(enc) {
				return "", errMalformedName
			}
			x, err := strconv.ParseUint(string(enc[i+1:i+3]), 16, 8)
			if err != nil {
				return "", errMalformedName
			}
			c = byte(x)
			i += 2
		}
		res = append(res, c)
	}
	return Name(res), nil
}

var (
	errMalformedString = errors.New("malformed string literal")
	errMalformedName   = errors.New("malformed name")
)
