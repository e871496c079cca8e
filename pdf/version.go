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
	"strconv"
)

// Version represents a version of the PDF standard, as written in the file
// header.
type Version struct {
	Major, Minor int
}

// V1_7 is the PDF version written by this library.
var V1_7 = Version{1, 7}

func (ver Version) String() string {
	return strconv.Itoa(ver.Major) + "." + strconv.Itoa(ver.Minor)
}

// ParseVersion parses a PDF version string like "1.7".
func ParseVersion(verString string) (Version, error) {
	if len(verString) != 3 || verString[1] != '.' ||
		verString[0] < '0' || verString[0] > '9' ||
		verString[2] < '0' || verString[2] > '9' {
		return Version{}, errVersion
	}
	return Version{int(verString[0] - '0'), int(verString[2] - '0')}, nil
}

var errVersion = errors.New("unsupported PDF version")
