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

package document

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPaginate(t *testing.T) {
	cases := []struct {
		lines   []string
		perPage int
		pages   [][]string
	}{
		{nil, 45, nil},
		{[]string{}, 45, nil},
		{[]string{"a"}, 45, [][]string{{"a"}}},
		{[]string{"a", "b", "c"}, 2, [][]string{{"a", "b"}, {"c"}}},
		{[]string{"a", "b", "c", "d"}, 2, [][]string{{"a", "b"}, {"c", "d"}}},
		{[]string{"a", "b"}, 0, [][]string{{"a", "b"}}},
		{[]string{"a", "b"}, -1, [][]string{{"a", "b"}}},
	}
	for i, test := range cases {
		pages := Paginate(test.lines, test.perPage)
		if d := cmp.Diff(test.pages, pages); d != "" {
			t.Errorf("%d: wrong pages (-want +got):\n%s", i, d)
		}
	}
}

func TestPaginateCapacity(t *testing.T) {
	lines := []string{"a", "b", "c"}
	pages := Paginate(lines, 2)
	pages[0] = append(pages[0], "x")
	if lines[2] != "c" {
		t.Error("appending to a page modified the input")
	}
}

func TestReadLines(t *testing.T) {
	cases := []struct {
		in  string
		out []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"one\n", []string{"one"}},
		{"one\ntwo\n", []string{"one", "two"}},
		{"one\r\ntwo\r\n", []string{"one", "two"}},
		{"\n\n", []string{"", ""}},
	}
	for _, test := range cases {
		out, err := ReadLines(strings.NewReader(test.in))
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff(test.out, out); d != "" {
			t.Errorf("%q: wrong lines (-want +got):\n%s", test.in, d)
		}
	}
}

func TestReadLinesTooLong(t *testing.T) {
	long := strings.Repeat("x", maxLineLength+1)
	_, err := ReadLines(strings.NewReader(long))
	if err == nil {
		t.Error("overlong line was accepted")
	}
}
