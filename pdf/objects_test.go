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
	"bytes"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Null{}, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Integer(0), "0"},
		{Integer(-17), "-17"},
		{Real(50), "50."},
		{Real(-0.5), "-0.5"},
		{Real(12.25), "12.25"},
		{String(""), "()"},
		{String("hello"), "(hello)"},
		{String("a (test version)"), `(a \(test version\))`},
		{String(`C:\tmp`), `(C:\\tmp)`},
		{String(`\(`), `(\\\()`},
		{String("tab\there"), "(tab\there)"},
		{String("ein Bär"), "(ein Bär)"},
		{Name("Type"), "/Type"},
		{Name(""), "/"},
		{Name("A B"), "/A#20B"},
		{Name("a#b"), "/a#23b"},
		{Name("x\x7f"), "/x#7f"},
		{Name("Bär"), "/B#c3#a4r"},
		{Reference(12), "12 0 R"},
		{Array{}, "[]"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{Reference(4), Reference(5)}, "[4 0 R 5 0 R]"},
		{Dict{}, "<<\n>>"},
		{Dict{{"Type", Name("Catalog")}, {"Pages", Reference(2)}},
			"<<\n/Type /Catalog\n/Pages 2 0 R\n>>"},
		{Dict{{"B", Integer(1)}, {"A", Integer(2)}, {"B", Integer(3)}},
			"<<\n/B 1\n/A 2\n/B 3\n>>"},
		{Dict{{"Font", Dict{{"F0", Null{}}}}},
			"<<\n/Font <<\n/F0 null\n>>\n>>"},
		{Stream(""), "<<\n/Length 0\n>>\nstream\n\nendstream"},
		{Stream("BT\n(x) Tj\nET"), "<<\n/Length 12\n>>\nstream\nBT\n(x) Tj\nET\nendstream"},
		{Stream(`(\`), "<<\n/Length 2\n>>\nstream\n(\\\nendstream"},
	}
	for _, test := range cases {
		out := string(Format(test.in))
		if out != test.out {
			t.Errorf("%v wrongly formatted, expected %q but got %q",
				test.in, test.out, out)
		}
	}
}

func TestDictGet(t *testing.T) {
	d := Dict{{"A", Integer(1)}, {"B", Integer(2)}, {"A", Integer(3)}}
	if x := d.Get("A"); x != Integer(1) {
		t.Errorf("wrong value for /A: %v", x)
	}
	if x := d.Get("C"); x != nil {
		t.Errorf("unexpected value for /C: %v", x)
	}
	if s := d.String(); s != "<Dict, 3 entries>" {
		t.Errorf("wrong description %q", s)
	}
	d = Dict{{"Type", Name("Page")}}
	if s := d.String(); s != "<Page Dict, 1 entries>" {
		t.Errorf("wrong description %q", s)
	}
}

func TestNameCharacters(t *testing.T) {
	var all []byte
	for c := 0; c < 256; c++ {
		all = append(all, byte(c))
	}
	enc := Format(Name(all))
	for i, c := range enc {
		if c < '!' || c > '~' {
			t.Fatalf("byte %d of encoded name is %q", i, c)
		}
	}
	for i := 1; i < len(enc); i++ {
		if enc[i] == '#' && !isHex(enc, i+1) {
			t.Fatalf("bare '#' at byte %d", i)
		}
	}
}

func isHex(buf []byte, pos int) bool {
	if pos+2 > len(buf) {
		return false
	}
	return strings.ContainsRune("0123456789abcdef", rune(buf[pos])) &&
		strings.ContainsRune("0123456789abcdef", rune(buf[pos+1]))
}

func FuzzString(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("ABC"))
	f.Add([]byte(`a\(b)c\\`))
	f.Add([]byte{0, 1, 2})
	f.Add([]byte{0xFF, 0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		s1 := String(data)
		enc := Format(s1)
		s2, err := DecodeString(enc)
		if err != nil {
			t.Error(err)
		} else if !bytes.Equal(s1, s2) {
			t.Errorf("wrong string: %q != %q", s1, s2)
		}
	})
}

func FuzzName(f *testing.F) {
	f.Add("")
	f.Add("Type")
	f.Add("A#B C")
	f.Add("中文")
	f.Add("\x00\xff")
	f.Fuzz(func(t *testing.T, s string) {
		n1 := Name(s)
		enc := Format(n1)
		n2, err := DecodeName(enc)
		if err != nil {
			t.Error(err)
		} else if n1 != n2 {
			t.Errorf("wrong name: %q != %q", n1, n2)
		}
	})
}

func TestDecodeErrors(t *testing.T) {
	badStrings := []string{"", "(", "abc", `(a\)`, `(a\nb)`}
	for _, s := range badStrings {
		if _, err := DecodeString([]byte(s)); err == nil {
			t.Errorf("DecodeString(%q) did not fail", s)
		}
	}
	badNames := []string{"", "Type", "/a#2", "/a#zz", "/a b"}
	for _, s := range badNames {
		if _, err := DecodeName([]byte(s)); err == nil {
			t.Errorf("DecodeName(%q) did not fail", s)
		}
	}
}
