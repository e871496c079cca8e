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
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Object represents a value which can be stored in a PDF file.  The types
// Null, Bool, Integer, Real, String, Name, Reference, Array, Dict and Stream
// implement this interface.
type Object interface {
	// PDF writes the PDF file representation of the object to w.
	PDF(w io.Writer) error
}

// Format returns the PDF representation of obj.
// A nil Object is formatted as "null".
func Format(obj Object) []byte {
	buf := &bytes.Buffer{}
	if obj == nil {
		buf.WriteString("null")
	} else {
		_ = obj.PDF(buf) // writes to a bytes.Buffer never fail
	}
	return buf.Bytes()
}

// Null represents the PDF null object.
type Null struct{}

// PDF implements the Object interface.
func (Null) PDF(w io.Writer) error {
	_, err := w.Write([]byte("null"))
	return err
}

// Bool represents a boolean value in a PDF file.
type Bool bool

// PDF implements the Object interface.
func (x Bool) PDF(w io.Writer) error {
	var s string
	if x {
		s = "true"
	} else {
		s = "false"
	}
	_, err := w.Write([]byte(s))
	return err
}

// Integer represents an integer constant in a PDF file.
type Integer int64

// PDF implements the Object interface.
func (x Integer) PDF(w io.Writer) error {
	s := strconv.FormatInt(int64(x), 10)
	_, err := w.Write([]byte(s))
	return err
}

// Real represents an real number in a PDF file.
// Integral values are written with a trailing period, e.g. "50.".
type Real float64

// PDF implements the Object interface.
func (x Real) PDF(w io.Writer) error {
	s := strconv.FormatFloat(float64(x), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s = s + "."
	}
	_, err := w.Write([]byte(s))
	return err
}

// String represents a literal string in a PDF file.  The bytes are written
// unchanged, apart from escaping backslashes and parentheses.  The character
// set encoding, if any, is determined by the context.
type String []byte

// PDF implements the Object interface.
func (x String) PDF(w io.Writer) error {
	buf := make([]byte, 0, len(x)+2)
	buf = append(buf, '(')
	for _, c := range x {
		switch c {
		case '\\', '(', ')':
			buf = append(buf, '\\', c)
		default:
			buf = append(buf, c)
		}
	}
	buf = append(buf, ')')
	_, err := w.Write(buf)
	return err
}

// Name represents a name in a PDF file.  Names are written with a leading
// slash; bytes outside the range '!' to '~', and the byte '#' itself, are
// written as '#' followed by two lowercase hex digits.
type Name string

// PDF implements the Object interface.
func (x Name) PDF(w io.Writer) error {
	buf := &bytes.Buffer{}
	buf.WriteByte('/')
	for i := 0; i < len(x); i++ {
		c := x[i]
		if c < '!' || c > '~' || c == '#' {
			fmt.Fprintf(buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Reference represents a reference to the indirect object with the given
// number.  The generation number is always 0.
type Reference int

// PDF implements the Object interface.
func (x Reference) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d 0 R", int(x))
	return err
}

// Array represent an array of objects in a PDF file.
type Array []Object

func (x Array) String() string {
	return "<Array, " + strconv.Itoa(len(x)) + " elements>"
}

// PDF implements the Object interface.
func (x Array) PDF(w io.Writer) error {
	_, err := w.Write([]byte("["))
	if err != nil {
		return err
	}
	for i, val := range x {
		if i > 0 {
			_, err := w.Write([]byte(" "))
			if err != nil {
				return err
			}
		}
		if val == nil {
			_, err = w.Write([]byte("null"))
		} else {
			err = val.PDF(w)
		}
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("]"))
	return err
}

// DictEntry is a single key-value pair of a Dict.
type DictEntry struct {
	Key   Name
	Value Object
}

// Dict represent a Dictionary object in a PDF file.
//
// Entries are written in the order given.  Keys are not required to be
// unique.
type Dict []DictEntry

func (x Dict) String() string {
	res := []string{}
	if tp, ok := x.Get("Type").(Name); ok {
		res = append(res, string(tp)+" Dict")
	} else {
		res = append(res, "Dict")
	}
	res = append(res, strconv.Itoa(len(x))+" entries")
	return "<" + strings.Join(res, ", ") + ">"
}

// Get returns the value of the first entry with the given key, or nil if
// there is no such entry.
func (x Dict) Get(key Name) Object {
	for _, e := range x {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// PDF implements the Object interface.
func (x Dict) PDF(w io.Writer) error {
	_, err := w.Write([]byte("<<\n"))
	if err != nil {
		return err
	}
	for _, e := range x {
		err = e.Key.PDF(w)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(" "))
		if err != nil {
			return err
		}
		if e.Value == nil {
			_, err = w.Write([]byte("null"))
		} else {
			err = e.Value.PDF(w)
		}
		if err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		if err != nil {
			return err
		}
	}
	_, err = w.Write([]byte(">>"))
	return err
}

// Stream represents a stream object in a PDF file.  The stream dictionary
// contains only the /Length entry, which is computed from the data.
// The data is written verbatim.
type Stream []byte

func (x Stream) String() string {
	return "<Stream, " + strconv.Itoa(len(x)) + " bytes>"
}

// PDF implements the Object interface.
func (x Stream) PDF(w io.Writer) error {
	dict := Dict{
		{"Length", Integer(len(x))},
	}
	err := dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nstream\n"))
	if err != nil {
		return err
	}
	_, err = w.Write(x)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendstream"))
	return err
}
