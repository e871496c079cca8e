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
)

// Indirect is a numbered indirect object.
type Indirect struct {
	Number int
	Obj    Object
}

// PDF writes the indirect object, including the "obj" and "endobj"
// keywords, to w.  A nil Obj is written as null.
func (x Indirect) PDF(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d 0 obj\n", x.Number)
	if err != nil {
		return err
	}
	if x.Obj == nil {
		_, err = w.Write([]byte("null"))
	} else {
		err = x.Obj.PDF(w)
	}
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("\nendobj\n"))
	return err
}

// File is a complete PDF document.  The objects are written in the order
// given, the caller is responsible for assigning unique object numbers.
type File struct {
	Version Version

	// Catalog is the object number of the document catalog.
	Catalog int

	Objects []Indirect
}

// WriterOptions control the layout of the cross-reference table.
type WriterOptions struct {
	// CompleteXRef, if set, makes the cross-reference table list every
	// object, and makes startxref point to the "xref" keyword.
	//
	// By default the table omits the last object written, and startxref
	// holds the position of that object instead.  Existing output relies
	// on this layout, even though PDF readers need to repair the file.
	CompleteXRef bool
}

// binaryMarker is written as a comment on the second line of every file,
// to signal that the file contains binary data.
const binaryMarker = "\xe2\xe3\xcf\xd3"

// WriteHeader writes the two header lines of a PDF file.
func WriteHeader(w io.Writer, ver Version) error {
	_, err := fmt.Fprintf(w, "%%PDF-%d.%d\n%%%s\n", ver.Major, ver.Minor, binaryMarker)
	return err
}

// WriteTo writes the PDF file to w, using the default cross-reference table
// layout.  This implements the io.WriterTo interface.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	pw := &posWriter{w: w}
	err := f.Encode(pw, nil)
	return pw.pos, err
}

// Bytes returns the PDF representation of the file.
func (f *File) Bytes(opt *WriterOptions) []byte {
	buf := &bytes.Buffer{}
	_ = f.Encode(buf, opt) // writes to a bytes.Buffer never fail
	return buf.Bytes()
}

// Encode writes the PDF file to w.  The header, all objects in list order,
// the cross-reference table and the trailer are written in a single pass.
// The only errors returned are the ones reported by w.
//
// If opt is nil, the default options are used.
func (f *File) Encode(w io.Writer, opt *WriterOptions) error {
	if opt == nil {
		opt = &WriterOptions{}
	}
	pw := &posWriter{w: w}

	err := WriteHeader(pw, f.Version)
	if err != nil {
		return err
	}

	starts := make([]int64, len(f.Objects))
	for i, obj := range f.Objects {
		starts[i] = pw.pos
		err = obj.PDF(pw)
		if err != nil {
			return err
		}
	}
	xrefPos := pw.pos

	xref := []XRefEntry{freeHead}
	var startXRef int64
	if opt.CompleteXRef {
		for _, pos := range starts {
			xref = append(xref, XRefEntry{Pos: pos})
		}
		startXRef = xrefPos
	} else if n := len(starts); n > 0 {
		for _, pos := range starts[:n-1] {
			xref = append(xref, XRefEntry{Pos: pos})
		}
		startXRef = starts[n-1]
	} else {
		startXRef = xrefPos
	}

	size := len(f.Objects) + 1
	err = WriteXRef(pw, xref, size)
	if err != nil {
		return err
	}

	trailer := &Trailer{
		Root:      f.Catalog,
		Size:      size,
		StartXRef: startXRef,
	}
	return trailer.PDF(pw)
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
