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
	"errors"
	"fmt"
	"io"
	"strconv"
)

// XRefEntry is one row of the cross-reference table.
type XRefEntry struct {
	Pos        int64
	Generation uint16
	Free       bool
}

// freeHead is the first entry of every cross-reference table.
var freeHead = XRefEntry{Pos: 0, Generation: 65535, Free: true}

// PDF writes the 20-byte cross-reference table line for the entry.
func (entry XRefEntry) PDF(w io.Writer) error {
	use := 'n'
	if entry.Free {
		use = 'f'
	}
	_, err := fmt.Fprintf(w, "%010d %05d %c \n", entry.Pos, entry.Generation, use)
	return err
}

// WriteXRef writes a cross-reference table with a single subsection starting
// at object 0.  The subsection header declares size entries, which may differ
// from len(entries).
func WriteXRef(w io.Writer, entries []XRefEntry, size int) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", size)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		err = entry.PDF(w)
		if err != nil {
			return err
		}
	}
	return nil
}

// Trailer holds the information written after the cross-reference table.
type Trailer struct {
	// Root is the object number of the document catalog.
	Root int

	// Size is the number of objects, plus one for the free head entry.
	Size int

	// StartXRef is the byte offset written after the startxref keyword.
	StartXRef int64
}

// PDF writes the trailer dictionary, the startxref pointer and the
// end-of-file marker to w.
func (t *Trailer) PDF(w io.Writer) error {
	_, err := w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	dict := Dict{
		{"Size", Integer(t.Size)},
		{"Root", Reference(t.Root)},
	}
	err = dict.PDF(w)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\nstartxref\n%d\n%%%%EOF\n", t.StartXRef)
	return err
}

// XRefTable is the cross-reference information read back from a PDF file.
type XRefTable struct {
	Version Version

	// XRefPos is the position of the "xref" keyword.
	XRefPos int64

	// Start is the first object number of the subsection.
	Start int

	// Declared is the number of entries given in the subsection header.
	Declared int

	// Entries are the entries actually present in the file.
	Entries []XRefEntry

	Trailer Trailer
}

// ReadXRef reads the header, the last cross-reference table and the trailer
// of a PDF file.
//
// The "xref" keyword is located by searching backwards from the last
// startxref, so that files where startxref does not point at the table can
// still be read.
func ReadXRef(data []byte) (*XRefTable, error) {
	res := &XRefTable{}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, &MalformedFileError{Err: errors.New("header not found")}
	}
	eol := bytes.IndexAny(data, "\r\n")
	if eol < 0 {
		return nil, &MalformedFileError{Err: errors.New("header not found")}
	}
	ver, err := ParseVersion(string(data[5:eol]))
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	res.Version = ver

	sx := bytes.LastIndex(data, []byte("startxref"))
	if sx < 0 {
		return nil, &MalformedFileError{Err: errors.New("startxref not found")}
	}
	tail := bytes.Fields(data[sx+len("startxref"):])
	if len(tail) == 0 {
		return nil, &MalformedFileError{Err: errors.New("missing startxref value"), Pos: int64(sx)}
	}
	res.Trailer.StartXRef, err = strconv.ParseInt(string(tail[0]), 10, 64)
	if err != nil || res.Trailer.StartXRef < 0 || res.Trailer.StartXRef > int64(len(data)) {
		return nil, &MalformedFileError{Err: errors.New("invalid startxref value"), Pos: int64(sx)}
	}

	xrefPos := bytes.LastIndex(data[:sx], []byte("\nxref"))
	if xrefPos < 0 {
		return nil, &MalformedFileError{Err: errors.New("xref table not found")}
	}
	xrefPos++
	res.XRefPos = int64(xrefPos)

	trailerPos := bytes.Index(data[xrefPos:sx], []byte("trailer"))
	if trailerPos < 0 {
		return nil, &MalformedFileError{Err: errors.New("trailer not found"), Pos: int64(xrefPos)}
	}
	trailerPos += xrefPos

	lines := bytes.FieldsFunc(data[xrefPos:trailerPos], func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	if len(lines) < 2 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("xref")) {
		return nil, &MalformedFileError{Err: errors.New("malformed xref table"), Pos: int64(xrefPos)}
	}
	var sub [2]int
	fields := bytes.Fields(lines[1])
	if len(fields) != 2 {
		return nil, &MalformedFileError{Err: errors.New("malformed xref subsection"), Pos: int64(xrefPos)}
	}
	for i, field := range fields {
		sub[i], err = strconv.Atoi(string(field))
		if err != nil || sub[i] < 0 {
			return nil, &MalformedFileError{Err: errors.New("malformed xref subsection"), Pos: int64(xrefPos)}
		}
	}
	res.Start, res.Declared = sub[0], sub[1]

	for _, line := range lines[2:] {
		entry, err := decodeXRefEntry(line)
		if err != nil {
			return nil, &MalformedFileError{Err: err, Pos: int64(xrefPos)}
		}
		res.Entries = append(res.Entries, entry)
	}
	if len(res.Entries) > res.Declared {
		return nil, &MalformedFileError{Err: errors.New("too many xref entries"), Pos: int64(xrefPos)}
	}

	err = decodeTrailerDict(&res.Trailer, data[trailerPos+len("trailer"):sx])
	if err != nil {
		return nil, &MalformedFileError{Err: err, Pos: int64(trailerPos)}
	}

	return res, nil
}

func decodeXRefEntry(line []byte) (XRefEntry, error) {
	fields := bytes.Fields(line)
	if len(fields) != 3 || len(fields[0]) != 10 || len(fields[1]) != 5 {
		return XRefEntry{}, fmt.Errorf("malformed xref entry %q", line)
	}
	pos, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil {
		return XRefEntry{}, fmt.Errorf("malformed xref entry %q", line)
	}
	gen, err := strconv.ParseUint(string(fields[1]), 10, 16)
	if err != nil {
		return XRefEntry{}, fmt.Errorf("malformed xref entry %q", line)
	}
	entry := XRefEntry{Pos: pos, Generation: uint16(gen)}
	switch string(fields[2]) {
	case "n":
		// pass
	case "f":
		entry.Free = true
	default:
		return XRefEntry{}, fmt.Errorf("malformed xref entry %q", line)
	}
	return entry, nil
}

// decodeTrailerDict extracts /Size and /Root from the trailer dictionary.
// Only the simple layout written by this package is understood.
func decodeTrailerDict(t *Trailer, body []byte) error {
	body = bytes.ReplaceAll(body, []byte("<<"), []byte(" "))
	body = bytes.ReplaceAll(body, []byte(">>"), []byte(" "))
	tokens := bytes.Fields(body)

	var hasSize, hasRoot bool
	for i := 0; i+1 < len(tokens); i++ {
		var err error
		switch string(tokens[i]) {
		case "/Size":
			t.Size, err = strconv.Atoi(string(tokens[i+1]))
			hasSize = true
		case "/Root":
			if i+3 >= len(tokens) || string(tokens[i+3]) != "R" {
				return errors.New("malformed /Root reference")
			}
			t.Root, err = strconv.Atoi(string(tokens[i+1]))
			hasRoot = true
		}
		if err != nil {
			return fmt.Errorf("malformed trailer: %w", err)
		}
	}
	if !hasSize {
		return errors.New("missing /Size in trailer")
	}
	if !hasRoot {
		return errors.New("missing /Root in trailer")
	}
	return nil
}

// CheckOffsets verifies that every in-use entry of t points to the start of
// the corresponding object in data.  The startxref value must either point
// to the "xref" keyword, or to the first object not listed in the table.
func CheckOffsets(data []byte, t *XRefTable) error {
	for i, entry := range t.Entries {
		if entry.Free {
			continue
		}
		if !hasObjectAt(data, entry.Pos, t.Start+i) {
			return &MalformedFileError{
				Err: fmt.Errorf("xref entry for object %d is off", t.Start+i),
				Pos: entry.Pos,
			}
		}
	}

	pos := t.Trailer.StartXRef
	if pos == t.XRefPos {
		return nil
	}
	if hasObjectAt(data, pos, t.Start+len(t.Entries)) {
		return nil
	}
	return &MalformedFileError{
		Err: errors.New("startxref points neither to xref nor to the last object"),
		Pos: pos,
	}
}

func hasObjectAt(data []byte, pos int64, number int) bool {
	if pos < 0 || pos > int64(len(data)) {
		return false
	}
	prefix := strconv.Itoa(number) + " 0 obj"
	return bytes.HasPrefix(data[pos:], []byte(prefix))
}
