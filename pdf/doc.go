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

// Package pdf writes minimal PDF files.
//
// The types Null, Bool, Integer, Real, String, Name, Reference, Array, Dict
// and Stream implement the native PDF object types.  All of these implement
// the Object interface, and Format can be used to obtain the PDF
// representation of any object.
//
// A File combines numbered indirect objects into a complete document:
//
//	f := &pdf.File{
//	    Version: pdf.V1_7,
//	    Catalog: 1,
//	    Objects: []pdf.Indirect{
//	        {Number: 1, Obj: pdf.Dict{
//	            {Key: "Type", Value: pdf.Name("Catalog")},
//	            {Key: "Pages", Value: pdf.Reference(2)},
//	        }},
//	        ...
//	    },
//	}
//	_, err := f.WriteTo(os.Stdout)
//
// The written file consists of the header, the objects in list order, the
// cross-reference table and the trailer.  ReadXRef and CheckOffsets can be
// used to verify the cross-reference information of a written file.
package pdf
