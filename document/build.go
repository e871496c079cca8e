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

// Package document turns pages of text lines into a PDF file.
//
// The object numbers of the generated file follow a fixed scheme.  For N
// pages, object 1 is the catalog, object 2 the page tree root, object 3 the
// resource dictionary, objects 4 to N+3 are the pages and objects N+4 to
// 2N+3 are the page content streams, in page order.
package document

import (
	"math"

	"seehuhn.de/go/txt2pdf/pdf"
)

// Object numbers of the fixed objects.
const (
	catalogNumber   = 1
	pageTreeNumber  = 2
	resourcesNumber = 3
	firstPageNumber = 4
)

// Build constructs a PDF file with one page for every element of pages.
// Each page is an ordered list of text lines, which must not contain
// newline characters.  Splitting the text into pages is up to the caller,
// see Paginate.
//
// If cfg is nil, DefaultConfig is used.
func Build(pages [][]string, cfg *Config) *pdf.File {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	n := len(pages)

	kids := make(pdf.Array, n)
	for i := range pages {
		kids[i] = pdf.Reference(firstPageNumber + i)
	}

	objects := make([]pdf.Indirect, 0, 3+2*n)
	objects = append(objects,
		pdf.Indirect{
			Number: catalogNumber,
			Obj: pdf.Dict{
				{Key: "Type", Value: pdf.Name("Catalog")},
				{Key: "Pages", Value: pdf.Reference(pageTreeNumber)},
			},
		},
		pdf.Indirect{
			Number: pageTreeNumber,
			Obj: pdf.Dict{
				{Key: "Type", Value: pdf.Name("Pages")},
				{Key: "Kids", Value: kids},
				{Key: "Count", Value: pdf.Integer(n)},
			},
		},
		pdf.Indirect{
			Number: resourcesNumber,
			Obj:    cfg.resources(),
		},
	)

	mediaBox := pdf.Array{
		number(cfg.MediaBox.LLx),
		number(cfg.MediaBox.LLy),
		number(cfg.MediaBox.URx),
		number(cfg.MediaBox.URy),
	}
	for i := range pages {
		objects = append(objects, pdf.Indirect{
			Number: firstPageNumber + i,
			Obj: pdf.Dict{
				{Key: "Type", Value: pdf.Name("Page")},
				{Key: "Parent", Value: pdf.Reference(pageTreeNumber)},
				{Key: "Resources", Value: pdf.Reference(resourcesNumber)},
				{Key: "MediaBox", Value: mediaBox},
				{Key: "Contents", Value: pdf.Reference(firstPageNumber + n + i)},
			},
		})
	}

	for i, lines := range pages {
		objects = append(objects, pdf.Indirect{
			Number: firstPageNumber + n + i,
			Obj:    cfg.contents(lines),
		})
	}

	return &pdf.File{
		Version: pdf.V1_7,
		Catalog: catalogNumber,
		Objects: objects,
	}
}

// resources returns the resource dictionary shared by all pages.
func (cfg *Config) resources() pdf.Dict {
	font := pdf.Dict{
		{Key: "Type", Value: pdf.Name("Font")},
		{Key: "BaseFont", Value: cfg.BaseFont},
		{Key: "Subtype", Value: pdf.Name("Type1")},
	}
	if cfg.WinAnsi {
		font = append(font, pdf.DictEntry{Key: "Encoding", Value: pdf.Name("WinAnsiEncoding")})
	}
	return pdf.Dict{
		{Key: "Font", Value: pdf.Dict{
			{Key: cfg.FontName, Value: font},
		}},
	}
}

// number returns x as an Integer if x is integral, and as a Real otherwise.
func number(x float64) pdf.Object {
	if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
		return pdf.Integer(x)
	}
	return pdf.Real(x)
}
