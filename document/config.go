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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/txt2pdf/pdf"
)

// Config describes the page geometry and the font used for the text.
type Config struct {
	// MediaBox is the page size.
	MediaBox rect.Rect

	// TextOrigin is the start of the first text line, measured from the
	// lower left corner of the page.
	TextOrigin vec.Vec2

	// FontName is the name of the font in the resource dictionary.
	FontName pdf.Name

	// BaseFont is the name of one of the standard Type 1 fonts.
	BaseFont pdf.Name

	FontSize float64

	// Leading is the distance between consecutive baselines.
	Leading float64

	// WinAnsi selects WinAnsiEncoding for the font.  If set, lines are
	// converted to Windows-1252 before they are written.  Otherwise the
	// UTF-8 bytes of the lines are written unchanged.
	WinAnsi bool

	// TabWidth, if positive, causes tab characters to be replaced by
	// spaces, up to the next multiple of TabWidth columns.
	TabWidth int
}

// DefaultConfig returns the configuration for A4 pages, with 12pt
// Times-Roman on a 16pt leading, starting at (50, 770).
func DefaultConfig() *Config {
	return &Config{
		MediaBox:   A4,
		TextOrigin: vec.Vec2{X: 50, Y: 770},
		FontName:   "F0",
		BaseFont:   "Times-Roman",
		FontSize:   12,
		Leading:    16,
	}
}
