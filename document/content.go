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
	"bytes"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/txt2pdf/pdf"
)

// contents returns the content stream for a page showing the given lines.
//
// The stream moves the origin to cfg.TextOrigin, selects the font and the
// leading, and then shows one line at a time, each followed by a move to
// the start of the next line.
func (cfg *Config) contents(lines []string) pdf.Stream {
	buf := &bytes.Buffer{}

	m := matrix.Translate(cfg.TextOrigin.X, cfg.TextOrigin.Y)
	for _, x := range m {
		_ = pdf.Real(x).PDF(buf)
		buf.WriteByte(' ')
	}
	buf.WriteString("cm\nBT\n")

	_ = cfg.FontName.PDF(buf)
	buf.WriteByte(' ')
	_ = number(cfg.FontSize).PDF(buf)
	buf.WriteString(" Tf\n")
	_ = number(cfg.Leading).PDF(buf)
	buf.WriteString(" TL\n")

	for _, line := range lines {
		_ = cfg.encodeLine(line).PDF(buf)
		buf.WriteString(" Tj T*\n")
	}
	buf.WriteString("ET")

	return pdf.Stream(buf.Bytes())
}
