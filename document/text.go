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
	"bufio"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/txt2pdf/pdf"
)

// encodeLine converts a line of text into the string used in the
// content stream.
func (cfg *Config) encodeLine(line string) pdf.String {
	if cfg.TabWidth > 0 {
		line = expandTabs(line, cfg.TabWidth)
	}
	if !cfg.WinAnsi {
		return pdf.String(line)
	}

	line = norm.NFC.String(line)
	res := make(pdf.String, 0, len(line))
	for _, r := range line {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		res = append(res, c)
	}
	return res
}

func expandTabs(line string, tabWidth int) string {
	if !strings.ContainsRune(line, '\t') {
		return line
	}
	b := &strings.Builder{}
	col := 0
	for _, r := range line {
		if r == '\t' {
			for {
				b.WriteByte(' ')
				col++
				if col%tabWidth == 0 {
					break
				}
			}
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// Paginate splits lines into pages of at most perPage lines each.
// Only the last page can be shorter.  If there are no lines, no pages
// are returned.  If perPage is not positive, all lines go on a single
// page.
func Paginate(lines []string, perPage int) [][]string {
	if len(lines) == 0 {
		return nil
	}
	if perPage <= 0 {
		return [][]string{lines}
	}
	pages := make([][]string, 0, (len(lines)+perPage-1)/perPage)
	for len(lines) > perPage {
		pages = append(pages, lines[:perPage:perPage])
		lines = lines[perPage:]
	}
	return append(pages, lines)
}

// maxLineLength is the longest line accepted by ReadLines.
const maxLineLength = 1 << 20

// ReadLines reads all lines from r.  Line endings, both "\n" and "\r\n",
// are removed.  A final line without a line ending is included.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
