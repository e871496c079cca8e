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

// Txt2pdf converts a plain text file into a PDF file.
//
// Usage:
//
//	txt2pdf [flags] [input.txt]
//
// If no input file is given, or if the input file is "-", the text is read
// from standard input.  The PDF file is written to the file given by -o, or
// to standard output if -o is not given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/txt2pdf/document"
	"seehuhn.de/go/txt2pdf/pdf"
)

// options collects the command line settings for a conversion.
type options struct {
	linesPerPage int
	winAnsi      bool
	tabWidth     int
	completeXRef bool
	verify       bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("txt2pdf: ")

	out := flag.String("o", "", "output file name (default: standard output)")
	force := flag.Bool("f", false, "overwrite the output file, or write to a terminal")
	opt := &options{}
	flag.IntVar(&opt.linesPerPage, "lines", 45, "number of lines per page")
	flag.BoolVar(&opt.winAnsi, "winansi", false, "convert the text to WinAnsiEncoding")
	flag.IntVar(&opt.tabWidth, "tabs", 0, "expand tabs to this width (0: keep tabs)")
	flag.BoolVar(&opt.completeXRef, "complete-xref", false, "list every object in the xref table")
	flag.BoolVar(&opt.verify, "verify", false, "check the cross-reference table of the output")
	flag.Parse()

	if flag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "error: too many input files given")
		flag.Usage()
		os.Exit(1)
	}
	inName := "-"
	if flag.NArg() == 1 {
		inName = flag.Arg(0)
	}

	err := run(inName, *out, *force, opt)
	if err != nil {
		log.Fatal(err)
	}
}

func run(inName, outName string, force bool, opt *options) error {
	if outName == "" {
		if !force && term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal, use -o or -f")
		}
	} else if !force {
		if _, err := os.Stat(outName); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", outName)
		}
	}

	var in io.Reader = os.Stdin
	if inName != "-" {
		fd, err := os.Open(inName)
		if err != nil {
			return err
		}
		defer fd.Close()
		in = fd
	}

	if outName == "" {
		return convert(os.Stdout, in, opt)
	}

	fd, err := os.Create(outName)
	if err != nil {
		return err
	}
	err = convert(fd, in, opt)
	if err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// convert reads text from r and writes the corresponding PDF file to w.
func convert(w io.Writer, r io.Reader, opt *options) error {
	lines, err := document.ReadLines(r)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	cfg := document.DefaultConfig()
	cfg.WinAnsi = opt.winAnsi
	cfg.TabWidth = opt.tabWidth

	pages := document.Paginate(lines, opt.linesPerPage)
	data := document.Build(pages, cfg).Bytes(&pdf.WriterOptions{
		CompleteXRef: opt.completeXRef,
	})

	if opt.verify {
		table, err := pdf.ReadXRef(data)
		if err == nil {
			err = pdf.CheckOffsets(data, table)
		}
		if err != nil {
			return fmt.Errorf("verifying output: %w", err)
		}
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
