// seehuhn.de/go/dxf - a library for reading and writing DXF files
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

package dxf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// A Scanner tokenizes a DXF stream into tags.  It keeps track of line
// numbers for diagnostics and supports pushing back a single tag, which is
// needed because a record is terminated by the 0-coded tag introducing the
// next record, and that tag must remain available to the caller.
//
// After a structural error the Scanner is closed: all further calls return
// the same error.
type Scanner struct {
	r    *bufio.Reader
	line int

	pending    Tag
	hasPending bool

	// dec transcodes value lines of pre-AC1021 files from the drawing
	// codepage to UTF-8.  It is nil for files which are already UTF-8.
	dec *encoding.Decoder

	err error
}

// NewScanner prepares a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// NextTag returns the next tag of the stream.  At the end of input the
// error is [io.EOF].  A non-numeric group code line or a stream ending
// between a group code and its value yields a [*MalformedTagError] and
// closes the Scanner.
func (s *Scanner) NextTag() (Tag, error) {
	if s.hasPending {
		s.hasPending = false
		return s.pending, nil
	}
	if s.err != nil {
		return Tag{}, s.err
	}

	codeLine, codeAt, err := s.readLine()
	// Skip blank lines before a group code; some writers leave trailing
	// white space at the end of the file.
	for err == nil && strings.TrimSpace(codeLine) == "" {
		codeLine, codeAt, err = s.readLine()
	}
	if err != nil {
		if err == io.EOF {
			s.err = io.EOF
		} else {
			s.err = &MalformedTagError{Line: codeAt, Err: err}
		}
		return Tag{}, s.err
	}

	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		s.err = &MalformedTagError{
			Line: codeAt,
			Err:  fmt.Errorf("invalid group code %q", strings.TrimSpace(codeLine)),
		}
		return Tag{}, s.err
	}

	value, valueAt, err := s.readLine()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		s.err = &MalformedTagError{Line: valueAt, Err: err}
		return Tag{}, s.err
	}

	if s.dec != nil && !isASCII(value) {
		if dec, err := s.dec.String(value); err == nil {
			value = dec
		}
	}

	return Tag{Code: code, Value: value}, nil
}

// PushBack returns tag to the Scanner, so that the next call to NextTag
// yields it again.  At most one tag can be pending; pushing back a second
// one is a programming error and panics.
func (s *Scanner) PushBack(tag Tag) {
	if s.hasPending {
		panic("dxf: second PushBack without intervening NextTag")
	}
	s.pending = tag
	s.hasPending = true
}

// Line returns the number of the last input line read.  Line numbers start
// at 1 and are used only for diagnostics.
func (s *Scanner) Line() int {
	return s.line
}

// SetEncoding installs a character decoder for value lines.  The file
// driver calls this after the $DWGCODEPAGE header variable has been seen.
func (s *Scanner) SetEncoding(dec *encoding.Decoder) {
	s.dec = dec
}

// readLine reads one physical line, without the line terminator.  The
// returned line number is the position of the line just read.  A final
// line without trailing newline is accepted; io.EOF is only returned when
// no data was read at all.
func (s *Scanner) readLine() (string, int, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF || line == "" {
			return "", s.line + 1, err
		}
	}
	s.line++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, s.line, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
