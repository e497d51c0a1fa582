// Some of the scanner package is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jhamby/sharray/lang/token"
)

// TokenAndValue combines the token type with the token value type in the same
// struct.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// ScanFiles is a helper function that tokenizes the source files and returns
// the list of tokens, grouped by the file at the same index, and produces any
// error encountered. The error, if non-nil, is guaranteed to implement
// Unwrap() []error.
func ScanFiles(ctx context.Context, files ...string) ([][]TokenAndValue, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var (
		s      Scanner
		tokVal token.Value
		errs   []error
	)

	tokensByFile := make([][]TokenAndValue, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		b, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", token.Position{Filename: file}, err))
			continue
		}

		s.Init(file, b, func(pos token.Position, msg string) {
			errs = append(errs, fmt.Errorf("%s: %s", pos, msg))
		})
		for {
			tok := s.Scan(&tokVal)
			tokensByFile[i] = append(tokensByFile[i], TokenAndValue{
				Token: tok,
				Value: tokVal,
			})
			if tok == token.EOF {
				break
			}
		}
	}
	return tokensByFile, errors.Join(errs...)
}

// PrintError prints err to w, one line per error if err wraps multiple
// errors.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range errs.Unwrap() {
			PrintError(w, e)
		}
		return
	}
	fmt.Fprintln(w, err)
}

// Scanner tokenizes array script source files for the parser to consume.
type Scanner struct {
	// immutable state after Init
	filename string
	src      []byte
	err      func(pos token.Position, msg string) // error handler for scanning errors

	// mutable scanning state
	sb          strings.Builder // writes to Builder never fail, so errors are ignored
	invalidByte byte            // when cur==RuneError due to failed utf8 decode, this is the invalid byte
	cur         rune            // current character
	line, col   int             // line/col position of cur
	off         int             // character offset in bytes of cur
	roff        int             // reading offset in bytes (position after current character)
}

var (
	// byte order mark, only permitted as very first characters
	bom = [3]byte{0xEF, 0xBB, 0xBF}
	// hashbang line, only permitted as very first line (or immediately after
	// bom)
	hashBang = [2]byte{'#', '!'}
)

// Init initializes the scanner to tokenize a new file.
func (s *Scanner) Init(filename string, src []byte, errHandler func(token.Position, string)) {
	s.filename = filename
	s.src = src
	s.err = errHandler

	s.sb.Reset()
	s.invalidByte = 0
	s.cur = ' '
	s.line, s.col = 1, 0
	s.off = 0
	s.roff = 0

	// skip initial BOM if present
	if len(src) >= len(bom) && bytes.Equal(src[:len(bom)], bom[:]) {
		s.off += len(bom)
		s.roff += len(bom)
	}
	// skip initial hashbang line if present, keeping its newline
	if len(src)-s.roff >= len(hashBang) && bytes.Equal(src[s.roff:s.roff+len(hashBang)], hashBang[:]) {
		for s.roff < len(src) && src[s.roff] != '\n' {
			s.roff++
		}
		s.off = s.roff
	}
	s.advance()
}

// read the next Unicode char into s.cur; s.cur < 0 means end-of-file.
func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		if s.cur == '\n' {
			s.line++
			s.col = 0
		}
		s.cur = -1
		return
	}

	s.off = s.roff
	if s.cur == '\n' {
		s.line++
		s.col = 0
	}

	// fast path if the rune is an ASCII char, no decoding necessary
	s.invalidByte = 0
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		// not ASCII
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.line, s.col+1, "illegal UTF-8 encoding")
			// store the actual invalid byte
			s.invalidByte = s.src[s.roff]
		}
	}
	s.roff += w
	s.cur = r
	s.col++
}

func (s *Scanner) error(line, col int, msg string) {
	checkSafePos(line, col)
	if s.err == nil {
		return
	}
	s.err(token.MakePosition(s.filename, token.MakePos(line, col)), msg)
}

func (s *Scanner) errorf(line, col int, msg string, args ...any) {
	s.error(line, col, fmt.Sprintf(msg, args...))
}

func checkSafePos(line, col int) {
	if line > token.MaxLines || col > token.MaxCols {
		if line > token.MaxLines {
			panic(fmt.Sprintf("number of lines exceeded: %d", line))
		}
		panic(fmt.Sprintf("number of columns exceeded at line %d: %d", line, col))
	}
}

func makeSafePos(line, col int) token.Pos {
	checkSafePos(line, col)
	return token.MakePos(line, col)
}

// Scan returns the next token in the source file.
func (s *Scanner) Scan(tokVal *token.Value) (tok token.Token) {
	s.skipWhitespace()

	// current token start
	startOff, startLine, startCol := s.off, s.line, s.col
	pos := makeSafePos(startLine, startCol)

	switch cur := s.cur; {
	case cur == -1:
		tok = token.EOF
		*tokVal = token.Value{Pos: pos}

	case cur == '\n':
		s.advance()
		tok = token.NEWLINE
		*tokVal = token.Value{Raw: "\n", Pos: pos}

	case cur == '#':
		tok = token.COMMENT
		lit := s.comment()
		*tokVal = token.Value{Raw: lit, String: lit, Pos: pos}

	case cur == '"' || cur == '\'':
		s.advance()
		tok = token.STRING
		var lit, val string
		if cur == '"' {
			lit, val = s.doubleQuoted(startOff, startLine, startCol)
		} else {
			lit, val = s.singleQuoted(startOff, startLine, startCol)
		}
		*tokVal = token.Value{Raw: lit, String: val, Pos: pos}

	case isWordChar(cur):
		lit := s.word()
		*tokVal = token.Value{Raw: lit, Pos: pos}
		tok = token.WORD
		if isInt(lit) {
			tok = token.INT
			n, err := strconv.ParseInt(lit, 10, 64)
			if err != nil {
				s.errorf(startLine, startCol, "integer literal out of range: %s", lit)
				n = 0
			}
			tokVal.Int = n
		}

	default:
		s.advance() // always make progress
		if cur == utf8.RuneError && s.invalidByte > 0 {
			cur = rune(s.invalidByte)
			s.invalidByte = 0
		}
		s.errorf(startLine, startCol, "illegal character %#U", cur)
		tok = token.ILLEGAL
		*tokVal = token.Value{Raw: string(cur), Pos: pos}
	}
	return tok
}

func (s *Scanner) word() string {
	start := s.off
	for isWordChar(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

func (s *Scanner) comment() string {
	start := s.off
	for s.cur != '\n' && s.cur != -1 {
		s.advance()
	}
	return strings.TrimRight(string(s.src[start:s.off]), "\r")
}

func (s *Scanner) skipWhitespace() {
	for isWhitespace(s.cur) {
		s.advance()
	}
}

// newlines are significant, they terminate statements
func isWhitespace(rn rune) bool {
	return rn == ' ' || rn == '\t' || rn == '\r'
}

func isWordChar(rn rune) bool {
	switch {
	case rn <= ' ', rn == '"', rn == '\'', rn == '#', rn == 0x7f:
		return false
	case rn < utf8.RuneSelf:
		return true
	default:
		return rn != utf8.RuneError && unicode.IsGraphic(rn) && !unicode.IsSpace(rn)
	}
}

func isInt(lit string) bool {
	lit = strings.TrimPrefix(lit, "-")
	if lit == "" {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if lit[i] < '0' || lit[i] > '9' {
			return false
		}
	}
	return true
}
