// Package script implements a small line-oriented language to build, query
// and print arrays. Each line holds a command name followed by its
// arguments, the first of which usually names the array to operate on.
package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jhamby/sharray/lang/scanner"
	"github.com/jhamby/sharray/lang/token"
)

// Stmt is a single statement: a command and its arguments.
type Stmt struct {
	Pos  token.Position
	Cmd  string
	Args []Arg
}

// Arg is an argument of a statement.
type Arg struct {
	Tok token.Token
	Val token.Value
}

// Text returns the value of the argument as a plain string.
func (a Arg) Text() string { return a.Tok.Text(a.Val) }

// String returns the statement in source form, with string arguments
// quoted.
func (s *Stmt) String() string {
	var sb strings.Builder
	sb.WriteString(s.Cmd)
	for _, arg := range s.Args {
		sb.WriteByte(' ')
		sb.WriteString(arg.Tok.Literal(arg.Val))
	}
	return sb.String()
}

// ParseFiles is a helper function that parses the source files and returns
// the statements, grouped by the file at the same index, and any error
// encountered. The error, if non-nil, is guaranteed to implement Unwrap()
// []error.
func ParseFiles(ctx context.Context, files ...string) ([][]*Stmt, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var (
		p    parser
		errs []error
	)
	res := make([][]*Stmt, len(files))
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

		p.init(file, b)
		res[i] = p.parseScript()
		errs = append(errs, p.errs...)
	}
	return res, errors.Join(errs...)
}

// Parse parses a single script from src, using filename for position
// reporting. The error, if non-nil, is guaranteed to implement Unwrap()
// []error.
func Parse(filename string, src []byte) ([]*Stmt, error) {
	var p parser
	p.init(filename, src)
	stmts := p.parseScript()
	return stmts, errors.Join(p.errs...)
}

type parser struct {
	scanner  scanner.Scanner
	filename string
	errs     []error

	// current token
	tok token.Token
	val token.Value
}

func (p *parser) init(filename string, src []byte) {
	p.filename = filename
	p.errs = nil
	p.scanner.Init(filename, src, p.error)

	// advance to first token
	p.advance()
}

func (p *parser) error(pos token.Position, msg string) {
	p.errs = append(p.errs, fmt.Errorf("%s: %s", pos, msg))
}

func (p *parser) pos() token.Position {
	return token.MakePosition(p.filename, p.val.Pos)
}

// comments are not part of the statements
func (p *parser) advance() {
	for {
		p.tok = p.scanner.Scan(&p.val)
		if p.tok != token.COMMENT {
			return
		}
	}
}

func (p *parser) skipLine() {
	for p.tok != token.NEWLINE && p.tok != token.EOF {
		p.advance()
	}
}

func (p *parser) parseScript() []*Stmt {
	var stmts []*Stmt
	for p.tok != token.EOF {
		if stmt := p.parseLine(); stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.tok == token.NEWLINE {
			p.advance()
		}
	}
	return stmts
}

// parseLine parses the statement on the current line, if any. It returns nil
// for blank lines and for lines with syntax errors.
func (p *parser) parseLine() *Stmt {
	switch p.tok {
	case token.NEWLINE:
		return nil
	case token.WORD:
	case token.ILLEGAL:
		// already reported by the scanner
		p.skipLine()
		return nil
	default:
		p.error(p.pos(), fmt.Sprintf("expected command, found %#v", p.tok))
		p.skipLine()
		return nil
	}

	stmt := &Stmt{Pos: p.pos(), Cmd: p.val.Raw}
	p.advance()
	for p.tok != token.NEWLINE && p.tok != token.EOF {
		if p.tok == token.ILLEGAL {
			p.skipLine()
			return nil
		}
		stmt.Args = append(stmt.Args, Arg{Tok: p.tok, Val: p.val})
		p.advance()
	}
	return stmt
}
