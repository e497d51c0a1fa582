package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jhamby/sharray/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(src string) (toks, errs []string) {
	var (
		s      Scanner
		tokVal token.Value
	)
	s.Init("t", []byte(src), func(pos token.Position, msg string) {
		errs = append(errs, fmt.Sprintf("%s: %s", pos, msg))
	})
	for {
		tok := s.Scan(&tokVal)
		str := tok.String()
		if lit := tok.Literal(tokVal); lit != "" {
			str += " " + lit
		}
		toks = append(toks, str)
		if tok == token.EOF {
			return toks, errs
		}
	}
}

func TestScanTokens(t *testing.T) {
	cases := []struct {
		in   string
		want []string
		errs []string
	}{
		{
			in:   "insert a 1 \"x\"\n",
			want: []string{"word insert", "word a", "int literal 1", `string literal "x"`, "newline", "end of file"},
		},
		{
			in:   `rshift a -3 'raw\n'`,
			want: []string{"word rshift", "word a", "int literal -3", `string literal "raw\\n"`, "end of file"},
		},
		{
			in:   "- -x 12ab 0x10 a=b",
			want: []string{"word -", "word -x", "word 12ab", "word 0x10", "word a=b", "end of file"},
		},
		{
			in:   "# comment\r\nget",
			want: []string{"comment # comment", "newline", "word get", "end of file"},
		},
		{
			in:   `"a\tb\x41\$"`,
			want: []string{`string literal "a\tbA$"`, "end of file"},
		},
		{
			in:   `'it''s'"x"y`,
			want: []string{`string literal "it"`, `string literal "s"`, `string literal "x"`, "word y", "end of file"},
		},
		{
			in:   "echo \"été\" à",
			want: []string{"word echo", `string literal "été"`, "word à", "end of file"},
		},
		{
			in:   `"unterminated`,
			want: []string{`string literal "unterminated"`, "end of file"},
			errs: []string{"t:1:1: string literal not terminated"},
		},
		{
			in:   "'open\nx",
			want: []string{`string literal "open"`, "newline", "word x", "end of file"},
			errs: []string{"t:1:1: string literal not terminated"},
		},
		{
			in:   `"bad\q"`,
			want: []string{`string literal "badq"`, "end of file"},
			errs: []string{`t:1:5: invalid escape sequence \q`},
		},
		{
			in:   `"\xZ1"`,
			want: []string{`string literal "Z1"`, "end of file"},
			errs: []string{"t:1:2: invalid hexadecimal escape sequence"},
		},
		{
			in:   "99999999999999999999",
			want: []string{"int literal 0", "end of file"},
			errs: []string{"t:1:1: integer literal out of range: 99999999999999999999"},
		},
		{
			in:   "a\x01b",
			want: []string{"word a", "illegal token", "word b", "end of file"},
			errs: []string{"t:1:2: illegal character U+0001"},
		},
		{
			in:   "#!/usr/bin/env sharray\necho hi",
			want: []string{"newline", "word echo", "word hi", "end of file"},
		},
		{
			in:   "\xef\xbb\xbfsize a",
			want: []string{"word size", "word a", "end of file"},
		},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			toks, errs := scanAll(c.in)
			assert.Equal(t, c.want, toks)
			assert.Equal(t, c.errs, errs)
		})
	}
}

func TestScanPositions(t *testing.T) {
	var (
		s      Scanner
		tokVal token.Value
	)
	s.Init("t", []byte("a  bc\n\t\"d\"\n"), nil)

	var got []string
	for tok := s.Scan(&tokVal); tok != token.EOF; tok = s.Scan(&tokVal) {
		got = append(got, token.MakePosition("t", tokVal.Pos).String())
	}
	assert.Equal(t, []string{"t:1:1", "t:1:4", "t:1:6", "t:2:2", "t:2:5"}, got)
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sha")
	bad := filepath.Join(dir, "bad.sha")
	require.NoError(t, os.WriteFile(good, []byte("size a\n"), 0600))
	require.NoError(t, os.WriteFile(bad, []byte("echo \"x\n\x02\n"), 0600))

	toks, err := ScanFiles(context.Background(), good, filepath.Join(dir, "missing.sha"), bad)
	require.Error(t, err)
	require.Len(t, toks, 3)
	assert.Len(t, toks[0], 4)
	assert.Empty(t, toks[1])
	assert.Equal(t, token.ILLEGAL, toks[2][3].Token)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.Len(t, joined.Unwrap(), 3)

	var sb strings.Builder
	PrintError(&sb, err)
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "missing.sha: ")
	assert.Contains(t, lines[1], "bad.sha:1:6: string literal not terminated")
	assert.Contains(t, lines[2], "bad.sha:2:1: illegal character U+0002")

	_, err = ScanFiles(context.Background())
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ScanFiles(ctx, good)
	assert.ErrorIs(t, err, context.Canceled)
}
