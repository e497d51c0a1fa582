package scanner

import "unicode/utf8"

// singleQuoted scans a single-quoted string, in which no character is
// special. The opening quote is already consumed.
func (s *Scanner) singleQuoted(startOff, startLine, startCol int) (lit, decoded string) {
	s.sb.Reset()
	for {
		cur := s.cur
		if cur == '\n' || cur < 0 {
			s.error(startLine, startCol, "string literal not terminated")
			break
		}
		s.advance()
		if cur == '\'' {
			break
		}
		s.writeRune(cur)
	}
	return string(s.src[startOff:s.off]), s.sb.String()
}

// doubleQuoted scans a double-quoted string, in which backslash escapes are
// decoded. The opening quote is already consumed.
func (s *Scanner) doubleQuoted(startOff, startLine, startCol int) (lit, decoded string) {
	s.sb.Reset()
	for {
		cur := s.cur
		if cur == '\n' || cur < 0 {
			s.error(startLine, startCol, "string literal not terminated")
			break
		}
		s.advance()
		if cur == '"' {
			break
		}
		if cur == '\\' {
			s.escape()
			continue
		}
		s.writeRune(cur)
	}
	return string(s.src[startOff:s.off]), s.sb.String()
}

var simpleEscapes = [...]byte{
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'$':  '$',
}

// escape decodes an escape sequence, the leading backslash is already
// consumed. In case of an invalid sequence, it reports an error and writes
// the offending character as-is.
func (s *Scanner) escape() {
	// initial backslash already consumed, hence the -1
	startLine, startCol := s.line, s.col-1

	cur := s.cur
	switch cur {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', '\'', '"', '$':
		s.advance()
		s.sb.WriteByte(simpleEscapes[cur])

	case 'x':
		s.advance()
		var b byte
		for i := 0; i < 2; i++ {
			d, ok := hexValue(s.cur)
			if !ok {
				s.error(startLine, startCol, "invalid hexadecimal escape sequence")
				return
			}
			b = b<<4 | d
			s.advance()
		}
		s.sb.WriteByte(b)

	case '\n', -1:
		// not terminated, let the caller report it
		s.sb.WriteByte('\\')

	default:
		s.errorf(startLine, startCol, "invalid escape sequence \\%c", cur)
		s.advance()
		s.writeRune(cur)
	}
}

func (s *Scanner) writeRune(rn rune) {
	if rn == utf8.RuneError && s.invalidByte > 0 {
		s.sb.WriteByte(s.invalidByte)
		return
	}
	s.sb.WriteRune(rn)
}

func hexValue(rn rune) (byte, bool) {
	switch {
	case '0' <= rn && rn <= '9':
		return byte(rn - '0'), true
	case 'a' <= rn && rn <= 'f':
		return byte(rn - 'a' + 10), true
	case 'A' <= rn && rn <= 'F':
		return byte(rn - 'A' + 10), true
	}
	return 0, false
}
