package token

import "strconv"

// A Token represents a lexical token of an array script.
type Token int8

//nolint:revive
const (
	ILLEGAL Token = iota
	EOF
	NEWLINE

	// Tokens with values
	COMMENT // # comment
	WORD    // insert
	INT     // 123 or -4
	STRING  // "foo" or 'foo'

	maxToken         = STRING
	litStart, litEnd = COMMENT, STRING
)

func (tok Token) String() string {
	if tok < 0 || tok > maxToken {
		return "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return tokenNames[tok]
}

// GoString is like String but quotes the newline token. Use Sprintf("%#v",
// tok) when constructing error messages.
func (tok Token) GoString() string {
	if tok == NEWLINE {
		return "'\\n'"
	}
	return tok.String()
}

// IsLiteral returns true if the token carries a literal value.
func (tok Token) IsLiteral() bool {
	return tok >= litStart && tok <= litEnd
}

var tokenNames = [...]string{
	ILLEGAL: "illegal token",
	EOF:     "end of file",
	NEWLINE: "newline",

	COMMENT: "comment",
	WORD:    "word",
	INT:     "int literal",
	STRING:  "string literal",
}

// Value records the raw text, position and decoded value associated with
// each token.
type Value struct {
	Raw    string // raw text of token
	Int    int64  // decoded int
	String string // decoded string
	Pos    Pos    // start position of token
}

// Literal returns the string representation of the literal value of the token
// from its associated Value struct. If t is not a literal, it returns an empty
// string.
func (tok Token) Literal(v Value) string {
	switch tok {
	case WORD:
		return v.Raw
	case STRING:
		return strconv.Quote(v.String)
	case COMMENT:
		return v.String
	case INT:
		return strconv.FormatInt(v.Int, 10)
	default:
		return ""
	}
}

// Text returns the value of the token as a plain string: the decoded string
// for STRING, the raw text otherwise.
func (tok Token) Text(v Value) string {
	if tok == STRING {
		return v.String
	}
	return v.Raw
}
