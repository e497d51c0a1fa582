package script

import "strings"

var dquoteReplacer = strings.NewReplacer(
	`"`, `\"`,
	`\`, `\\`,
	`$`, `\$`,
	"`", "\\`",
)

// DoubleQuote quotes s so that the shell reads it back unchanged inside
// double quotes.
func DoubleQuote(s string) string {
	return `"` + dquoteReplacer.Replace(s) + `"`
}

// SingleQuote quotes s in single quotes, closing and reopening the quotes
// around each embedded single quote.
func SingleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
