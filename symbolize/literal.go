package symbolize

import "strconv"

// parseInt renders a go/ast.BasicLit of kind INT (already in Go literal
// syntax, underscores and all) as an int64, returning nil if it doesn't
// fit (spec.md has no bignum value, so an overflowing literal degrades
// to Unknown at the call site rather than being hand-wrapped).
func parseInt(lit string) *int64 {
	n, err := strconv.ParseInt(lit, 0, 64)
	if err != nil {
		return nil
	}
	return &n
}

// parseFloat renders a go/ast.BasicLit of kind FLOAT as a float64.
func parseFloat(lit string) *float64 {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil
	}
	return &f
}

// unquoteGoString renders a go/ast.BasicLit of kind STRING (still
// carrying its surrounding quotes and escapes) as the string it denotes.
func unquoteGoString(lit string) (string, bool) {
	s, err := strconv.Unquote(lit)
	if err != nil {
		return "", false
	}
	return s, true
}
