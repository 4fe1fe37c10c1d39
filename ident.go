package statemachine

import "go/token"

// ValidIdent reports whether tok is usable as a machine, state, or transition
// identifier: it must match [A-Za-z_][A-Za-z0-9_$]* and must not be a
// reserved word of Go, the environment the emitted constructs live in.
// A reserved word fails the grammar match, so it surfaces as a SyntaxError
// rather than a semantic one.
func ValidIdent(tok string) bool {
	if len(tok) == 0 || !isIdentStart(tok[0]) {
		return false
	}
	for i := 1; i < len(tok); i++ {
		if !isIdentPart(tok[i]) {
			return false
		}
	}
	return !token.IsKeyword(tok)
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c == '$' || c >= '0' && c <= '9'
}
