package lexer

import (
	"fmt"
	"slices"
)

// TokenType is the type of token.
type TokenType int

// Token types as constants.
const (
	TokIllegal TokenType = iota
	TokEOF

	// Literals + variables.
	TokNumber
	TokVar

	// Operators.
	TokPlus    // '+'.
	TokDash    // '-'.
	TokStar    // '*'.
	TokSlash   // '/'.
	TokPercent // '%'.

	// Delimiters.
	TokWhitespace
	TokParenLeft
	TokParenRight

	// End of tokens.
	FinalToken
)

// String returns the string representation of the token type.
func (tt TokenType) String() string {
	return tokenTypeStrings[tt]
}

// Map of token types to their string representation for debugging.
var tokenTypeStrings = map[TokenType]string{
	TokIllegal: "ILLEGAL",
	TokEOF:     "EOF",

	TokNumber: "NUMBER",
	TokVar:    "VAR",

	TokPlus:    "+",
	TokDash:    "-",
	TokStar:    "*",
	TokSlash:   "/",
	TokPercent: "%",

	TokWhitespace: "WHITESPACE",
	TokParenLeft:  "(",
	TokParenRight: ")",
}

func (tt TokenType) IsOneOf(t ...TokenType) bool {
	return slices.Contains(t, tt)
}

// Token represents a lexical token of an expression.
type Token struct {
	Type  TokenType
	Value string

	Pos int // Byte offset of the first character of the token.
}

func (t Token) String() string {
	switch {
	case t.Type == TokEOF:
		return "EOF"
	case len(t.Value) > 16:
		return fmt.Sprintf("%s[%d]: %.16q", t.Type, t.Pos, t.Value)
	}
	return fmt.Sprintf("%s[%d]: %q", t.Type, t.Pos, t.Value)
}
