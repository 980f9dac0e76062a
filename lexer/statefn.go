package lexer

import "strings"

type stateFn func(*Lexer) stateFn

// Runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokDash,
	'*': TokStar,
	'/': TokSlash,
	'%': TokPercent,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	switch r := l.peek(); {
	case l.pos >= len(l.input):
		return l.emit(TokEOF)
	case strings.ContainsRune(triviaChars, r):
		l.acceptRun(triviaChars)
		return l.emit(TokWhitespace)
	case strings.ContainsRune(digitChars, r):
		return lexNumber
	case r == '.' && isDigit(l.peekN(2)):
		return lexNumber
	case r == '$' && isVarnameChar(l.peekN(2)):
		return lexVar
	default:
		l.next()
		if tok, ok := singles[r]; ok {
			return l.emit(tok)
		}
		return l.emit(TokIllegal)
	}
}

// lexNumber accepts `digits '.' digits*`, `'.' digits+` and `digits`.
func lexNumber(l *Lexer) stateFn {
	l.acceptRun(digitChars)
	if l.accept(".") {
		l.acceptRun(digitChars)
	}
	return l.emit(TokNumber)
}

func lexVar(l *Lexer) stateFn {
	l.accept("$")
	l.acceptRun(varnameChars)
	return l.emit(TokVar)
}

func isDigit(r rune) bool {
	return r != 0 && strings.ContainsRune(digitChars, r)
}

func isVarnameChar(r rune) bool {
	return r != 0 && strings.ContainsRune(varnameChars, r)
}
