// Package parser turns arithmetic expressions such as `$rank * (2 + $rand)`
// into ast trees.
//
// Grammar, lowest precedence first:
//
//	expression := term (("+" | "-") term)*
//	term       := atom (("*" | "/" | "%") atom)*
//	atom       := "(" expression ")" | "-" expression | number | variable
//	number     := digits "." digits* | "." digits+ | digits
//	variable   := "$" [A-Za-z_]+
//
// Spaces and tabs may follow any token. Leading trivia and newlines are
// not accepted.
package parser

import (
	"go.creack.net/rankexpr/ast"
	"go.creack.net/rankexpr/lexer"
)

type parser struct {
	lex *lexer.Lexer
	src string

	curToken lexer.Token

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]

	failures failureTracker
}

func newParser(src string) *parser {
	p := &parser{
		lex: lexer.New(src),
		src: src,

		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},

		failures: newFailureTracker(),
	}
	p.createTokenLookups()
	// The first token is taken as is: trivia is only skipped after a token.
	p.curToken = p.lex.NextToken()
	return p
}

// Parse parses src as a whole. On failure the error is a *SyntaxError
// describing the furthest position reached.
func Parse(src string) (ast.Expr, error) {
	p := newParser(src)
	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokEOF {
		return nil, p.fail(labelEOF)
	}
	return expr, nil
}

// ParseFolded parses src and folds its constant subtrees.
func ParseFolded(src string) (ast.Expr, error) {
	expr, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return ast.Fold(expr), nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) ast.Expr {
	expr, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return expr
}

func (p *parser) nextToken() lexer.Token {
	p.curToken = p.lex.NextToken()
	p.ignoreWhitespaces()
	return p.curToken
}

func (p *parser) ignoreWhitespaces() {
	for p.curToken.Type == lexer.TokWhitespace {
		p.curToken = p.lex.NextToken()
	}
}

// mark records labels that could not be matched at the current token.
func (p *parser) mark(labels ...string) {
	p.failures.mark(p.curToken.Pos, labels...)
}

// fail marks labels and returns the error for the furthest failure seen.
func (p *parser) fail(labels ...string) error {
	p.mark(labels...)
	return p.failures.err(p.src)
}
