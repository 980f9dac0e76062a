package parser

import (
	"go.creack.net/rankexpr/ast"
	"go.creack.net/rankexpr/lexer"
)

type bindingPower int

const (
	bpDefault bindingPower = iota
	bpAdditive
	bpMultiplicative
)

type nudHandler func(*parser) (ast.Expr, error)
type ledHandler func(*parser, ast.Expr, bindingPower) (ast.Expr, error)

type lookupTable[T any] map[lexer.TokenType]T

// Infix token to operator.
var binaryOps = map[lexer.TokenType]ast.BinaryOp{
	lexer.TokPlus:    ast.OpAdd,
	lexer.TokDash:    ast.OpSub,
	lexer.TokStar:    ast.OpMul,
	lexer.TokSlash:   ast.OpDiv,
	lexer.TokPercent: ast.OpMod,
}

func (p *parser) led(kind lexer.TokenType, bp bindingPower, fn ledHandler) {
	if _, ok := p.ledLookupTable[kind]; ok {
		panic("duplicate led handler")
	}
	p.ledLookupTable[kind] = fn
	p.bindingPowerLookupTable[kind] = bp
}

func (p *parser) nud(kind lexer.TokenType, fn nudHandler) {
	if _, ok := p.nudLookupTable[kind]; ok {
		panic("duplicate nud handler")
	}
	p.nudLookupTable[kind] = fn
}

func (p *parser) createTokenLookups() {
	// Additive & multiplicative, both left associative.
	p.led(lexer.TokPlus, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokDash, bpAdditive, parseBinaryExpr)
	p.led(lexer.TokStar, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokSlash, bpMultiplicative, parseBinaryExpr)
	p.led(lexer.TokPercent, bpMultiplicative, parseBinaryExpr)

	// Atoms.
	p.nud(lexer.TokParenLeft, parseGroupingExpr)
	p.nud(lexer.TokDash, parsePrefixExpr)
	p.nud(lexer.TokNumber, parseLiteralExpr)
	p.nud(lexer.TokVar, parseIdentifierExpr)
}
