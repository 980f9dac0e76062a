package parser

import (
	"errors"
	"fmt"
	"strconv"

	"go.creack.net/rankexpr/ast"
	"go.creack.net/rankexpr/lexer"
)

// Labels reported when no atom starts at the current token.
var atomLabels = []string{`"("`, `"-"`, labelNumber, labelVariable}

// Labels reported when an operand is not followed by an operator.
var operatorLabels = []string{`"+"`, `"-"`, `"*"`, `"/"`, `"%"`}

func parseExpr(p *parser, bp bindingPower) (ast.Expr, error) {
	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		return nil, p.fail(atomLabels...)
	}
	left, err := nudFn(p)
	if err != nil {
		return nil, err
	}

	// While we have tokens with a higher binding power, parse them using led.
	for {
		tokBP, isOperator := p.bindingPowerLookupTable[p.curToken.Type]
		if !isOperator {
			p.mark(operatorLabels...)
			return left, nil
		}
		if tokBP <= bp {
			return left, nil
		}
		left, err = p.ledLookupTable[p.curToken.Type](p, left, tokBP)
		if err != nil {
			return nil, err
		}
	}
}

func parseLiteralExpr(p *parser) (ast.Expr, error) {
	val := p.curToken.Value
	number, err := strconv.ParseFloat(val, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// The lexer only emits well formed numerals.
		panic(fmt.Errorf("lexer accepted invalid number %q: %w", val, err))
	}
	p.nextToken()
	return ast.FloatExpr{Value: number}, nil
}

func parseIdentifierExpr(p *parser) (ast.Expr, error) {
	name := p.curToken.Value[1:] // Drop the '$' sigil.
	p.nextToken()
	return ast.VarExpr{Var: ast.ResolveVar(name)}, nil
}

func parseGroupingExpr(p *parser) (ast.Expr, error) {
	p.nextToken() // Consume '('.
	expr, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != lexer.TokParenRight {
		return nil, p.fail(`")"`)
	}
	p.nextToken()
	return expr, nil
}

// parsePrefixExpr parses a negation. The operand is a full expression, so
// `-1+2` is -(1+2), not (-1)+2.
func parsePrefixExpr(p *parser) (ast.Expr, error) {
	p.nextToken() // Consume '-'.
	operand, err := parseExpr(p, bpDefault)
	if err != nil {
		return nil, err
	}
	return ast.UnaryExpr{Op: ast.OpNegate, Operand: operand}, nil
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) (ast.Expr, error) {
	operator := p.curToken
	p.nextToken()
	right, err := parseExpr(p, bp)
	if err != nil {
		return nil, err
	}

	return ast.BinaryExpr{
		Op:    binaryOps[operator.Type],
		Left:  left,
		Right: right,
	}, nil
}
