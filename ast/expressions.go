package ast

import (
	"fmt"
	"strconv"
)

// FloatExpr is a numeric literal.
type FloatExpr struct {
	Value Value
}

func (FloatExpr) expr() {}

func (e FloatExpr) Dump() string {
	return strconv.FormatFloat(e.Value, 'g', -1, 64)
}

// VarExpr is a variable reference.
type VarExpr struct {
	Var Var
}

func (VarExpr) expr() {}

func (e VarExpr) Dump() string {
	return e.Var.String()
}

type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (BinaryExpr) expr() {}

func (e BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", e.Left.Dump(), e.Op, e.Right.Dump())
}

type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

func (UnaryExpr) expr() {}

func (e UnaryExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", e.Op, e.Operand.Dump())
}

// Helpers to build trees, mostly for tests and tables.

func Float(v Value) FloatExpr { return FloatExpr{Value: v} }

func Named(name string) VarExpr { return VarExpr{Var: Var{Kind: VarNamed, Name: name}} }

func Rank() VarExpr { return VarExpr{Var: Var{Kind: VarRank}} }

func Rand() VarExpr { return VarExpr{Var: Var{Kind: VarRand}} }

func Binary(op BinaryOp, left, right Expr) BinaryExpr {
	return BinaryExpr{Op: op, Left: left, Right: right}
}

func Negate(operand Expr) UnaryExpr {
	return UnaryExpr{Op: OpNegate, Operand: operand}
}
