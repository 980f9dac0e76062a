// Package ast defines the syntax tree produced by the expression parser.
package ast

import (
	"fmt"
	"math"
)

// Value is the numeric type of every literal. Integer literals are widened
// to it, so the tree keeps no integer/float distinction.
type Value = float64

// Expr is any expression node. Nodes are immutable once built and each
// node owns its children.
type Expr interface {
	Dump() string
	expr()
}

// BinaryOp is an infix arithmetic operator.
type BinaryOp int

// Binary operators.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

var binaryOpStrings = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpMod: "%",
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpStrings[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// Apply computes l op r. Mod is the truncated remainder.
func (op BinaryOp) Apply(l, r Value) Value {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	case OpMod:
		return math.Mod(l, r)
	}
	panic(fmt.Errorf("unknown binary operator %d", int(op)))
}

// UnaryOp is a prefix operator.
type UnaryOp int

// Unary operators.
const (
	OpNegate UnaryOp = iota
)

func (op UnaryOp) String() string {
	if op == OpNegate {
		return "-"
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// Apply computes op v.
func (op UnaryOp) Apply(v Value) Value {
	if op == OpNegate {
		return -v
	}
	panic(fmt.Errorf("unknown unary operator %d", int(op)))
}

// VarKind tells builtin variables apart from user ones.
type VarKind int

// Variable kinds.
const (
	VarNamed VarKind = iota
	VarRank
	VarRand
)

// Names of the builtin variables.
const (
	RankName = "rank"
	RandName = "rand"
)

// Var references a variable. Name is only set for VarNamed.
type Var struct {
	Kind VarKind
	Name string
}

// ResolveVar maps a variable name to its Var. The match is exact and case
// sensitive: "rank" and "rand" are builtins, anything else is a named variable.
func ResolveVar(name string) Var {
	switch name {
	case RankName:
		return Var{Kind: VarRank}
	case RandName:
		return Var{Kind: VarRand}
	}
	return Var{Kind: VarNamed, Name: name}
}

func (v Var) String() string {
	switch v.Kind {
	case VarRank:
		return "$" + RankName
	case VarRand:
		return "$" + RandName
	}
	return "$" + v.Name
}
