package ast

// Fold returns expr with every literal-only subtree collapsed into a single
// FloatExpr. Variables are left as they are.
func Fold(expr Expr) Expr {
	switch e := expr.(type) {
	case UnaryExpr:
		operand := Fold(e.Operand)
		if v, ok := operand.(FloatExpr); ok {
			return FloatExpr{Value: e.Op.Apply(v.Value)}
		}
		return UnaryExpr{Op: e.Op, Operand: operand}
	case BinaryExpr:
		left, right := Fold(e.Left), Fold(e.Right)
		l, lok := left.(FloatExpr)
		r, rok := right.(FloatExpr)
		if lok && rok {
			return FloatExpr{Value: e.Op.Apply(l.Value, r.Value)}
		}
		return BinaryExpr{Op: e.Op, Left: left, Right: right}
	default:
		return expr
	}
}

// IsConstant reports whether expr references no variable.
func IsConstant(expr Expr) bool {
	switch e := expr.(type) {
	case FloatExpr:
		return true
	case UnaryExpr:
		return IsConstant(e.Operand)
	case BinaryExpr:
		return IsConstant(e.Left) && IsConstant(e.Right)
	default:
		return false
	}
}
