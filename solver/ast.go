package solver

import "strconv"

type binaryOpType int

const (
	BinaryOpAdd binaryOpType = iota
	BinaryOpSubtract
	BinaryOpMultiply
	BinaryOpDivide
	BinaryOpPower
)

type unaryOpType int

const (
	UnaryOpNegative unaryOpType = iota
)

// Statement is the result of parsing one problem: either a bare
// expression or an equation with a left and right side.
type Statement interface {
	isStatement()
}

func (e ExprStatement) isStatement() {}
func (e Equation) isStatement()      {}

type ExprStatement struct {
	Expr Expression
}

type Equation struct {
	Left  Expression
	Right Expression
}

// Expression nodes are built bottom-up by the parser and never mutated
// afterwards; precedence is fully encoded in the tree shape.
type Expression interface {
	isExpression()
	String() string
}

func (n NumberLiteral) isExpression()    {}
func (v VariableRef) isExpression()      {}
func (u UnaryExpression) isExpression()  {}
func (b BinaryExpression) isExpression() {}
func (g Grouping) isExpression()         {}

type NumberLiteral struct {
	Value float64
}

func (n NumberLiteral) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

type VariableRef struct {
	Name string
}

func (v VariableRef) String() string {
	return v.Name
}

type UnaryExpression struct {
	Op    unaryOpType
	Right Expression
}

func (u UnaryExpression) String() string {
	return "-" + u.Right.String()
}

type BinaryExpression struct {
	Op    binaryOpType
	Left  Expression
	Right Expression
}

func (b BinaryExpression) String() string {
	var op string
	switch b.Op {
	case BinaryOpAdd:
		op = "+"
	case BinaryOpSubtract:
		op = "-"
	case BinaryOpMultiply:
		op = "*"
	case BinaryOpDivide:
		op = "/"
	case BinaryOpPower:
		op = "^"
	}
	return b.Left.String() + " " + op + " " + b.Right.String()
}

type Grouping struct {
	Inner Expression
}

func (g Grouping) String() string {
	return "(" + g.Inner.String() + ")"
}

// variableNames returns the distinct variable names in a statement in
// order of first appearance.
func variableNames(stmt Statement) []string {
	seen := map[string]bool{}
	names := []string{}

	var walk func(e Expression)
	walk = func(e Expression) {
		switch n := e.(type) {
		case VariableRef:
			if !seen[n.Name] {
				seen[n.Name] = true
				names = append(names, n.Name)
			}
		case UnaryExpression:
			walk(n.Right)
		case BinaryExpression:
			walk(n.Left)
			walk(n.Right)
		case Grouping:
			walk(n.Inner)
		}
	}

	switch s := stmt.(type) {
	case ExprStatement:
		walk(s.Expr)
	case Equation:
		walk(s.Left)
		walk(s.Right)
	}
	return names
}
