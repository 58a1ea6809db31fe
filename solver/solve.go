package solver

import (
	"fmt"
	"math"
)

// Answer is the terminal value of a solve: a plain number for
// arithmetic, or a variable binding for a linear equation.
type Answer interface {
	isAnswer()
}

func (n Numeric) isAnswer()  {}
func (s Solution) isAnswer() {}

type Numeric struct {
	Value float64
}

type Solution struct {
	Variable string
	Value    float64
}

// Get returns the solved value for the named variable.
func (s Solution) Get(name string) (float64, bool) {
	if name != s.Variable {
		return 0, false
	}
	return s.Value, true
}

// Solve runs the whole pipeline on one problem string: tokenize, parse,
// classify, then evaluate or isolate the variable. It never interprets
// the input as code; everything goes through the typed syntax tree.
func Solve(text string) (Answer, error) {
	stmt, err := Parse(text)
	if err != nil {
		return nil, err
	}

	kind, err := Classify(stmt)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ProblemArithmetic:
		value, err := evaluate(stmt.(ExprStatement).Expr)
		if err != nil {
			return nil, err
		}
		return Numeric{Value: value}, nil
	case ProblemLinearEquation:
		return solveLinear(stmt.(Equation))
	default:
		return nil, &UnsupportedEquationError{Reason: "unrecognized problem shape"}
	}
}

// evaluate walks the tree post-order. PEMDAS is already encoded in the
// tree shape, so no precedence handling happens here.
func evaluate(e Expression) (float64, error) {
	switch n := e.(type) {
	case NumberLiteral:
		return n.Value, nil
	case VariableRef:
		return 0, &UnsupportedEquationError{Reason: fmt.Sprintf("variable %s outside an equation", n.Name)}
	case Grouping:
		return evaluate(n.Inner)
	case UnaryExpression:
		value, err := evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return -value, nil
	case BinaryExpression:
		left, err := evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return applyBinary(n.Op, left, right)
	}
	return 0, &UnsupportedEquationError{Reason: "unrecognized expression"}
}

func applyBinary(op binaryOpType, left float64, right float64) (float64, error) {
	switch op {
	case BinaryOpAdd:
		return left + right, nil
	case BinaryOpSubtract:
		return left - right, nil
	case BinaryOpMultiply:
		return left * right, nil
	case BinaryOpDivide:
		if right == 0 {
			return 0, &MathError{Kind: MathErrorDivisionByZero}
		}
		return left / right, nil
	case BinaryOpPower:
		return power(left, right)
	}
	return 0, &UnsupportedEquationError{Reason: "unrecognized operator"}
}

func power(base float64, exponent float64) (float64, error) {
	if base < 0 && exponent != math.Trunc(exponent) {
		return 0, &MathError{Kind: MathErrorComplexResult}
	}
	if base == 0 && exponent < 0 {
		return 0, &MathError{Kind: MathErrorDivisionByZero}
	}
	return math.Pow(base, exponent), nil
}

// linearForm is an expression reduced to a*x + b for the single
// variable of the problem.
type linearForm struct {
	a float64
	b float64
}

func solveLinear(eq Equation) (Answer, error) {
	left, err := linearize(eq.Left)
	if err != nil {
		return nil, err
	}
	right, err := linearize(eq.Right)
	if err != nil {
		return nil, err
	}

	// Normalize to a*x + b = 0.
	a := left.a - right.a
	b := left.b - right.b
	if a == 0 {
		return nil, &MathError{Kind: MathErrorNoOrInfiniteSolutions}
	}

	names := variableNames(eq)
	return Solution{Variable: names[0], Value: -b / a}, nil
}

// linearize evaluates all variable-free subtrees and collects the
// variable's coefficient. The classifier has already rejected nonlinear
// shapes, but the checks stay here so linearize is safe on its own.
func linearize(e Expression) (linearForm, error) {
	switch n := e.(type) {
	case NumberLiteral:
		return linearForm{a: 0, b: n.Value}, nil
	case VariableRef:
		return linearForm{a: 1, b: 0}, nil
	case Grouping:
		return linearize(n.Inner)
	case UnaryExpression:
		form, err := linearize(n.Right)
		if err != nil {
			return linearForm{}, err
		}
		return linearForm{a: -form.a, b: -form.b}, nil
	case BinaryExpression:
		return linearizeBinary(n)
	}
	return linearForm{}, &UnsupportedEquationError{Reason: "unrecognized expression"}
}

func linearizeBinary(n BinaryExpression) (linearForm, error) {
	left, err := linearize(n.Left)
	if err != nil {
		return linearForm{}, err
	}
	right, err := linearize(n.Right)
	if err != nil {
		return linearForm{}, err
	}

	switch n.Op {
	case BinaryOpAdd:
		return linearForm{a: left.a + right.a, b: left.b + right.b}, nil
	case BinaryOpSubtract:
		return linearForm{a: left.a - right.a, b: left.b - right.b}, nil
	case BinaryOpMultiply:
		if left.a != 0 && right.a != 0 {
			return linearForm{}, &UnsupportedEquationError{Reason: "product of two variable terms"}
		}
		if left.a == 0 {
			return linearForm{a: left.b * right.a, b: left.b * right.b}, nil
		}
		return linearForm{a: left.a * right.b, b: left.b * right.b}, nil
	case BinaryOpDivide:
		if right.a != 0 {
			return linearForm{}, &UnsupportedEquationError{Reason: "variable in a divisor"}
		}
		if right.b == 0 {
			return linearForm{}, &MathError{Kind: MathErrorDivisionByZero}
		}
		return linearForm{a: left.a / right.b, b: left.b / right.b}, nil
	case BinaryOpPower:
		if right.a != 0 {
			return linearForm{}, &UnsupportedEquationError{Reason: "variable in an exponent"}
		}
		if left.a == 0 {
			value, err := power(left.b, right.b)
			if err != nil {
				return linearForm{}, err
			}
			return linearForm{a: 0, b: value}, nil
		}
		switch right.b {
		case 0:
			return linearForm{a: 0, b: 1}, nil
		case 1:
			return left, nil
		default:
			return linearForm{}, &UnsupportedEquationError{Reason: "variable raised to a non-unit exponent"}
		}
	}
	return linearForm{}, &UnsupportedEquationError{Reason: "unrecognized operator"}
}
