package solver

import "fmt"

type ProblemKind int

const (
	ProblemArithmetic ProblemKind = iota
	ProblemLinearEquation
	ProblemUnsupported
)

// Classify inspects a parsed statement and picks the solving strategy.
// Expressions without '=' are arithmetic. Equations must be first degree
// in exactly one variable name; anything else is rejected rather than
// approximated.
func Classify(stmt Statement) (ProblemKind, error) {
	switch s := stmt.(type) {
	case ExprStatement:
		return ProblemArithmetic, nil
	case Equation:
		names := variableNames(s)
		if len(names) == 0 {
			return ProblemUnsupported, &UnsupportedEquationError{Reason: "no variable to solve for"}
		}
		if len(names) > 1 {
			return ProblemUnsupported, &UnsupportedEquationError{
				Reason: fmt.Sprintf("more than one variable (%v)", names),
			}
		}

		for _, side := range []Expression{s.Left, s.Right} {
			deg, err := degree(side)
			if err != nil {
				return ProblemUnsupported, err
			}
			if deg > 1 {
				return ProblemUnsupported, &UnsupportedEquationError{
					Reason: fmt.Sprintf("'%s' is not first degree in %s", side.String(), names[0]),
				}
			}
		}
		return ProblemLinearEquation, nil
	default:
		return ProblemUnsupported, &UnsupportedEquationError{Reason: "unrecognized problem shape"}
	}
}

// degree computes the polynomial degree of an expression in its
// variables. Variables in divisors or exponents have no polynomial
// degree at all and are reported as unsupported.
func degree(e Expression) (int, error) {
	switch n := e.(type) {
	case NumberLiteral:
		return 0, nil
	case VariableRef:
		return 1, nil
	case Grouping:
		return degree(n.Inner)
	case UnaryExpression:
		return degree(n.Right)
	case BinaryExpression:
		left, err := degree(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := degree(n.Right)
		if err != nil {
			return 0, err
		}

		switch n.Op {
		case BinaryOpAdd, BinaryOpSubtract:
			if left > right {
				return left, nil
			}
			return right, nil
		case BinaryOpMultiply:
			return left + right, nil
		case BinaryOpDivide:
			if right != 0 {
				return 0, &UnsupportedEquationError{Reason: "variable in a divisor"}
			}
			return left, nil
		case BinaryOpPower:
			return powerDegree(n, left, right)
		}
	}
	return 0, &UnsupportedEquationError{Reason: "unrecognized expression"}
}

func powerDegree(n BinaryExpression, base int, exponent int) (int, error) {
	if exponent != 0 {
		return 0, &UnsupportedEquationError{Reason: "variable in an exponent"}
	}
	if base == 0 {
		return 0, nil
	}

	// The base holds the variable, so the constant exponent decides the
	// degree: x^1 stays linear, x^0 is constant, everything else is
	// nonlinear or non-polynomial.
	exp, err := evaluate(n.Right)
	if err != nil {
		return 0, err
	}
	switch exp {
	case 0:
		return 0, nil
	case 1:
		return base, nil
	default:
		return 0, &UnsupportedEquationError{
			Reason: fmt.Sprintf("variable raised to the power of %s", n.Right.String()),
		}
	}
}
