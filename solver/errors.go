package solver

import "fmt"

// LexError reports a character the tokenizer could not accept, with its
// byte offset in the input.
type LexError struct {
	Pos    int
	Char   rune
	Reason string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Invalid character '%c' at offset %d: %s", e.Char, e.Pos, e.Reason)
}

type parseErrorKind int

const (
	ParseErrorUnbalancedParens parseErrorKind = iota
	ParseErrorUnexpectedToken
	ParseErrorTrailingInput
)

// ParseError reports a structural problem found while building the
// expression tree.
type ParseError struct {
	Kind parseErrorKind
	Pos  int
	Tok  string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrorUnbalancedParens:
		return fmt.Sprintf("Unbalanced parentheses at offset %d", e.Pos)
	case ParseErrorTrailingInput:
		return fmt.Sprintf("Unexpected trailing input <%s> at offset %d", e.Tok, e.Pos)
	default:
		return fmt.Sprintf("Unexpected <%s> at offset %d", e.Tok, e.Pos)
	}
}

type mathErrorKind int

const (
	MathErrorDivisionByZero mathErrorKind = iota
	MathErrorComplexResult
	MathErrorNoOrInfiniteSolutions
)

// MathError reports an evaluation that has no answer in the real numbers.
type MathError struct {
	Kind mathErrorKind
}

func (e *MathError) Error() string {
	switch e.Kind {
	case MathErrorDivisionByZero:
		return "Cannot divide by zero"
	case MathErrorComplexResult:
		return "Fractional exponent of a negative base has no real result"
	default:
		return "Equation has no solution or infinitely many solutions"
	}
}

// UnsupportedEquationError reports a problem shape the solver refuses to
// guess at: multiple variables, nonlinear degree, more than one '='.
type UnsupportedEquationError struct {
	Reason string
}

func (e *UnsupportedEquationError) Error() string {
	return fmt.Sprintf("Unsupported equation: %s", e.Reason)
}
