package solver

// Parse tokenizes and parses one problem string. The lexer runs in its
// own goroutine and streams tokens through a tokenBuffer; the parser
// pulls them through the tokenReader interface.
func Parse(input string) (Statement, error) {
	buffer := newTokenBuffer()
	p := parser{reader: buffer}
	var lexErr error = nil

	go (func() {
		lexErr = lex(input, buffer.Write)
		buffer.Done()
	})()

	stmt, err := p.scan()
	if err != nil {
		// Drain whatever the lexer still has so its goroutine can
		// finish, then prefer the lex error as the root cause.
		for {
			_, done, derr := buffer.Next()
			if done || derr != nil {
				break
			}
		}
		if lexErr != nil {
			return nil, lexErr
		}
		return nil, err
	}
	return stmt, nil
}

type parser struct {
	reader tokenReader
}

// next pulls one token. The lexer always emits an End token before
// closing the stream, so hitting done here means it bailed out early.
func (p *parser) next() (token, error) {
	tok, done, err := p.reader.Next()
	if err != nil {
		return token{}, err
	}
	if done {
		return token{}, &ParseError{Kind: ParseErrorUnexpectedToken, Tok: "EOF"}
	}
	return tok, nil
}

func (p *parser) peek() (token, error) {
	tok, done, err := p.reader.Peek()
	if err != nil {
		return token{}, err
	}
	if done {
		return token{}, &ParseError{Kind: ParseErrorUnexpectedToken, Tok: "EOF"}
	}
	return tok, nil
}

func (p *parser) scan() (Statement, error) {
	left, err := p.scanExpr()
	if err != nil {
		return nil, err
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.tokType {
	case tokenTypeEnd:
		return ExprStatement{Expr: left}, nil
	case tokenTypeEquals:
		right, err := p.scanExpr()
		if err != nil {
			return nil, err
		}
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		if tok.tokType == tokenTypeEquals {
			return nil, &UnsupportedEquationError{Reason: "more than one '='"}
		}
		if tok.tokType != tokenTypeEnd {
			return nil, p.trailingError(tok)
		}
		return Equation{Left: left, Right: right}, nil
	default:
		return nil, p.trailingError(tok)
	}
}

func (p *parser) trailingError(tok token) error {
	if tok.tokType == tokenTypeRParen {
		return &ParseError{Kind: ParseErrorUnbalancedParens, Pos: tok.pos}
	}
	return &ParseError{Kind: ParseErrorTrailingInput, Pos: tok.pos, Tok: tokenValueString(tok)}
}

// expr := term (('+'|'-') term)*
func (p *parser) scanExpr() (Expression, error) {
	left, err := p.scanTerm()
	if err != nil {
		return nil, err
	}

	for {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}

		var op binaryOpType
		switch next.tokType {
		case tokenTypePlus:
			op = BinaryOpAdd
		case tokenTypeMinus:
			op = BinaryOpSubtract
		default:
			return left, nil
		}

		if _, err = p.next(); err != nil {
			return nil, err
		}

		right, err := p.scanTerm()
		if err != nil {
			return nil, err
		}
		left = BinaryExpression{Op: op, Left: left, Right: right}
	}
}

// term := unary (('*'|'/') unary | implicit-multiplication)*
//
// A factor directly followed by an identifier or '(' multiplies without
// an explicit operator, so "4x" and "2(3+1)" parse the same as "4*x"
// and "2*(3+1)".
func (p *parser) scanTerm() (Expression, error) {
	left, err := p.scanUnary()
	if err != nil {
		return nil, err
	}

	for {
		next, err := p.peek()
		if err != nil {
			return nil, err
		}

		var op binaryOpType
		explicit := true
		switch next.tokType {
		case tokenTypeStar:
			op = BinaryOpMultiply
		case tokenTypeSlash:
			op = BinaryOpDivide
		case tokenTypeIdent, tokenTypeLParen:
			op = BinaryOpMultiply
			explicit = false
		default:
			return left, nil
		}

		if explicit {
			if _, err = p.next(); err != nil {
				return nil, err
			}
		}

		right, err := p.scanUnary()
		if err != nil {
			return nil, err
		}
		left = BinaryExpression{Op: op, Left: left, Right: right}
	}
}

// unary := '-' unary | power
func (p *parser) scanUnary() (Expression, error) {
	next, err := p.peek()
	if err != nil {
		return nil, err
	}

	if next.tokType == tokenTypeMinus {
		if _, err = p.next(); err != nil {
			return nil, err
		}
		right, err := p.scanUnary()
		if err != nil {
			return nil, err
		}
		return UnaryExpression{Op: UnaryOpNegative, Right: right}, nil
	}

	return p.scanPower()
}

// power := primary ('^' unary)?
//
// '^' is right associative and binds tighter than unary minus, so
// "2^3^2" is 2^(3^2) and "-2^2" is -(2^2). The exponent goes through
// scanUnary so it may carry its own sign, as in "2^-3".
func (p *parser) scanPower() (Expression, error) {
	base, err := p.scanPrimary()
	if err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.tokType != tokenTypeCaret {
		return base, nil
	}

	if _, err = p.next(); err != nil {
		return nil, err
	}

	exponent, err := p.scanUnary()
	if err != nil {
		return nil, err
	}
	return BinaryExpression{Op: BinaryOpPower, Left: base, Right: exponent}, nil
}

// primary := Number | Identifier | '(' expr ')'
func (p *parser) scanPrimary() (Expression, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.tokType {
	case tokenTypeNumber:
		return NumberLiteral{Value: tok.number}, nil
	case tokenTypeIdent:
		return VariableRef{Name: string(tok.value)}, nil
	case tokenTypeLParen:
		inner, err := p.scanExpr()
		if err != nil {
			return nil, err
		}
		closing, err := p.next()
		if err != nil {
			return nil, err
		}
		if closing.tokType != tokenTypeRParen {
			return nil, &ParseError{Kind: ParseErrorUnbalancedParens, Pos: closing.pos}
		}
		return Grouping{Inner: inner}, nil
	default:
		return nil, &ParseError{Kind: ParseErrorUnexpectedToken, Pos: tok.pos, Tok: tokenValueString(tok)}
	}
}
