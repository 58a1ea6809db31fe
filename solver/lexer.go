package solver

import (
	"strconv"
	"unicode"
)

type charInfo struct {
	ch  rune
	pos int
}

// lex scans input left to right and hands each token to emit. The final
// token is always tokenTypeEnd so consumers never have to special-case
// exhaustion. Offsets are rune indexes into the input.
func lex(input string, emit func(token)) error {
	l := newLexer(input, emit)
	return l.scan()
}

type lexer struct {
	input            []rune
	length           int
	currentCharIndex int
	emitCallback     func(token)
}

func newLexer(input string, emit func(token)) *lexer {
	return &lexer{
		input:            []rune(input),
		length:           len([]rune(input)),
		currentCharIndex: 0,
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (charInfo, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return charInfo{}, false
	}
	return charInfo{ch: l.input[i], pos: i}, true
}

func (l *lexer) advance() (charInfo, bool) {
	info, ok := l.peek(0)
	l.currentCharIndex++
	return info, ok
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	l.emitCallback(token{tokType: tokenTypeEnd, pos: l.length})
	return nil
}

func (l *lexer) next() (bool, error) {
	chInfo, ok := l.advance()
	if !ok {
		return false, nil
	}
	ch := chInfo.ch
	var err error = nil
	more := true

	switch ch {
	case '+':
		l.emitCallback(token{tokType: tokenTypePlus, pos: chInfo.pos})
	case '-':
		l.emitCallback(token{tokType: tokenTypeMinus, pos: chInfo.pos})
	case '*':
		l.emitCallback(token{tokType: tokenTypeStar, pos: chInfo.pos})
	case '/':
		l.emitCallback(token{tokType: tokenTypeSlash, pos: chInfo.pos})
	case '^':
		l.emitCallback(token{tokType: tokenTypeCaret, pos: chInfo.pos})
	case '(':
		l.emitCallback(token{tokType: tokenTypeLParen, pos: chInfo.pos})
	case ')':
		l.emitCallback(token{tokType: tokenTypeRParen, pos: chInfo.pos})
	case '=':
		l.emitCallback(token{tokType: tokenTypeEquals, pos: chInfo.pos})
	case ' ', '\t', '\r', '\n':
		// whitespace separates tokens and is otherwise ignored
	default:
		if isDigit(ch) || ch == '.' {
			err = l.scanNumber(chInfo)
		} else if unicode.IsLetter(ch) {
			l.scanIdent(chInfo)
		} else {
			return false, &LexError{Pos: chInfo.pos, Char: ch, Reason: "not part of any recognized token"}
		}
	}

	return more, err
}

func (l *lexer) scanNumber(first charInfo) error {
	hasDecimal := first.ch == '.'

	for {
		next, ok := l.peek(0)
		if !ok {
			break
		}

		isDecimal := next.ch == '.'
		if isDecimal && hasDecimal {
			return &LexError{Pos: next.pos, Char: '.', Reason: "number already has a decimal point"}
		}
		hasDecimal = hasDecimal || isDecimal

		if !isDecimal && !isDigit(next.ch) {
			break
		}
		_, _ = l.advance()
	}

	lexeme := l.input[first.pos:l.currentCharIndex]
	value, err := strconv.ParseFloat(string(lexeme), 64)
	if err != nil {
		return &LexError{Pos: first.pos, Char: first.ch, Reason: "malformed number literal"}
	}
	l.emitCallback(token{tokType: tokenTypeNumber, value: lexeme, number: value, pos: first.pos})
	return nil
}

func (l *lexer) scanIdent(first charInfo) {
	for {
		next, ok := l.peek(0)
		if !ok || !unicode.IsLetter(next.ch) {
			break
		}
		_, _ = l.advance()
	}
	lexeme := l.input[first.pos:l.currentCharIndex]
	l.emitCallback(token{tokType: tokenTypeIdent, value: lexeme, pos: first.pos})
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
