package solver

type tokenType int

const (
	tokenTypeNumber tokenType = iota
	tokenTypeIdent
	tokenTypePlus
	tokenTypeMinus
	tokenTypeStar
	tokenTypeSlash
	tokenTypeCaret
	tokenTypeLParen
	tokenTypeRParen
	tokenTypeEquals
	tokenTypeEnd
)

type token struct {
	tokType tokenType
	value   []rune
	number  float64
	pos     int
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeNumber:
		return string(tok.value)
	case tokenTypeIdent:
		return string(tok.value)
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeStar:
		return "*"
	case tokenTypeSlash:
		return "/"
	case tokenTypeCaret:
		return "^"
	case tokenTypeLParen:
		return "("
	case tokenTypeRParen:
		return ")"
	case tokenTypeEquals:
		return "="
	case tokenTypeEnd:
		return "EOF"
	default:
		return "?"
	}
}
