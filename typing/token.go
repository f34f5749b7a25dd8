package typing

import "fmt"

type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	IDENT // Int, Text, person_id, ...

	// Symbols
	LBRACE   // {
	RBRACE   // }
	LBRACKET // [
	RBRACKET // ]
	QUESTION // ?
	COLON    // :
	COMMA    // ,
)

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case IDENT:
		return "identifier"
	case LBRACE:
		return "'{'"
	case RBRACE:
		return "'}'"
	case LBRACKET:
		return "'['"
	case RBRACKET:
		return "']'"
	case QUESTION:
		return "'?'"
	case COLON:
		return "':'"
	case COMMA:
		return "','"
	default:
		return fmt.Sprintf("token(%d)", int(tt))
	}
}

type Token struct {
	Type TokenType
	Lit  string
	Pos  int // byte offset into the input
}
