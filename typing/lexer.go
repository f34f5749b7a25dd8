package typing

import "fmt"

type Lexer struct {
	input string
	pos   int
	start int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	l.start = l.pos

	if l.pos >= len(l.input) {
		return l.makeToken(EOF, "")
	}

	ch := l.input[l.pos]
	switch ch {
	case '{':
		l.pos++
		return l.makeToken(LBRACE, "{")
	case '}':
		l.pos++
		return l.makeToken(RBRACE, "}")
	case '[':
		l.pos++
		return l.makeToken(LBRACKET, "[")
	case ']':
		l.pos++
		return l.makeToken(RBRACKET, "]")
	case '?':
		l.pos++
		return l.makeToken(QUESTION, "?")
	case ':':
		l.pos++
		return l.makeToken(COLON, ":")
	case ',':
		l.pos++
		return l.makeToken(COMMA, ",")
	}

	if isIdentStart(ch) {
		for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
			l.pos++
		}
		return l.makeToken(IDENT, l.input[l.start:l.pos])
	}

	l.pos++
	return l.makeToken(ILLEGAL, fmt.Sprintf("unexpected character %q", ch))
}

func (l *Lexer) makeToken(tt TokenType, lit string) Token {
	return Token{Type: tt, Lit: lit, Pos: l.start}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
