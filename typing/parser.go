package typing

import "fmt"

type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string { return fmt.Sprintf("typing: offset %d: %s", e.Pos, e.Msg) }

type parser struct {
	l   *Lexer
	tok Token
}

// Parse decodes a textual type expression into a Typing value.
func Parse(input string) (Typing, error) {
	p := &parser{l: NewLexer(input)}
	p.next()
	t, err := p.parseType()
	if err != nil {
		return Typing{}, err
	}
	if p.tok.Type != EOF {
		return Typing{}, p.errf("trailing input after type, found %v", p.tok.Type)
	}
	return t, nil
}

func (p *parser) next() {
	p.tok = p.l.NextToken()
}

func (p *parser) errf(f string, args ...any) error {
	return &ParseError{Pos: p.tok.Pos, Msg: fmt.Sprintf(f, args...)}
}

func (p *parser) parseType() (Typing, error) {
	switch p.tok.Type {
	case QUESTION:
		p.next()
		inner, err := p.parseType()
		if err != nil {
			return Typing{}, err
		}
		return Nullable(inner), nil

	case LBRACKET:
		p.next()
		inner, err := p.parseType()
		if err != nil {
			return Typing{}, err
		}
		if p.tok.Type != RBRACKET {
			return Typing{}, p.errf("expected ']', found %v", p.tok.Type)
		}
		p.next()
		return List(inner), nil

	case LBRACE:
		return p.parseNamedTuple()

	case IDENT:
		k, ok := primitives[p.tok.Lit]
		if !ok {
			return Typing{}, p.errf("unknown type name %q", p.tok.Lit)
		}
		p.next()
		return Primitive(k), nil

	case ILLEGAL:
		return Typing{}, p.errf("%s", p.tok.Lit)

	default:
		return Typing{}, p.errf("expected a type, found %v", p.tok.Type)
	}
}

func (p *parser) parseNamedTuple() (Typing, error) {
	p.next() // consume '{'
	var cols []Column
	seen := map[string]bool{}
	for p.tok.Type != RBRACE {
		if p.tok.Type != IDENT {
			return Typing{}, p.errf("expected column name, found %v", p.tok.Type)
		}
		name := p.tok.Lit
		if seen[name] {
			return Typing{}, p.errf("duplicate column name %q", name)
		}
		seen[name] = true
		p.next()
		if p.tok.Type != COLON {
			return Typing{}, p.errf("expected ':' after column name %q, found %v", name, p.tok.Type)
		}
		p.next()
		ct, err := p.parseType()
		if err != nil {
			return Typing{}, err
		}
		cols = append(cols, Column{Name: name, Type: ct})
		if p.tok.Type == COMMA {
			p.next()
			continue // allow trailing comma before '}'
		}
		break
	}
	if p.tok.Type != RBRACE {
		return Typing{}, p.errf("expected '}', found %v", p.tok.Type)
	}
	p.next()
	return NamedTuple(cols...), nil
}
