package parser

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ryogrid/cqbase/query"
)

var ErrSyntax = errors.New("syntax error")

type queryParser struct {
	tokens []Token
	pos    int
}

// ProcessQueryStr parses a conjunctive query such as
//
//	Q(x, SUM(y * z)) :- R(x, y, w), S(w, z), z >= 3
func ProcessQueryStr(queryStr string) (*query.Query, error) {
	p := &queryParser{Lex(queryStr), 0}
	return p.parseQuery()
}

// ParseFile reads the whole file and parses the query it contains.
func ParseFile(path string) (*query.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read query file %s", path)
	}
	q, err := ProcessQueryStr(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse query file %s", path)
	}
	return q, nil
}

func (p *queryParser) parseQuery() (*query.Query, error) {
	head, err := p.parseHead()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Turnstile); err != nil {
		return nil, err
	}

	body := make([]query.Atom, 0)
	for {
		atom, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		body = append(body, atom)
		if p.peek().Typ != Comma {
			break
		}
		p.advance()
	}
	if _, err := p.expect(EOF); err != nil {
		return nil, err
	}
	return query.NewQuery(head, body), nil
}

func (p *queryParser) parseHead() (*query.Head, error) {
	name, err := p.expect(Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(OpenParen); err != nil {
		return nil, err
	}

	head := &query.Head{Name: name.Lexeme, Variables: make([]query.Variable, 0)}
	if p.peek().Typ == CloseParen {
		p.advance()
		return head, nil
	}
	for {
		tok := p.peek()
		if tok.Typ == Identifier && strings.EqualFold(tok.Lexeme, "SUM") && p.peekAt(1).Typ == OpenParen {
			if head.SumAggregate != nil {
				return nil, p.errorAt(tok, "only one SUM aggregate is allowed in the head")
			}
			agg, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			head.SumAggregate = agg
		} else {
			if head.SumAggregate != nil {
				return nil, p.errorAt(tok, "the SUM aggregate must be the last head item")
			}
			v, err := p.expect(Identifier)
			if err != nil {
				return nil, err
			}
			head.Variables = append(head.Variables, query.NewVariable(v.Lexeme))
		}

		if p.peek().Typ == Comma {
			p.advance()
			continue
		}
		if _, err := p.expect(CloseParen); err != nil {
			return nil, err
		}
		return head, nil
	}
}

func (p *queryParser) parseSum() (*query.SumAggregate, error) {
	p.advance() // SUM
	p.advance() // (
	agg := &query.SumAggregate{ProductTerms: make([]query.Term, 0)}
	for {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		agg.ProductTerms = append(agg.ProductTerms, term)
		if p.peek().Typ != Star {
			break
		}
		p.advance()
	}
	if _, err := p.expect(CloseParen); err != nil {
		return nil, err
	}
	return agg, nil
}

func (p *queryParser) parseAtom() (query.Atom, error) {
	if p.peek().Typ == Identifier && p.peekAt(1).Typ == OpenParen {
		name := p.advance()
		p.advance() // (
		terms := make([]query.Term, 0)
		if p.peek().Typ != CloseParen {
			for {
				term, err := p.parseTerm()
				if err != nil {
					return nil, err
				}
				terms = append(terms, term)
				if p.peek().Typ != Comma {
					break
				}
				p.advance()
			}
		}
		if _, err := p.expect(CloseParen); err != nil {
			return nil, err
		}
		return query.NewRelationalAtom(name.Lexeme, terms...), nil
	}

	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	opTok, err := p.expect(Operator)
	if err != nil {
		return nil, err
	}
	op, ok := query.ParseComparisonOperator(opTok.Lexeme)
	if !ok {
		return nil, p.errorAt(opTok, "unknown comparison operator")
	}
	right, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return query.NewComparisonAtom(left, op, right), nil
}

func (p *queryParser) parseTerm() (query.Term, error) {
	tok := p.advance()
	switch tok.Typ {
	case Identifier:
		return query.NewVariable(tok.Lexeme), nil
	case Number:
		val, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorAt(tok, "integer literal out of range")
		}
		return query.NewIntConstant(val), nil
	case String:
		return query.NewStringConstant(tok.Lexeme), nil
	}
	return nil, p.errorAt(tok, "expected a term")
}

func (p *queryParser) peek() Token {
	return p.peekAt(0)
}

func (p *queryParser) peekAt(offset int) Token {
	if p.pos+offset >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+offset]
}

func (p *queryParser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *queryParser) expect(typ TokenType) (Token, error) {
	tok := p.advance()
	if tok.Typ != typ {
		return tok, p.errorAt(tok, "expected "+typ.String())
	}
	return tok, nil
}

func (p *queryParser) errorAt(tok Token, msg string) error {
	return errors.Wrapf(ErrSyntax, "line %d: %s, got %v", tok.Line, msg, tok)
}
