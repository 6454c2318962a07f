package parser

import (
	"fmt"
	"strings"
	"unicode"
)

type TokenType int

const (
	EOF TokenType = iota
	Identifier
	Number
	String
	Comma
	Star
	Operator
	OpenParen
	CloseParen
	Turnstile
	Illegal
)

func (t TokenType) String() string {
	return [...]string{
		"EOF",
		"Identifier",
		"Number",
		"String",
		"Comma",
		"Star",
		"Operator",
		"OpenParen",
		"CloseParen",
		"Turnstile",
		"Illegal",
	}[int(t)]
}

type Token struct {
	Typ    TokenType
	Lexeme string
	Line   int
}

func (t Token) String() string {
	return fmt.Sprintf("<%v; %v>", t.Typ, t.Lexeme)
}

// Lex splits query text into tokens. The last token is always EOF.
func Lex(in string) []Token {
	var out []Token
	it := &strIter{strings.NewReader(in), 1}

	singleCharTokens := map[rune]TokenType{
		',': Comma,
		'*': Star,
		'(': OpenParen,
		')': CloseParen,
		'=': Operator,
	}

	for c, ok := it.next(); ok; c, ok = it.next() {
		if unicode.IsSpace(c) {
			continue
		} else if c == ':' {
			if next, ok := it.peek(); ok && next == '-' {
				it.next()
				out = append(out, emit(Turnstile, ":-", it.line))
			} else {
				out = append(out, emit(Illegal, string(c), it.line))
			}
		} else if c == '!' || c == '<' || c == '>' {
			if next, ok := it.peek(); ok && (next == '=' || (c == '<' && next == '>')) {
				it.next()
				out = append(out, emit(Operator, string(c)+string(next), it.line))
			} else if c == '!' {
				out = append(out, emit(Illegal, string(c), it.line))
			} else {
				out = append(out, emit(Operator, string(c), it.line))
			}
		} else if typ, ok := singleCharTokens[c]; ok {
			out = append(out, emit(typ, string(c), it.line))
		} else if unicode.IsDigit(c) || ((c == '-' || c == '+') && it.peekIsDigit()) {
			dig := readWhile(c, it, unicode.IsDigit)
			out = append(out, emit(Number, dig, it.line))
		} else if c == '\'' {
			word := readWhile(c, it, func(r rune) bool { return r != '\'' && r != '\n' })
			if next, ok := it.peek(); !ok || next != '\'' {
				out = append(out, emit(Illegal, word, it.line))
				continue
			}
			it.next() // consume trailing '
			out = append(out, emit(String, word[1:], it.line))
		} else if unicode.IsLetter(c) || c == '_' {
			word := readWhile(c, it, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' })
			out = append(out, emit(Identifier, word, it.line))
		} else {
			out = append(out, emit(Illegal, string(c), it.line))
		}
	}

	out = append(out, emit(EOF, "", it.line))
	return out
}

func readWhile(first rune, si *strIter, fn func(rune) bool) string {
	var sb strings.Builder
	sb.WriteRune(first)
	for next, ok := si.peek(); ok; next, ok = si.peek() {
		if !fn(next) {
			break
		}
		si.next()
		sb.WriteRune(next)
	}
	return sb.String()
}

type strIter struct {
	*strings.Reader
	line int
}

func (l *strIter) next() (rune, bool) {
	r, _, err := l.ReadRune()
	if err != nil {
		return r, false
	}
	if r == '\n' {
		l.line++
	}
	return r, true
}

func (l *strIter) peek() (rune, bool) {
	r, _, err := l.ReadRune()
	if err != nil {
		return r, false
	}
	l.UnreadRune()
	return r, true
}

func (l *strIter) peekIsDigit() bool {
	r, ok := l.peek()
	return ok && unicode.IsDigit(r)
}

func emit(typ TokenType, lexeme string, line int) Token {
	return Token{typ, lexeme, line}
}
