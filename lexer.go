package gocalc

import "strings"

const none rune = -1

type Lexer struct {
	input []rune
	pos   int
	start int
	ch    rune
}

func NewLexer(line string) *Lexer {
	l := &Lexer{
		input: []rune(line),
	}
	l.ch = l.charAt(0)
	return l
}

func (l *Lexer) charAt(pos int) rune {
	if pos >= len(l.input) {
		return none
	}
	return l.input[pos]
}

// Pos returns the cursor position in runes.
func (l *Lexer) Pos() int {
	return l.pos
}

// TokenPos returns where the last token returned by NextToken began.
func (l *Lexer) TokenPos() int {
	return l.start
}

func (l *Lexer) advance() {
	l.pos++
	l.ch = l.charAt(l.pos)
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' {
		l.advance()
	}
}

// unicode.IsDigit would accept non-ASCII digits that ParseFloat rejects.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (l *Lexer) readNumber() string {
	var buf strings.Builder
	for isDigit(l.ch) {
		buf.WriteRune(l.ch)
		l.advance()
	}
	return buf.String()
}

func (l *Lexer) NextToken() (Token, error) {
	for l.ch != none {
		l.start = l.pos
		switch {
		case isDigit(l.ch):
			return NumberToken{Digits: l.readNumber()}, nil
		case l.ch == ' ':
			l.skipWhitespace()
			continue
		case l.ch == '+':
			l.advance()
			return PlusToken{}, nil
		case l.ch == '-':
			l.advance()
			return MinusToken{}, nil
		}
		return nil, &LexicalError{Pos: l.pos, Char: l.ch}
	}
	l.start = l.pos
	return EOFToken{}, nil
}

// Tokenize runs a fresh lexer over line up to and including the EOF token.
func Tokenize(line string) ([]Token, error) {
	l := NewLexer(line)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind() == EOFKind {
			return tokens, nil
		}
	}
}
