package gocalc

import "strconv"

type op int

const (
	opNone op = iota
	opPlus
	opMinus
)

// Parser evaluates a single line while parsing it. There is no syntax tree.
type Parser struct {
	lexer    *Lexer
	current  Token
	result   float64
	pending  op
	awaiting bool
}

func NewParser(line string) *Parser {
	return &Parser{
		lexer: NewLexer(line),
	}
}

func (p *Parser) next() error {
	tok, err := p.lexer.NextToken()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

func (p *Parser) eat(kind TokenKind) error {
	if p.current == nil {
		return &GrammarError{Pos: p.lexer.TokenPos(), Expected: kind}
	}
	if p.current.Kind() != kind {
		return &GrammarError{Pos: p.lexer.TokenPos(), Expected: kind, Got: p.current}
	}
	return p.next()
}

// number converts the current token. Digits are only parsed here, at the
// point of use; runs too long for a float64 become ±Inf.
func (p *Parser) number() (float64, error) {
	tok, ok := p.current.(NumberToken)
	if !ok {
		return 0, p.eat(NumberKind)
	}
	v, err := strconv.ParseFloat(tok.Digits, 64)
	if err != nil && !isRangeError(err) {
		return 0, newGrammarErrorf(p.lexer.TokenPos(), "invalid number %q", tok.Digits)
	}
	return v, nil
}

func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// Evaluate folds expr := NUMBER ((PLUS|MINUS) NUMBER)* from left to right.
func (p *Parser) Evaluate() (float64, error) {
	if err := p.next(); err != nil {
		return 0, err
	}
	v, err := p.number()
	if err != nil {
		return 0, err
	}
	p.result = v
	if err := p.eat(NumberKind); err != nil {
		return 0, err
	}

	for p.current.Kind() != EOFKind {
		switch p.current.(type) {
		case NumberToken:
			if p.pending == opNone || !p.awaiting {
				return 0, newGrammarErrorf(p.lexer.TokenPos(), "expected PLUS or MINUS, got NUMBER")
			}
			v, err := p.number()
			if err != nil {
				return 0, err
			}
			switch p.pending {
			case opPlus:
				p.result += v
			case opMinus:
				p.result -= v
			}
			p.awaiting = false
			if err := p.eat(NumberKind); err != nil {
				return 0, err
			}
		case PlusToken, MinusToken:
			if p.awaiting {
				return 0, p.eat(NumberKind)
			}
			kind := p.current.Kind()
			if kind == PlusKind {
				p.pending = opPlus
			} else {
				p.pending = opMinus
			}
			p.awaiting = true
			if err := p.eat(kind); err != nil {
				return 0, err
			}
		default:
			return 0, newGrammarErrorf(p.lexer.TokenPos(), "unexpected %v", p.current.Kind())
		}
	}
	if p.awaiting {
		return 0, p.eat(NumberKind)
	}
	return p.result, nil
}

// Eval evaluates line with a fresh Lexer and Parser.
func Eval(line string) (float64, error) {
	return NewParser(line).Evaluate()
}
