package gocalc

import "fmt"

type TokenKind int

const (
	NumberKind TokenKind = iota
	PlusKind
	MinusKind
	EOFKind
)

func (k TokenKind) String() string {
	switch k {
	case NumberKind:
		return "NUMBER"
	case PlusKind:
		return "PLUS"
	case MinusKind:
		return "MINUS"
	case EOFKind:
		return "EOF"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one of NumberToken, PlusToken, MinusToken or EOFToken.
type Token interface {
	Kind() TokenKind
	String() string
}

// NumberToken holds the digits exactly as they appeared in the input.
type NumberToken struct {
	Digits string
}

func (NumberToken) Kind() TokenKind  { return NumberKind }
func (t NumberToken) String() string { return t.Digits }

type PlusToken struct{}

func (PlusToken) Kind() TokenKind { return PlusKind }
func (PlusToken) Rune() rune      { return '+' }
func (PlusToken) String() string  { return "+" }

type MinusToken struct{}

func (MinusToken) Kind() TokenKind { return MinusKind }
func (MinusToken) Rune() rune      { return '-' }
func (MinusToken) String() string  { return "-" }

type EOFToken struct{}

func (EOFToken) Kind() TokenKind { return EOFKind }
func (EOFToken) String() string  { return "EOF" }
