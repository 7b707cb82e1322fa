package gocalc

import (
	"errors"
	"fmt"
)

var (
	ErrLexical = errors.New("lexical error")
	ErrGrammar = errors.New("grammar error")
)

// LexicalError reports a character that starts no token.
type LexicalError struct {
	Pos  int
	Char rune
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: invalid character %q at position %d", e.Char, e.Pos)
}

func (e *LexicalError) Is(target error) bool {
	return target == ErrLexical
}

// GrammarError reports a token that does not fit expr := NUMBER ((PLUS|MINUS) NUMBER)*.
type GrammarError struct {
	Pos      int
	Expected TokenKind
	Got      Token
	Message  string
}

func newGrammarErrorf(pos int, format string, a ...interface{}) *GrammarError {
	return &GrammarError{
		Pos:     pos,
		Message: fmt.Sprintf(format, a...),
	}
}

func (e *GrammarError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("grammar error: %s at position %d", e.Message, e.Pos)
	}
	got := "nothing"
	if e.Got != nil {
		got = e.Got.Kind().String()
	}
	return fmt.Sprintf("grammar error: expected %v, got %s at position %d", e.Expected, got, e.Pos)
}

func (e *GrammarError) Is(target error) bool {
	return target == ErrGrammar
}
