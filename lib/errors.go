package lib

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGrammar is returned when a document matches neither file grammar.
	ErrGrammar = errors.New("document does not match any part table grammar")

	// ErrArity is returned when a row does not have the columns its header declares.
	ErrArity = errors.New("row does not match header column count")
)

/*
	GrammarError reports how far the parser got before giving up on a document.
	Line is 1-based and counts sanitized lines, not source lines.
*/
type GrammarError struct {
	Path string
	Line int
}

func (e *GrammarError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s (line %d)", ErrGrammar, e.Line)
	}

	return fmt.Sprintf("%s: %s (line %d)", e.Path, ErrGrammar, e.Line)
}

func (e *GrammarError) Unwrap() error { return ErrGrammar }

/*
	ArityError carries the header and row context of a column count mismatch so
	that a batch driver can report it and move on to the next document.
*/
type ArityError struct {
	Table string
	Class string

	HeaderKeys    []string
	HeaderDerived []string
	RowKeys       []string
	RowDerived    []string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf(
		"part %q (class %q): header has %d = %d properties, row has %d = %d\n"+
			"header: %s = %s\nrow: %s = %s",
		e.Table, e.Class,
		len(e.HeaderKeys), len(e.HeaderDerived),
		len(e.RowKeys), len(e.RowDerived),
		strings.Join(e.HeaderKeys, " | "), strings.Join(e.HeaderDerived, " | "),
		strings.Join(e.RowKeys, " | "), strings.Join(e.RowDerived, " | "),
	)
}

func (e *ArityError) Unwrap() error { return ErrArity }
