package command

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a dispatch failure.
type Kind int

const (
	NoError Kind = iota
	SelectorError
	FormatError
	IdentifierError
	EnumError
	ParameterError
	SDKError
)

func (k Kind) String() string {
	switch k {
	case SelectorError:
		return "selector error"
	case FormatError:
		return "format error"
	case IdentifierError:
		return "identifier error"
	case EnumError:
		return "enum error"
	case ParameterError:
		return "parameter error"
	case SDKError:
		return "sdk error"
	}
	return "no error"
}

// Error is the error type returned by every dispatch entry point. Identifier
// is the field or keyword being handled, Token the atom that was rejected,
// if any.
type Error struct {
	Kind       Kind
	Identifier string
	Token      *Atom
	err        error
}

func (e *Error) Error() string {
	msg := e.err.Error()
	if e.Identifier != "" {
		msg = e.Identifier + ": " + msg
	}
	if e.Token != nil {
		msg = fmt.Sprintf("%s (got %s %q)", msg, e.Token.Kind, e.Token.String())
	}
	return e.Kind.String() + ": " + msg
}

func (e *Error) Unwrap() error { return e.err }

// KindOf returns the Kind of the first *Error in err's chain, or NoError.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoError
}

func newError(kind Kind, ident string, tok *Atom, err error) *Error {
	if tok != nil {
		t := *tok
		tok = &t
	}
	return &Error{Kind: kind, Identifier: ident, Token: tok, err: err}
}

func selectorErrorf(tok *Atom, format string, args ...any) error {
	return newError(SelectorError, "", tok, errors.Errorf(format, args...))
}

func formatErrorf(ident string, tok *Atom, format string, args ...any) error {
	return newError(FormatError, ident, tok, errors.Errorf(format, args...))
}

func identifierErrorf(ident string, format string, args ...any) error {
	return newError(IdentifierError, ident, nil, errors.Errorf(format, args...))
}

func enumError(ident string, err error) error {
	return newError(EnumError, ident, nil, err)
}

func parameterErrorf(ident string, tok *Atom, format string, args ...any) error {
	return newError(ParameterError, ident, tok, errors.Errorf(format, args...))
}

func sdkError(ident string, err error) error {
	return newError(SDKError, ident, nil, errors.WithStack(err))
}
