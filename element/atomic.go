package element

import (
	"github.com/oarkflow/tomldoc/lexer"
)

// Atomic holds exactly one non-metadata token — a string, integer, float,
// boolean, or date — and nothing else; whitespace around the value belongs
// to the enclosing container.
type Atomic struct{ tokenElement }

func (*Atomic) IsMetadata() bool { return false }

// NewAtomic validates and wraps a single non-metadata value token.
func NewAtomic(tok lexer.Token) (*Atomic, error) {
	if tok.Type.IsMetadata() {
		return nil, &InvalidElementError{Reason: "Atomic element requires a single non-metadata value token"}
	}
	return &Atomic{tokenElement{[]lexer.Token{tok}}}, nil
}

// Token returns the single value token this element wraps.
func (a *Atomic) Token() lexer.Token { return a.toks[0] }

// Value deserializes this atomic's token to its primitive form.
func (a *Atomic) Value() (Value, error) { return Deserialize(a.toks[0]) }

// SetToken replaces this atomic's backing token in place, preserving the
// element's identity — used by the mutator to overwrite a scalar value
// without disturbing the surrounding container's trivia.
func (a *Atomic) SetToken(tok lexer.Token) error {
	if tok.Type.IsMetadata() {
		return &InvalidElementError{Reason: "Atomic element requires a single non-metadata value token"}
	}
	a.toks = []lexer.Token{tok}
	return nil
}
