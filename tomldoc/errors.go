// Package tomldoc is the top-level facade over the element tree (package
// element) and the grammar (package parser): it assembles their output
// into a File that callers can navigate, mutate, and serialize without
// touching the lower-level packages directly.
package tomldoc

import (
	"fmt"

	"github.com/oarkflow/tomldoc/element"
	"github.com/oarkflow/tomldoc/lexer"
)

// TOMLError is the common interface implemented by the error types
// declared in this file: callers that don't care about the distinction can
// match on this interface; callers that do can type-switch to the concrete
// kinds below. The re-exported InvalidElementError and NotPrimitiveError do
// not implement it, and neither do errors passed through unwrapped from
// value decoding (e.g. a bad escape surfaced by Get).
type TOMLError interface {
	error
	tomlError()
}

// LexerError wraps a tokenization failure.
type LexerError struct{ Err *lexer.Error }

func (e *LexerError) Error() string { return e.Err.Error() }
func (*LexerError) tomlError()      {}

// ParsingError wraps a grammar failure.
type ParsingError struct{ Err error }

func (e *ParsingError) Error() string { return e.Err.Error() }
func (*ParsingError) tomlError()      {}

// InvalidTOMLFileError reports that the top-level element sequence does
// not have the shape (optional TableBody, then (TableHeader, TableBody)
// pairs) a well-formed document must have.
type InvalidTOMLFileError struct{ Reason string }

func (e *InvalidTOMLFileError) Error() string {
	return fmt.Sprintf("invalid TOML file: %s", e.Reason)
}
func (*InvalidTOMLFileError) tomlError() {}

// DuplicateKeysError reports that a table body binds the same key twice.
type DuplicateKeysError struct{ Key string }

func (e *DuplicateKeysError) Error() string { return fmt.Sprintf("duplicate key %q", e.Key) }
func (*DuplicateKeysError) tomlError()      {}

// DuplicateTablesError reports that two table headers name the same table.
type DuplicateTablesError struct{ Name string }

func (e *DuplicateTablesError) Error() string { return fmt.Sprintf("duplicate table %q", e.Name) }
func (*DuplicateTablesError) tomlError()      {}

// NoArrayFound reports that a name resolved to something other than an
// array of tables when Array was called on it.
type NoArrayFound struct{ Name string }

func (e *NoArrayFound) Error() string { return fmt.Sprintf("no array of tables named %q", e.Name) }
func (*NoArrayFound) tomlError()      {}

// KeyNotFoundError reports that a dotted name does not resolve to
// anything in the document.
type KeyNotFoundError struct{ Name string }

func (e *KeyNotFoundError) Error() string { return fmt.Sprintf("key %q not found", e.Name) }
func (*KeyNotFoundError) tomlError()      {}

// InvalidElementError re-exports element.InvalidElementError under this
// package's error taxonomy.
type InvalidElementError = element.InvalidElementError

// NotPrimitiveError re-exports element.NotPrimitiveError under this
// package's error taxonomy.
type NotPrimitiveError = element.NotPrimitiveError
