package element

import "github.com/oarkflow/tomldoc/lexer"

// NotFound is the sentinel index returned by the traversal helpers below in
// place of Python's float('-inf').
const NotFound = -1

// enumerateNonMetadata returns the indexes of the non-metadata sub-elements
// of elems, in order.
func enumerateNonMetadata(elems []Element) []int {
	var out []int
	for i, e := range elems {
		if !e.IsMetadata() {
			out = append(out, i)
		}
	}
	return out
}

func isPunctuation(e Element, typ lexer.TokenType) bool {
	p, ok := e.(*Punctuation)
	return ok && p.Type() == typ
}

func isNewline(e Element) bool {
	_, ok := e.(*Newline)
	return ok
}

// findPrecedingComma returns the index of the nearest comma element before
// index, or NotFound.
func findPrecedingComma(elems []Element, index int) int {
	for i := index - 1; i >= 0; i-- {
		if isPunctuation(elems[i], lexer.TypeComma) {
			return i
		}
	}
	return NotFound
}

// findFollowingComma returns the index of the nearest comma element after
// index, or NotFound.
func findFollowingComma(elems []Element, index int) int {
	for i := index + 1; i < len(elems); i++ {
		if isPunctuation(elems[i], lexer.TypeComma) {
			return i
		}
	}
	return NotFound
}

// findFollowingNonMetadata returns the index of the nearest non-metadata
// element after index, or NotFound.
func findFollowingNonMetadata(elems []Element, index int) int {
	for i := index + 1; i < len(elems); i++ {
		if !elems[i].IsMetadata() {
			return i
		}
	}
	return NotFound
}

// findFollowingNewline returns the index of the nearest Newline element
// after index, or NotFound.
func findFollowingNewline(elems []Element, index int) int {
	for i := index + 1; i < len(elems); i++ {
		if isNewline(elems[i]) {
			return i
		}
	}
	return NotFound
}

// findPrecedingNewline returns the index of the nearest Newline element
// before index, or NotFound.
func findPrecedingNewline(elems []Element, index int) int {
	for i := index - 1; i >= 0; i-- {
		if isNewline(elems[i]) {
			return i
		}
	}
	return NotFound
}

// findClosingSquareBracket returns the index of the trailing ']' element,
// panicking if none exists — a container built by the grammar always has
// one, so its absence means a constructor invariant was violated upstream.
func findClosingSquareBracket(elems []Element) int {
	for i := len(elems) - 1; i >= 0; i-- {
		if isPunctuation(elems[i], lexer.TypeSquareRight) {
			return i
		}
	}
	panic("element: array container missing its closing ']'")
}

// findClosingCurlyBracket returns the index of the trailing '}' element,
// panicking if none exists (see findClosingSquareBracket).
func findClosingCurlyBracket(elems []Element) int {
	for i := len(elems) - 1; i >= 0; i-- {
		if isPunctuation(elems[i], lexer.TypeCurlyRight) {
			return i
		}
	}
	panic("element: inline table container missing its closing '}'")
}
