package parser

import "github.com/oarkflow/tomldoc/element"

// Rule matches some grammar production starting at s. On success it
// returns the sub-elements it produced and the stream positioned just
// past them. On failure it returns a non-nil error and s is not
// guaranteed meaningful — callers must retry from the Stream they started
// with, not from the Rule's return value.
type Rule func(s Stream) ([]element.Element, Stream, error)

// Captured is a small recursive-descent combinator, grounded on the
// extract/or_extract/and_extract DSL: each method call attempts one more
// grammar Rule and folds its result into an accumulating element sequence,
// short-circuiting once any step has failed.
type Captured struct {
	stream Stream
	value  []element.Element
	err    error
}

// CaptureFrom starts a fresh, empty Captured at s.
func CaptureFrom(s Stream) *Captured {
	return &Captured{stream: s}
}

// Extract applies rule. If this Captured already failed, or rule fails,
// the failure (and the stream position at the point of failure) is
// carried forward; a later OrExtract can still retry from there.
func (c *Captured) Extract(rule Rule) *Captured {
	if c.err != nil {
		return c
	}
	elems, next, err := rule(c.stream)
	if err != nil {
		return &Captured{stream: c.stream, err: err}
	}
	merged := make([]element.Element, 0, len(c.value)+len(elems))
	merged = append(merged, c.value...)
	merged = append(merged, elems...)
	return &Captured{stream: next, value: merged}
}

// AndExtract is Extract restricted to the success path: it is a no-op
// (propagating the failure) if c already failed. It exists as a distinct
// name purely to mark "this step assumes everything before it succeeded"
// at call sites, matching the grammar's own sequencing reading.
func (c *Captured) AndExtract(rule Rule) *Captured {
	return c.Extract(rule)
}

// OrExtract is the alternation operator: if c is already in a failed
// state, it discards that failure and tries rule fresh from the stream
// position the failed attempt started at. If c succeeded, it is returned
// unchanged — the alternative is never attempted.
func (c *Captured) OrExtract(rule Rule) *Captured {
	if c.err == nil {
		return c
	}
	return CaptureFrom(c.stream).Extract(rule)
}

// OrEmpty turns a failed Captured into a successful, empty one positioned
// back at the pre-failure stream — for optional grammar productions.
func (c *Captured) OrEmpty() *Captured {
	if c.err == nil {
		return c
	}
	return &Captured{stream: c.stream}
}

// Value returns the accumulated elements and the stream positioned past
// them, or the error that caused this Captured to fail.
func (c *Captured) Value() ([]element.Element, Stream, error) {
	if c.err != nil {
		return nil, c.stream, c.err
	}
	return c.value, c.stream, nil
}
