// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

// Package filth holds the span model shared by detectors, post-processors and the scrubber.
// A Filth is one detected occurrence of personal information inside one document. Overlapping
// filth from the same document are collapsed into a single merged Filth that keeps the
// original detections as its constituents.
package filth

import (
	// stdlib
	"errors"
	"fmt"
	"strings"
)

const (
	Credential           = "credential"
	CreditCard           = "credit_card"
	Email                = "email"
	Known                = "known"
	Merged               = "merged"
	Phone                = "phone"
	PostalCode           = "postalcode"
	Skype                = "skype"
	SocialSecurityNumber = "social_security_number"
	Twitter              = "twitter"
	URL                  = "url"
)

const (
	// PlaceholderPrefix and PlaceholderSuffix delimit the default replacement token.
	PlaceholderPrefix = "{{"
	PlaceholderSuffix = "}}"

	// TypeSeparator joins constituent types in the placeholder of a merged filth.
	TypeSeparator = "+"
)

// Filth is a half-open byte range [Beg, End) of a document that holds personal information.
// Everything but ReplacementString is fixed once a detector yields it.
type Filth struct {
	Beg  int
	End  int
	Text string
	Type string

	DetectorName string
	// DocumentName is empty for the unnamed document of a single text.
	DocumentName string
	Locale       string
	// ComparisonType is only set by detectors that label known filth for evaluation.
	ComparisonType string

	// ReplacementString is nil until a post-processor sets it.
	ReplacementString *string

	// Check optionally reports whether a candidate really is filth, e.g. a checksum.
	Check func(*Filth) bool

	filths []*Filth
}

// New creates a Filth of the given type covering text[beg:end].
func New(beg, end int, text, filthType string) *Filth {
	return &Filth{
		Beg:  beg,
		End:  end,
		Text: text,
		Type: filthType,
	}
}

// IsMerged reports whether the filth is the result of a merge.
func (f *Filth) IsMerged() bool {
	return f.Type == Merged
}

// Filths returns the constituents of a merged filth in the order they were absorbed.
// A plain filth is its own single constituent.
func (f *Filth) Filths() []*Filth {
	if f.IsMerged() {
		return f.filths
	}
	return []*Filth{f}
}

// IsValid runs the optional Check.
func (f *Filth) IsValid() bool {
	if f.Check == nil {
		return true
	}
	return f.Check(f)
}

// Placeholder is the upper-cased type, or the constituent types joined with '+' when merged.
func (f *Filth) Placeholder() string {
	if !f.IsMerged() {
		return strings.ToUpper(f.Type)
	}
	types := make([]string, 0, len(f.filths))
	for _, constituent := range f.filths {
		types = append(types, strings.ToUpper(constituent.Type))
	}
	return strings.Join(types, TypeSeparator)
}

// Replacement returns the text that substitutes the filth in the cleaned document.
func (f *Filth) Replacement() string {
	if f.ReplacementString != nil {
		return *f.ReplacementString
	}
	return PlaceholderPrefix + f.Placeholder() + PlaceholderSuffix
}

// String identifies the filth without exposing its text.
func (f *Filth) String() string {
	return fmt.Sprintf("<%s beg=%d end=%d document=%q detector=%q>", f.Type, f.Beg, f.End, f.DocumentName, f.DetectorName)
}

// Merge absorbs other into f and returns the merged filth. When f is already merged it is
// extended in place, otherwise a new merged filth is created with f as first constituent.
func (f *Filth) Merge(other *Filth) (*Filth, error) {
	return Merge(f, other)
}

// Merge combines two filth of the same document that touch or overlap.
func Merge(a, b *Filth) (*Filth, error) {
	if a.IsMerged() {
		if err := a.absorb(b); err != nil {
			return nil, err
		}
		return a, nil
	}
	merged := &Filth{
		Beg:          a.Beg,
		End:          a.End,
		Text:         a.Text,
		Type:         Merged,
		DocumentName: a.DocumentName,
		Locale:       a.Locale,
		filths:       []*Filth{a},
	}
	if err := merged.absorb(b); err != nil {
		var mergeErr *MergeError
		if errors.As(err, &mergeErr) {
			mergeErr.Left = a
		}
		return nil, err
	}
	return merged, nil
}

func (f *Filth) absorb(other *Filth) error {
	if f.DocumentName != other.DocumentName {
		return &MergeError{Left: f, Right: other, Err: ErrDocumentMismatch}
	}
	if f.End < other.Beg || other.End < f.Beg {
		return &MergeError{Left: f, Right: other, Err: ErrMerge}
	}

	first, second := f.Text, other.Text
	firstEnd, secondEnd := f.End, other.End
	if other.Beg < f.Beg {
		first, second = other.Text, f.Text
		firstEnd, secondEnd = other.End, f.End
	}

	text := first
	if endOffset := secondEnd - firstEnd; endOffset > 0 {
		if endOffset > len(second) {
			return &MergeError{Left: f, Right: other, Err: ErrTextLength}
		}
		text = first + second[len(second)-endOffset:]
	}

	beg := min(f.Beg, other.Beg)
	end := max(f.End, other.End)
	if len(text) != end-beg {
		return &MergeError{Left: f, Right: other, Err: ErrTextLength}
	}

	f.Beg, f.End, f.Text = beg, end, text
	f.filths = append(f.filths, other.Filths()...)
	return nil
}
