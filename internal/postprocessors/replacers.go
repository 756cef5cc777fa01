// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package postprocessors

import (
	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
	"github.com/DataDog/pii-scrubber/internal/pointer"
)

const (
	DefaultPrefix = filth.PlaceholderPrefix
	DefaultSuffix = filth.PlaceholderSuffix
)

// PrefixSuffixReplacer wraps the current replacement, or the placeholder when none is set.
type PrefixSuffixReplacer struct {
	prefix string
	suffix string
}

// NewPrefixSuffixReplacer creates a PrefixSuffixReplacer.
func NewPrefixSuffixReplacer(prefix string, suffix string) *PrefixSuffixReplacer {
	return &PrefixSuffixReplacer{prefix: prefix, suffix: suffix}
}

// Name returns the post-processor name.
func (r *PrefixSuffixReplacer) Name() string {
	return PrefixSuffixReplacerName
}

// ProcessFilth wraps every replacement.
func (r *PrefixSuffixReplacer) ProcessFilth(filths []*filth.Filth) ([]*filth.Filth, error) {
	for _, f := range filths {
		current := pointer.ValueOr(f.ReplacementString, f.Placeholder())
		f.ReplacementString = pointer.Get(r.prefix + current + r.suffix)
	}
	return filths, nil
}

// FilthRemover deletes filth from the cleaned text.
type FilthRemover struct{}

// NewFilthRemover creates a FilthRemover.
func NewFilthRemover() *FilthRemover {
	return &FilthRemover{}
}

// Name returns the post-processor name.
func (r *FilthRemover) Name() string {
	return FilthRemoverName
}

// ProcessFilth sets every replacement to the empty string.
func (r *FilthRemover) ProcessFilth(filths []*filth.Filth) ([]*filth.Filth, error) {
	for _, f := range filths {
		f.ReplacementString = pointer.Get("")
	}
	return filths, nil
}

// TypeReplacer substitutes filth of configured types with a fixed string.
type TypeReplacer struct {
	replacements map[string]string
}

// NewTypeReplacer creates a TypeReplacer from a type to replacement map.
func NewTypeReplacer(replacements map[string]string) *TypeReplacer {
	return &TypeReplacer{replacements: replacements}
}

// Name returns the post-processor name.
func (r *TypeReplacer) Name() string {
	return TypeReplacerName
}

// ProcessFilth replaces filth whose type is configured. A merged filth takes the replacement of
// its first configured constituent.
func (r *TypeReplacer) ProcessFilth(filths []*filth.Filth) ([]*filth.Filth, error) {
	for _, f := range filths {
		for _, constituent := range f.Filths() {
			if replacement, ok := r.replacements[constituent.Type]; ok {
				f.ReplacementString = pointer.Get(replacement)
				break
			}
		}
	}
	return filths, nil
}
