// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package detectors

import (
	// stdlib
	"iter"
	"slices"
	"strings"

	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
)

// KnownFilthName is the registry name of the known filth detector.
const KnownFilthName = "known"

// KnownFilth is a piece of text already known to be filth, used to label documents when
// measuring detector accuracy.
type KnownFilth struct {
	// Match is the text, or the start of the text, of the filth.
	Match string `yaml:"match" json:"match"`
	// MatchEnd optionally ends the filth at the first occurrence after Match.
	MatchEnd string `yaml:"match_end,omitempty" json:"match_end,omitempty"`
	// Type is the filth type the text is known to be.
	Type string `yaml:"filth_type" json:"filth_type"`
	// DocumentName optionally limits the entry to one document.
	DocumentName string `yaml:"document_name,omitempty" json:"document_name,omitempty"`
	IgnoreCase   bool   `yaml:"ignore_case,omitempty" json:"ignore_case,omitempty"`
}

// KnownFilthDetector yields filth for every occurrence of known text.
type KnownFilthDetector struct {
	name   string
	locale string
	known  []KnownFilth
}

// NewKnownFilthDetector creates a detector over the given known filth.
func NewKnownFilthDetector(known []KnownFilth, locale string) *KnownFilthDetector {
	return &KnownFilthDetector{
		name:   KnownFilthName,
		locale: locale,
		known:  known,
	}
}

// Name returns the detector name.
func (d *KnownFilthDetector) Name() string {
	return d.name
}

// IterateFilth yields the known filth of one document.
func (d *KnownFilthDetector) IterateFilth(text string, documentName string) iter.Seq2[*filth.Filth, error] {
	return func(yield func(*filth.Filth, error) bool) {
		for _, known := range d.known {
			if known.DocumentName != "" && known.DocumentName != documentName {
				continue
			}
			if !d.yieldMatches(text, documentName, known, yield) {
				return
			}
		}
	}
}

// IterateFilthDocuments groups the known filth per document once for the whole batch.
func (d *KnownFilthDetector) IterateFilthDocuments(texts []string, names []string) iter.Seq2[*filth.Filth, error] {
	perDocument := make(map[string][]KnownFilth)
	var shared []KnownFilth
	for _, known := range d.known {
		if known.DocumentName == "" {
			shared = append(shared, known)
			continue
		}
		perDocument[known.DocumentName] = append(perDocument[known.DocumentName], known)
	}
	return func(yield func(*filth.Filth, error) bool) {
		for i, text := range texts {
			for _, known := range slices.Concat(perDocument[names[i]], shared) {
				if !d.yieldMatches(text, names[i], known, yield) {
					return
				}
			}
		}
	}
}

func (d *KnownFilthDetector) yieldMatches(text string, documentName string, known KnownFilth, yield func(*filth.Filth, error) bool) bool {
	if known.Match == "" {
		return true
	}
	haystack, match, matchEnd := text, known.Match, known.MatchEnd
	if known.IgnoreCase {
		haystack, match, matchEnd = lowerASCII(text), lowerASCII(match), lowerASCII(matchEnd)
	}
	for offset := 0; offset < len(haystack); {
		beg := strings.Index(haystack[offset:], match)
		if beg < 0 {
			return true
		}
		beg += offset
		end := beg + len(match)
		if matchEnd != "" {
			endIdx := strings.Index(haystack[end:], matchEnd)
			if endIdx < 0 {
				return true
			}
			end += endIdx + len(matchEnd)
		}
		f := &filth.Filth{
			Beg:            beg,
			End:            end,
			Text:           text[beg:end],
			Type:           filth.Known,
			DetectorName:   d.name,
			DocumentName:   documentName,
			Locale:         d.locale,
			ComparisonType: known.Type,
		}
		if !yield(f, nil) {
			return false
		}
		offset = end
	}
	return true
}

// lowerASCII lower-cases ASCII letters byte by byte. Other bytes, including invalid UTF-8, are
// kept as is so offsets found in the result index the original text.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
