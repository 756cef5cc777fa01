// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

// Package detectors defines the plug-in interface that finds candidate filth in text, the
// registry detectors are created from, and the built-in pattern detectors.
package detectors

import (
	// stdlib
	"iter"
	"strings"

	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
)

// Detector finds filth in the text of one document.
// The returned sequence must only yield filth whose offsets are valid in text, and the
// detector must not keep per-call state on itself.
//
//go:generate mockgen -package=mocks -source=$GOFILE -destination=mocks/mock_$GOFILE
type Detector interface {
	// Name is the key of the detector in a scrubber and the DetectorName of its filth.
	Name() string

	// IterateFilth yields every candidate filth of text.
	IterateFilth(text string, documentName string) iter.Seq2[*filth.Filth, error]
}

// DocumentsDetector is implemented by detectors that process many documents more
// efficiently at once than one at a time.
type DocumentsDetector interface {
	Detector

	// IterateFilthDocuments yields the filth of texts[i] tagged with names[i].
	IterateFilthDocuments(texts []string, names []string) iter.Seq2[*filth.Filth, error]
}

// LocaleSupporter is implemented by plug-ins that only handle some locales.
// Plug-ins without it are locale agnostic.
type LocaleSupporter interface {
	SupportedLocale(locale string) bool
}

// SupportsLocale reports whether a plug-in handles the given locale.
func SupportsLocale(plugin any, locale string) bool {
	supporter, ok := plugin.(LocaleSupporter)
	if !ok || locale == "" {
		return true
	}
	return supporter.SupportedLocale(locale)
}

// IterateDocuments runs a detector over a batch of documents, using the batch form when the
// detector provides one.
func IterateDocuments(detector Detector, texts []string, names []string) iter.Seq2[*filth.Filth, error] {
	if batch, ok := detector.(DocumentsDetector); ok {
		return batch.IterateFilthDocuments(texts, names)
	}
	return func(yield func(*filth.Filth, error) bool) {
		for i, text := range texts {
			for f, err := range detector.IterateFilth(text, names[i]) {
				if !yield(f, err) {
					return
				}
				if err != nil {
					return
				}
			}
		}
	}
}

// matchLocale reports whether locale is one of supported. A supported entry that is only a
// language, such as "en", matches every region of that language.
func matchLocale(locale string, supported []string) bool {
	if len(supported) == 0 {
		return true
	}
	for _, candidate := range supported {
		if strings.EqualFold(candidate, locale) {
			return true
		}
		if !strings.Contains(candidate, "_") && strings.HasPrefix(strings.ToLower(locale), strings.ToLower(candidate)+"_") {
			return true
		}
	}
	return false
}
