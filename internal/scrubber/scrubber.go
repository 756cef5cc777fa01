// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

// Package scrubber finds personal information in documents with a set of detectors, collapses
// overlapping findings into merged filth, lets a chain of post-processors decide replacements
// and substitutes them into the documents.
package scrubber

import (
	// stdlib
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	// 3p
	log "github.com/sirupsen/logrus"

	// project
	"github.com/DataDog/pii-scrubber/internal/collections"
	"github.com/DataDog/pii-scrubber/internal/detectors"
	"github.com/DataDog/pii-scrubber/internal/filth"
	"github.com/DataDog/pii-scrubber/internal/postprocessors"
)

// Scrubber holds the active detectors and post-processors.
// A Scrubber is not safe for concurrent use.
type Scrubber struct {
	locale                string
	logger                *log.Entry
	detectorRegistry      *detectors.Registry
	postProcessorRegistry *postprocessors.Registry
	detectors             []detectors.Detector
	postProcessors        []postprocessors.PostProcessor
}

// New creates a Scrubber. Unless told otherwise it loads every autoloaded detector that supports
// the locale and the autoloaded post-processor chain.
func New(opts ...Option) (*Scrubber, error) {
	o := options{
		locale:   DefaultLocale,
		autoload: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewEntry(log.StandardLogger())
	}
	if o.detectorRegistry == nil {
		o.detectorRegistry = detectors.NewDefaultRegistry()
	}
	if o.postProcessorRegistry == nil {
		o.postProcessorRegistry = postprocessors.NewDefaultRegistry()
	}

	s := &Scrubber{
		locale:                o.locale,
		logger:                o.logger,
		detectorRegistry:      o.detectorRegistry.Clone(),
		postProcessorRegistry: o.postProcessorRegistry.Clone(),
	}

	if o.detectorNames != nil {
		for _, name := range o.detectorNames {
			if err := s.AddDetectorByName(name); err != nil {
				return nil, err
			}
		}
	} else if o.autoload {
		for _, name := range s.detectorRegistry.Autoload() {
			detector, err := s.detectorRegistry.Create(name, s.locale)
			if err != nil {
				return nil, err
			}
			if !detectors.SupportsLocale(detector, s.locale) {
				continue
			}
			if err = s.AddDetector(detector); err != nil {
				return nil, err
			}
		}
	}

	postProcessorNames := o.postProcessorNames
	if postProcessorNames == nil && o.autoload {
		postProcessorNames = s.postProcessorRegistry.Autoload()
	}
	for _, name := range postProcessorNames {
		if err := s.AddPostProcessorByName(name); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Locale returns the locale of the scrubber.
func (s *Scrubber) Locale() string {
	return s.locale
}

// Detectors returns the names of the active detectors in the order they run.
func (s *Scrubber) Detectors() []string {
	names := make([]string, 0, len(s.detectors))
	for _, detector := range s.detectors {
		names = append(names, detector.Name())
	}
	return names
}

// PostProcessors returns the names of the active post-processors in the order they run.
func (s *Scrubber) PostProcessors() []string {
	names := make([]string, 0, len(s.postProcessors))
	for _, postProcessor := range s.postProcessors {
		names = append(names, postProcessor.Name())
	}
	return names
}

// AddDetector activates a detector instance.
func (s *Scrubber) AddDetector(detector detectors.Detector) error {
	if detector == nil {
		return ErrNilDetector
	}
	if slices.Contains(s.Detectors(), detector.Name()) {
		return fmt.Errorf("detector %s: %w", detector.Name(), ErrDuplicateName)
	}
	if !detectors.SupportsLocale(detector, s.locale) {
		s.logger.Warnf("detector %s does not support the scrubber locale %s", detector.Name(), s.locale)
	}
	s.detectors = append(s.detectors, detector)
	return nil
}

// AddDetectorByName creates a registered detector for the scrubber locale and activates it.
func (s *Scrubber) AddDetectorByName(name string) error {
	detector, err := s.detectorRegistry.Create(name, s.locale)
	if errors.Is(err, detectors.ErrNotRegistered) {
		return fmt.Errorf("%w: %w", ErrNotRegistered, err)
	}
	if err != nil {
		return err
	}
	return s.AddDetector(detector)
}

// RemoveDetector deactivates a detector.
func (s *Scrubber) RemoveDetector(name string) error {
	i := slices.Index(s.Detectors(), name)
	if i < 0 {
		return fmt.Errorf("detector %s: %w", name, ErrNotRegistered)
	}
	s.detectors = slices.Delete(s.detectors, i, i+1)
	return nil
}

// AddPostProcessor appends a post-processor to the end of the chain.
func (s *Scrubber) AddPostProcessor(postProcessor postprocessors.PostProcessor) error {
	return s.InsertPostProcessor(len(s.postProcessors), postProcessor)
}

// InsertPostProcessor puts a post-processor at index of the chain. Out of range indexes are
// clamped to the ends of the chain.
func (s *Scrubber) InsertPostProcessor(index int, postProcessor postprocessors.PostProcessor) error {
	if postProcessor == nil {
		return ErrNilPostProcessor
	}
	if slices.Contains(s.PostProcessors(), postProcessor.Name()) {
		return fmt.Errorf("post-processor %s: %w", postProcessor.Name(), ErrDuplicateName)
	}
	if !detectors.SupportsLocale(postProcessor, s.locale) {
		s.logger.Warnf("post-processor %s does not support the scrubber locale %s", postProcessor.Name(), s.locale)
	}
	index = max(0, min(index, len(s.postProcessors)))
	s.postProcessors = slices.Insert(s.postProcessors, index, postProcessor)
	return nil
}

// AddPostProcessorByName creates a registered post-processor and appends it to the chain.
func (s *Scrubber) AddPostProcessorByName(name string) error {
	postProcessor, err := s.postProcessorRegistry.Create(name, s.locale)
	if errors.Is(err, postprocessors.ErrNotRegistered) {
		return fmt.Errorf("%w: %w", ErrNotRegistered, err)
	}
	if err != nil {
		return err
	}
	return s.AddPostProcessor(postProcessor)
}

// RemovePostProcessor removes a post-processor from the chain.
func (s *Scrubber) RemovePostProcessor(name string) error {
	i := slices.Index(s.PostProcessors(), name)
	if i < 0 {
		return fmt.Errorf("post-processor %s: %w", name, ErrNotRegistered)
	}
	s.postProcessors = slices.Delete(s.postProcessors, i, i+1)
	return nil
}

// IterateFilth returns the filth of a single unnamed text.
func (s *Scrubber) IterateFilth(text string, runPostProcessors bool) ([]*filth.Filth, error) {
	return s.IterateFilthDocuments(TextDocument(text), runPostProcessors)
}

// IterateFilthDocuments runs every detector over the documents and returns the filth sorted by
// document then position, with touching or overlapping filth of a document merged. When
// runPostProcessors is set the post-processor chain assigns the replacements.
func (s *Scrubber) IterateFilthDocuments(docs Documents, runPostProcessors bool) ([]*filth.Filth, error) {
	lengths, err := docs.lengths()
	if err != nil {
		return nil, err
	}
	texts, names := docs.split()

	var found []*filth.Filth
	for _, detector := range s.detectors {
		for f, err := range detectors.IterateDocuments(detector, texts, names) {
			if err != nil {
				return nil, fmt.Errorf("detector %s: %w", detector.Name(), err)
			}
			if err = s.validate(detector, f, lengths); err != nil {
				return nil, err
			}
			if !f.IsValid() {
				continue
			}
			found = append(found, f)
		}
	}

	sortFilth(found)
	merged, err := mergeFilth(found)
	if err != nil {
		return nil, err
	}

	if !runPostProcessors {
		return merged, nil
	}
	for _, postProcessor := range s.postProcessors {
		merged, err = postProcessor.ProcessFilth(merged)
		if err != nil {
			return nil, fmt.Errorf("post-processor %s: %w", postProcessor.Name(), err)
		}
	}
	return merged, nil
}

// Clean replaces the filth of a single text.
func (s *Scrubber) Clean(text string) (string, error) {
	cleaned, err := s.cleanDocuments(TextDocument(text))
	if err != nil {
		return "", err
	}
	return cleaned[0].Text, nil
}

// CleanAndCount replaces the filth of a single text and counts it by type. Each constituent of
// a merged filth is counted.
func (s *Scrubber) CleanAndCount(text string) (string, map[string]int64, error) {
	filths, err := s.IterateFilth(text, true)
	if err != nil {
		return "", nil, err
	}
	var constituents []*filth.Filth
	for _, f := range filths {
		constituents = append(constituents, f.Filths()...)
	}
	counts := collections.CountBy(constituents, func(f *filth.Filth) string {
		return f.Type
	})
	return substitute(text, filths), counts, nil
}

// CleanDocuments replaces the filth of documents keyed by name.
func (s *Scrubber) CleanDocuments(texts map[string]string) (map[string]string, error) {
	cleaned, err := s.cleanDocuments(DocumentMap(texts))
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(cleaned))
	for _, doc := range cleaned {
		out[doc.Name] = doc.Text
	}
	return out, nil
}

// CleanDocumentList replaces the filth of each text of the list.
func (s *Scrubber) CleanDocumentList(texts []string) ([]string, error) {
	cleaned, err := s.cleanDocuments(DocumentList(texts))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(cleaned))
	for _, doc := range cleaned {
		out = append(out, doc.Text)
	}
	return out, nil
}

func (s *Scrubber) cleanDocuments(docs Documents) (Documents, error) {
	filths, err := s.IterateFilthDocuments(docs, true)
	if err != nil {
		return nil, err
	}
	byDocument := make(map[string][]*filth.Filth)
	for _, f := range filths {
		byDocument[f.DocumentName] = append(byDocument[f.DocumentName], f)
	}
	cleaned := make(Documents, 0, len(docs))
	for _, doc := range docs {
		cleaned = append(cleaned, Document{Name: doc.Name, Text: substitute(doc.Text, byDocument[doc.Name])})
	}
	return cleaned, nil
}

func (s *Scrubber) validate(detector detectors.Detector, f *filth.Filth, lengths map[string]int) error {
	if f == nil {
		return fmt.Errorf("detector %s yielded nil filth: %w", detector.Name(), ErrInvalidFilth)
	}
	length, ok := lengths[f.DocumentName]
	switch {
	case !ok:
		return fmt.Errorf("detector %s yielded %s for an unknown document: %w", detector.Name(), f, ErrInvalidFilth)
	case f.Type == "":
		return fmt.Errorf("detector %s yielded %s without a type: %w", detector.Name(), f, ErrInvalidFilth)
	case f.Beg < 0 || f.End < f.Beg || f.End > length:
		return fmt.Errorf("detector %s yielded %s outside of its document: %w", detector.Name(), f, ErrInvalidFilth)
	}
	if len(f.Text) != f.End-f.Beg {
		s.logger.Warnf("detector %s yielded %s whose text does not span its offsets", detector.Name(), f)
	}
	return nil
}

// sortFilth orders filth by document, then start, with the longer of two filth starting at the
// same offset first.
func sortFilth(filths []*filth.Filth) {
	slices.SortStableFunc(filths, func(a, b *filth.Filth) int {
		return cmp.Or(
			strings.Compare(a.DocumentName, b.DocumentName),
			cmp.Compare(a.Beg, b.Beg),
			cmp.Compare(b.End, a.End),
		)
	})
}

// mergeFilth merges sorted filth that touch or overlap within a document.
func mergeFilth(sorted []*filth.Filth) ([]*filth.Filth, error) {
	var merged []*filth.Filth
	var current *filth.Filth
	for _, next := range sorted {
		if current == nil || current.DocumentName != next.DocumentName || current.End < next.Beg {
			if current != nil {
				merged = append(merged, current)
			}
			current = next
			continue
		}
		var err error
		if current, err = filth.Merge(current, next); err != nil {
			return nil, err
		}
	}
	if current != nil {
		merged = append(merged, current)
	}
	return merged, nil
}

// substitute replaces non overlapping filth of text with their replacements.
func substitute(text string, filths []*filth.Filth) string {
	if len(filths) == 0 {
		return text
	}
	filths = slices.Clone(filths)
	slices.SortFunc(filths, func(a, b *filth.Filth) int {
		return cmp.Compare(a.Beg, b.Beg)
	})
	var sb strings.Builder
	prev := 0
	for _, f := range filths {
		sb.WriteString(text[prev:f.Beg])
		sb.WriteString(f.Replacement())
		prev = f.End
	}
	sb.WriteString(text[prev:])
	return sb.String()
}
