// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package scrubber

import (
	// stdlib
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// Document is a named text.
type Document struct {
	Name string
	Text string
}

// Documents is an ordered batch of documents with unique names.
type Documents []Document

// TextDocument wraps a single text as the unnamed document.
func TextDocument(text string) Documents {
	return Documents{{Text: text}}
}

// DocumentList names each text after its position.
func DocumentList(texts []string) Documents {
	docs := make(Documents, 0, len(texts))
	for i, text := range texts {
		docs = append(docs, Document{Name: strconv.Itoa(i), Text: text})
	}
	return docs
}

// DocumentMap orders the documents by name.
func DocumentMap(texts map[string]string) Documents {
	docs := make(Documents, 0, len(texts))
	for _, name := range slices.Sorted(maps.Keys(texts)) {
		docs = append(docs, Document{Name: name, Text: texts[name]})
	}
	return docs
}

func (d Documents) split() ([]string, []string) {
	texts := make([]string, 0, len(d))
	names := make([]string, 0, len(d))
	for _, doc := range d {
		texts = append(texts, doc.Text)
		names = append(names, doc.Name)
	}
	return texts, names
}

func (d Documents) lengths() (map[string]int, error) {
	lengths := make(map[string]int, len(d))
	for _, doc := range d {
		if _, ok := lengths[doc.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDocument, doc.Name)
		}
		lengths[doc.Name] = len(doc.Text)
	}
	return lengths, nil
}
