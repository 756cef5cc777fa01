// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package scrubber

import (
	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
)

// Clean replaces the filth of text using a scrubber built from opts.
func Clean(text string, opts ...Option) (string, error) {
	s, err := New(opts...)
	if err != nil {
		return "", err
	}
	return s.Clean(text)
}

// CleanDocuments replaces the filth of documents keyed by name using a scrubber built from opts.
func CleanDocuments(texts map[string]string, opts ...Option) (map[string]string, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.CleanDocuments(texts)
}

// ListFilth returns the filth of text, with replacements, using a scrubber built from opts.
func ListFilth(text string, opts ...Option) ([]*filth.Filth, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.IterateFilth(text, true)
}

// ListFilthDocuments returns the filth of documents keyed by name using a scrubber built from opts.
func ListFilthDocuments(texts map[string]string, opts ...Option) ([]*filth.Filth, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.IterateFilthDocuments(DocumentMap(texts), true)
}
