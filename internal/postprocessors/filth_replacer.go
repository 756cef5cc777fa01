// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package postprocessors

import (
	// stdlib
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	// 3p
	"golang.org/x/crypto/blake2b"

	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
)

// FilthReplacerConfig selects the parts of a filth label.
type FilthReplacerConfig struct {
	IncludeType bool `yaml:"include_type" json:"include_type"`
	// IncludeCount adds a number that is the same for every occurrence of the same text.
	IncludeCount bool `yaml:"include_count" json:"include_count"`
	// IncludeHash adds a keyed BLAKE2b hash of the text.
	IncludeHash bool   `yaml:"include_hash" json:"include_hash"`
	Uppercase   bool   `yaml:"uppercase" json:"uppercase"`
	Separator   string `yaml:"separator" json:"separator"`
	HashLength  int    `yaml:"hash_length" json:"hash_length"`
	// HashSalt keys the hash, at most 64 bytes.
	HashSalt string `yaml:"hash_salt" json:"hash_salt"`
}

// DefaultFilthReplacerConfig labels filth with their upper-cased type only.
func DefaultFilthReplacerConfig() FilthReplacerConfig {
	return FilthReplacerConfig{
		IncludeType: true,
		Uppercase:   true,
		Separator:   "_",
		HashLength:  8,
	}
}

// FilthReplacer sets the replacement of every filth to a label built from its type, count and
// hash. Constituent labels of a merged filth are joined with filth.TypeSeparator.
type FilthReplacer struct {
	config FilthReplacerConfig
	// counts maps a type to the id of each lower-cased text seen so far
	counts map[string]map[string]int
}

// NewFilthReplacer creates a FilthReplacer. Counts are kept for the lifetime of the instance.
func NewFilthReplacer(config FilthReplacerConfig) *FilthReplacer {
	if config.Separator == "" {
		config.Separator = "_"
	}
	if config.HashLength <= 0 {
		config.HashLength = 8
	}
	return &FilthReplacer{
		config: config,
		counts: make(map[string]map[string]int),
	}
}

// Name returns the post-processor name.
func (r *FilthReplacer) Name() string {
	return FilthReplacerName
}

// ProcessFilth labels every filth.
func (r *FilthReplacer) ProcessFilth(filths []*filth.Filth) ([]*filth.Filth, error) {
	for _, f := range filths {
		labels := make([]string, 0, len(f.Filths()))
		for _, constituent := range f.Filths() {
			label, err := r.label(constituent)
			if err != nil {
				return nil, err
			}
			labels = append(labels, label)
		}
		replacement := strings.Join(labels, filth.TypeSeparator)
		f.ReplacementString = &replacement
	}
	return filths, nil
}

func (r *FilthReplacer) label(f *filth.Filth) (string, error) {
	var parts []string
	if r.config.IncludeType || !(r.config.IncludeCount || r.config.IncludeHash) {
		parts = append(parts, f.Type)
	}
	if r.config.IncludeCount {
		parts = append(parts, strconv.Itoa(r.count(f)))
	}
	if r.config.IncludeHash {
		hash, err := r.hash(f.Text)
		if err != nil {
			return "", err
		}
		parts = append(parts, hash)
	}
	label := strings.Join(parts, r.config.Separator)
	if r.config.Uppercase {
		label = strings.ToUpper(label)
	}
	return label, nil
}

func (r *FilthReplacer) count(f *filth.Filth) int {
	seen, ok := r.counts[f.Type]
	if !ok {
		seen = make(map[string]int)
		r.counts[f.Type] = seen
	}
	key := strings.ToLower(f.Text)
	id, ok := seen[key]
	if !ok {
		id = len(seen)
		seen[key] = id
	}
	return id
}

func (r *FilthReplacer) hash(text string) (string, error) {
	h, err := blake2b.New256([]byte(r.config.HashSalt))
	if err != nil {
		return "", fmt.Errorf("hashing filth: %w", err)
	}
	h.Write([]byte(text))
	sum := hex.EncodeToString(h.Sum(nil))
	if r.config.HashLength < len(sum) {
		sum = sum[:r.config.HashLength]
	}
	return sum, nil
}
