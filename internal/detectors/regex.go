// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package detectors

import (
	// stdlib
	"fmt"
	"iter"
	"regexp"

	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
)

// RegexDetector yields one filth per match of a compiled pattern.
type RegexDetector struct {
	name      string
	filthType string
	pattern   *regexp.Regexp
	group     int
	locale    string
	locales   []string
	check     func(*filth.Filth) bool
}

// RegexOption configures a RegexDetector.
type RegexOption func(*RegexDetector)

// WithName overrides the default detector name.
func WithName(name string) RegexOption {
	return func(d *RegexDetector) {
		d.name = name
	}
}

// WithLocale sets the locale stamped on every filth found.
func WithLocale(locale string) RegexOption {
	return func(d *RegexDetector) {
		d.locale = locale
	}
}

// WithSupportedLocales restricts the locales the detector declares support for.
func WithSupportedLocales(locales ...string) RegexOption {
	return func(d *RegexDetector) {
		d.locales = locales
	}
}

// WithCheck attaches a validity check to every filth found.
func WithCheck(check func(*filth.Filth) bool) RegexOption {
	return func(d *RegexDetector) {
		d.check = check
	}
}

// WithGroup makes the filth cover a named submatch instead of the whole match.
func WithGroup(group string) RegexOption {
	return func(d *RegexDetector) {
		d.group = d.pattern.SubexpIndex(group)
	}
}

// NewRegexDetector creates a detector for pattern that yields filth of filthType.
func NewRegexDetector(name string, filthType string, pattern *regexp.Regexp, opts ...RegexOption) *RegexDetector {
	d := &RegexDetector{
		name:      name,
		filthType: filthType,
		pattern:   pattern,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the detector name.
func (d *RegexDetector) Name() string {
	return d.name
}

// SupportedLocale reports whether the detector handles locale.
func (d *RegexDetector) SupportedLocale(locale string) bool {
	return matchLocale(locale, d.locales)
}

// IterateFilth yields a filth for every non empty match in text.
func (d *RegexDetector) IterateFilth(text string, documentName string) iter.Seq2[*filth.Filth, error] {
	return func(yield func(*filth.Filth, error) bool) {
		for _, loc := range d.pattern.FindAllStringSubmatchIndex(text, -1) {
			beg, end := loc[0], loc[1]
			if d.group > 0 {
				beg, end = loc[2*d.group], loc[2*d.group+1]
			}
			if beg < 0 || beg == end {
				continue
			}
			f := &filth.Filth{
				Beg:          beg,
				End:          end,
				Text:         text[beg:end],
				Type:         d.filthType,
				DetectorName: d.name,
				DocumentName: documentName,
				Locale:       d.locale,
				Check:        d.check,
			}
			if !yield(f, nil) {
				return
			}
		}
	}
}

// RuleConfig describes a user supplied pattern detector.
type RuleConfig struct {
	Name    string `yaml:"name" json:"name"`
	Type    string `yaml:"type" json:"type"`
	Pattern string `yaml:"pattern" json:"pattern"`
	// Group optionally names the submatch that holds the filth.
	Group string `yaml:"group,omitempty" json:"group,omitempty"`
	// Replacement optionally fixes the text that substitutes this rule's filth.
	Replacement string `yaml:"replacement,omitempty" json:"replacement,omitempty"`
}

// NewRuleDetector compiles a configured rule into a RegexDetector.
func NewRuleDetector(rule RuleConfig, locale string) (*RegexDetector, error) {
	if rule.Name == "" {
		return nil, fmt.Errorf("%w: rule without a name", ErrInvalidRule)
	}
	pattern, err := regexp.Compile(rule.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: rule %s: %v", ErrInvalidRule, rule.Name, err)
	}
	filthType := rule.Type
	if filthType == "" {
		filthType = rule.Name
	}
	opts := []RegexOption{WithLocale(locale)}
	if rule.Group != "" {
		if pattern.SubexpIndex(rule.Group) < 0 {
			return nil, fmt.Errorf("%w: rule %s has no group %q", ErrInvalidRule, rule.Name, rule.Group)
		}
		opts = append(opts, WithGroup(rule.Group))
	}
	return NewRegexDetector(rule.Name, filthType, pattern, opts...), nil
}
