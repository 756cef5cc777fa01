// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

// Package config reads the YAML file that configures the scrubber of the job.
//
//	locale: en_GB
//	detectors: [email, phone, postalcode]
//	rules:
//	  - name: employee_id
//	    pattern: 'emp-(?P<id>\d{6})'
//	    group: id
//	    replacement: EMPLOYEE
//	known_filth:
//	  - match: Jane Doe
//	    filth_type: name
//	filth_replacer:
//	  include_type: true
//	  include_count: true
//	  uppercase: true
package config

import (
	// stdlib
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	// 3p
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	// project
	"github.com/DataDog/pii-scrubber/internal/detectors"
	"github.com/DataDog/pii-scrubber/internal/postprocessors"
	"github.com/DataDog/pii-scrubber/internal/scrubber"
)

// DefaultPath is read when no configuration path is given.
const DefaultPath = "scrubber.yaml"

// typeReplacerIndex runs the fixed rule replacements after the default chain.
const typeReplacerIndex = 2

// Config is the scrubber configuration.
type Config struct {
	Locale string `yaml:"locale"`
	// Detectors replaces the autoloaded detectors when set. Rules and known filth are always added.
	Detectors      []string                            `yaml:"detectors"`
	Rules          []detectors.RuleConfig              `yaml:"rules"`
	KnownFilth     []detectors.KnownFilth              `yaml:"known_filth"`
	PostProcessors []string                            `yaml:"post_processors"`
	FilthReplacer  *postprocessors.FilthReplacerConfig `yaml:"filth_replacer"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{Locale: scrubber.DefaultLocale}
}

// Load reads the configuration at path. A missing file gives the default configuration.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML configuration, rejecting unknown fields.
func Parse(data []byte) (Config, error) {
	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if config.Locale == "" {
		config.Locale = scrubber.DefaultLocale
	}
	return config, nil
}

// Options converts the configuration into scrubber options.
func (c Config) Options(logger *log.Entry) ([]scrubber.Option, error) {
	detectorRegistry, err := c.detectorRegistry()
	if err != nil {
		return nil, err
	}
	postProcessorRegistry, err := c.postProcessorRegistry()
	if err != nil {
		return nil, err
	}

	opts := []scrubber.Option{
		scrubber.WithLocale(c.Locale),
		scrubber.WithLogger(logger),
		scrubber.WithDetectorRegistry(detectorRegistry),
		scrubber.WithPostProcessorRegistry(postProcessorRegistry),
	}
	if c.Detectors != nil {
		names := append([]string{}, c.Detectors...)
		for _, rule := range c.Rules {
			if !slices.Contains(names, rule.Name) {
				names = append(names, rule.Name)
			}
		}
		if len(c.KnownFilth) > 0 && !slices.Contains(names, detectors.KnownFilthName) {
			names = append(names, detectors.KnownFilthName)
		}
		opts = append(opts, scrubber.WithDetectors(names...))
	}
	if c.PostProcessors != nil {
		opts = append(opts, scrubber.WithPostProcessors(c.PostProcessors...))
	}
	return opts, nil
}

// NewScrubber builds the configured scrubber.
func (c Config) NewScrubber(logger *log.Entry) (*scrubber.Scrubber, error) {
	opts, err := c.Options(logger)
	if err != nil {
		return nil, err
	}
	return scrubber.New(opts...)
}

func (c Config) detectorRegistry() (*detectors.Registry, error) {
	registry := detectors.NewDefaultRegistry()
	for _, rule := range c.Rules {
		if _, err := detectors.NewRuleDetector(rule, c.Locale); err != nil {
			return nil, err
		}
		factory := func(locale string) (detectors.Detector, error) {
			return detectors.NewRuleDetector(rule, locale)
		}
		if err := registry.Register(detectors.New(rule.Name, factory, true)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if len(c.KnownFilth) > 0 {
		known := c.KnownFilth
		factory := func(locale string) (detectors.Detector, error) {
			return detectors.NewKnownFilthDetector(known, locale), nil
		}
		if err := registry.Register(detectors.New(detectors.KnownFilthName, factory, true)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return registry, nil
}

func (c Config) postProcessorRegistry() (*postprocessors.Registry, error) {
	registry := postprocessors.NewDefaultRegistry()
	if c.FilthReplacer != nil {
		replacerConfig := *c.FilthReplacer
		if err := registry.Unregister(postprocessors.FilthReplacerName); err != nil {
			return nil, err
		}
		factory := func(string) (postprocessors.PostProcessor, error) {
			return postprocessors.NewFilthReplacer(replacerConfig), nil
		}
		if err := registry.Register(postprocessors.New(postprocessors.FilthReplacerName, factory, true, 0)); err != nil {
			return nil, err
		}
	}

	replacements := make(map[string]string)
	for _, rule := range c.Rules {
		if rule.Replacement != "" {
			replacements[cmp.Or(rule.Type, rule.Name)] = rule.Replacement
		}
	}
	if len(replacements) > 0 {
		factory := func(string) (postprocessors.PostProcessor, error) {
			return postprocessors.NewTypeReplacer(replacements), nil
		}
		if err := registry.Register(postprocessors.New(postprocessors.TypeReplacerName, factory, true, typeReplacerIndex)); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
