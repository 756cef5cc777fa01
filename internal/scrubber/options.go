// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package scrubber

import (
	// 3p
	log "github.com/sirupsen/logrus"

	// project
	"github.com/DataDog/pii-scrubber/internal/detectors"
	"github.com/DataDog/pii-scrubber/internal/postprocessors"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en_US"

type options struct {
	locale                string
	logger                *log.Entry
	detectorRegistry      *detectors.Registry
	postProcessorRegistry *postprocessors.Registry
	// nil loads the autoloaded registrations
	detectorNames      []string
	postProcessorNames []string
	autoload           bool
}

// Option configures a Scrubber.
type Option func(*options)

// WithLocale sets the locale detectors and post-processors are created for.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// WithLogger sets the logger locale warnings are written to.
func WithLogger(logger *log.Entry) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDetectorRegistry replaces the built-in detector registry.
func WithDetectorRegistry(registry *detectors.Registry) Option {
	return func(o *options) {
		o.detectorRegistry = registry
	}
}

// WithPostProcessorRegistry replaces the built-in post-processor registry.
func WithPostProcessorRegistry(registry *postprocessors.Registry) Option {
	return func(o *options) {
		o.postProcessorRegistry = registry
	}
}

// WithDetectors loads exactly the named detectors instead of the autoloaded ones.
func WithDetectors(names ...string) Option {
	return func(o *options) {
		o.detectorNames = append([]string{}, names...)
	}
}

// WithPostProcessors loads exactly the named post-processors, in order, instead of the
// autoloaded ones.
func WithPostProcessors(names ...string) Option {
	return func(o *options) {
		o.postProcessorNames = append([]string{}, names...)
	}
}

// WithoutAutoload starts without the autoloaded detectors and post-processors.
func WithoutAutoload() Option {
	return func(o *options) {
		o.autoload = false
	}
}
