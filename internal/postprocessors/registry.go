// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package postprocessors

import (
	// stdlib
	"cmp"
	"fmt"
	"slices"
)

const (
	FilthReplacerName        = "filth_replacer"
	PrefixSuffixReplacerName = "prefix_suffix_replacer"
	FilthRemoverName         = "filth_remover"
	TypeReplacerName         = "type_replacer"
)

type (
	// Factory creates a post-processor configured for a locale.
	Factory func(locale string) (PostProcessor, error)

	// Registration is a post-processor definition.
	Registration struct {
		Name    string
		Factory Factory
		// Autoload adds the post-processor to scrubbers that were not given an explicit list.
		Autoload bool
		// Index orders autoloaded post-processors, lowest first.
		Index int
	}

	// Registry maps post-processor names to their factories.
	// Registry is not thread safe.
	Registry struct {
		registrations map[string]Registration
		order         []string
	}
)

// New creates a Registration.
func New(name string, factory Factory, autoload bool, index int) Registration {
	return Registration{
		Name:     name,
		Factory:  factory,
		Autoload: autoload,
		Index:    index,
	}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		registrations: map[string]Registration{},
	}
}

// NewDefaultRegistry returns a registry holding the built-in post-processors. The autoloaded
// chain labels filth with their type and wraps the label in {{ }}.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(
		New(FilthReplacerName, func(string) (PostProcessor, error) {
			return NewFilthReplacer(DefaultFilthReplacerConfig()), nil
		}, true, 0),
		New(PrefixSuffixReplacerName, func(string) (PostProcessor, error) {
			return NewPrefixSuffixReplacer(DefaultPrefix, DefaultSuffix), nil
		}, true, 1),
		New(FilthRemoverName, func(string) (PostProcessor, error) {
			return NewFilthRemover(), nil
		}, false, 0),
	)
	return r
}

// Register adds one or more post-processor definitions.
func (r *Registry) Register(registrations ...Registration) error {
	for _, registration := range registrations {
		if _, ok := r.registrations[registration.Name]; ok {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, registration.Name)
		}
		r.registrations[registration.Name] = registration
		r.order = append(r.order, registration.Name)
	}
	return nil
}

// Unregister removes a post-processor definition.
func (r *Registry) Unregister(name string) error {
	if _, ok := r.registrations[name]; !ok {
		return fmt.Errorf("couldn't find post-processor %s: %w", name, ErrNotRegistered)
	}
	delete(r.registrations, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	return nil
}

// Create instantiates the post-processor registered as name.
func (r *Registry) Create(name string, locale string) (PostProcessor, error) {
	registration, ok := r.registrations[name]
	if !ok {
		return nil, fmt.Errorf("couldn't find post-processor %s: %w", name, ErrNotRegistered)
	}
	postProcessor, err := registration.Factory(locale)
	if err != nil {
		return nil, fmt.Errorf("creating post-processor %s: %w", name, err)
	}
	return postProcessor, nil
}

// Names returns every registered name in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Autoload returns the names of the post-processors to load by default, sorted by Index with
// ties kept in registration order.
func (r *Registry) Autoload() []string {
	var autoload []Registration
	for _, name := range r.order {
		if registration := r.registrations[name]; registration.Autoload {
			autoload = append(autoload, registration)
		}
	}
	slices.SortStableFunc(autoload, func(a, b Registration) int {
		return cmp.Compare(a.Index, b.Index)
	})
	names := make([]string, 0, len(autoload))
	for _, registration := range autoload {
		names = append(names, registration.Name)
	}
	return names
}

// Clone returns a copy that later registrations on r do not affect.
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()
	for _, name := range r.order {
		clone.registrations[name] = r.registrations[name]
	}
	clone.order = slices.Clone(r.order)
	return clone
}
