// Unless explicitly stated otherwise all files in this repository are licensed under the Apache-2 License.

// This product includes software developed at Datadog (https://www.datadoghq.com/) Copyright 2025 Datadog, Inc.

package detectors

import (
	// stdlib
	"fmt"
	"slices"

	// project
	"github.com/DataDog/pii-scrubber/internal/filth"
)

type (
	// Factory creates a detector configured for a locale.
	Factory func(locale string) (Detector, error)

	// Registration is a detector definition.
	Registration struct {
		Name    string
		Factory Factory
		// Autoload adds the detector to scrubbers that were not given an explicit list.
		Autoload bool
	}

	// Registry maps detector names to their factories, in registration order.
	// Registry is not thread safe: register everything before building scrubbers from it.
	Registry struct {
		registrations map[string]Registration
		order         []string
	}
)

// New creates a Registration.
func New(name string, factory Factory, autoload bool) Registration {
	return Registration{
		Name:     name,
		Factory:  factory,
		Autoload: autoload,
	}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		registrations: map[string]Registration{},
	}
}

// NewDefaultRegistry returns a registry holding the built-in detectors.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	// built-in names are unique
	_ = r.Register(
		New(filth.Credential, regexFactory(NewCredentialDetector), true),
		New(filth.CreditCard, regexFactory(NewCreditCardDetector), true),
		New(filth.Email, regexFactory(NewEmailDetector), true),
		New(filth.Phone, regexFactory(NewPhoneDetector), true),
		New(filth.PostalCode, regexFactory(NewPostalCodeDetector), true),
		New(filth.Skype, regexFactory(NewSkypeDetector), false),
		New(filth.SocialSecurityNumber, regexFactory(NewSocialSecurityNumberDetector), true),
		New(filth.Twitter, regexFactory(NewTwitterDetector), true),
		New(filth.URL, regexFactory(NewURLDetector), true),
	)
	return r
}

func regexFactory(constructor func(...RegexOption) *RegexDetector) Factory {
	return func(locale string) (Detector, error) {
		return constructor(WithLocale(locale)), nil
	}
}

// Register adds one or more detector definitions.
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

// Unregister removes a detector definition.
func (r *Registry) Unregister(name string) error {
	if _, ok := r.registrations[name]; !ok {
		return fmt.Errorf("couldn't find detector %s: %w", name, ErrNotRegistered)
	}
	delete(r.registrations, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	return nil
}

// Create instantiates the detector registered as name.
func (r *Registry) Create(name string, locale string) (Detector, error) {
	registration, ok := r.registrations[name]
	if !ok {
		return nil, fmt.Errorf("couldn't find detector %s: %w", name, ErrNotRegistered)
	}
	detector, err := registration.Factory(locale)
	if err != nil {
		return nil, fmt.Errorf("creating detector %s: %w", name, err)
	}
	return detector, nil
}

// Names returns every registered name in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Autoload returns the names of the detectors to load by default, in registration order.
func (r *Registry) Autoload() []string {
	var names []string
	for _, name := range r.order {
		if r.registrations[name].Autoload {
			names = append(names, name)
		}
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
