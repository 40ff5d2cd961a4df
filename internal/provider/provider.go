// Package provider defines the known video providers and the pure
// functions that turn a video URL into an embeddable identity.
package provider

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// OptionDescriptor describes one boolean embed option of a provider.
type OptionDescriptor struct {
	Name           string // Query parameter name, unique within a provider
	Label          string // Display text
	DefaultEnabled bool
}

// Definition describes a video provider.
type Definition struct {
	Name        string
	Pattern     *regexp.Regexp // Group 1 is the video ID, group 2 the trailing query
	EmbedPrefix string         // Embed URL without the ID, e.g. "//www.youtube.com/embed/"
	Options     []OptionDescriptor
}

// Option returns the descriptor with the given name.
func (d *Definition) Option(name string) (OptionDescriptor, bool) {
	return lo.Find(d.Options, func(o OptionDescriptor) bool {
		return o.Name == name
	})
}

// Registry holds provider definitions in match order.
type Registry struct {
	order  []string
	byName map[string]*Definition
}

// NewRegistry builds a registry from definitions. Match order is argument order.
func NewRegistry(defs ...*Definition) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Definition, len(defs))}
	for _, d := range defs {
		if err := validateDefinition(d); err != nil {
			return nil, err
		}
		if _, dup := r.byName[d.Name]; dup {
			return nil, fmt.Errorf("duplicate provider %q", d.Name)
		}
		r.order = append(r.order, d.Name)
		r.byName[d.Name] = d
	}
	return r, nil
}

func validateDefinition(d *Definition) error {
	if d == nil {
		return fmt.Errorf("nil provider definition")
	}
	if d.Name == "" || strings.EqualFold(d.Name, UnknownName) {
		return fmt.Errorf("invalid provider name %q", d.Name)
	}
	if d.Pattern == nil {
		return fmt.Errorf("provider %q has no pattern", d.Name)
	}
	if d.Pattern.NumSubexp() < 1 {
		return fmt.Errorf("provider %q pattern has no ID capture group", d.Name)
	}
	seen := make(map[string]bool, len(d.Options))
	for _, o := range d.Options {
		if o.Name == "" {
			return fmt.Errorf("provider %q has an unnamed option", d.Name)
		}
		if seen[o.Name] {
			return fmt.Errorf("provider %q declares option %q twice", d.Name, o.Name)
		}
		seen[o.Name] = true
	}
	return nil
}

// Names returns provider names in match order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Definitions returns all definitions in match order.
func (r *Registry) Definitions() []*Definition {
	return lo.Map(r.order, func(name string, _ int) *Definition {
		return r.byName[name]
	})
}

// Subset returns a registry holding only the named providers, kept in
// this registry's order.
func (r *Registry) Subset(names []string) (*Registry, error) {
	for _, n := range names {
		if _, ok := r.byName[n]; !ok {
			return nil, fmt.Errorf("unknown provider %q (valid: %s)", n, strings.Join(r.order, ", "))
		}
	}
	kept := lo.Filter(r.order, func(n string, _ int) bool {
		return lo.Contains(names, n)
	})
	return NewRegistry(lo.Map(kept, func(n string, _ int) *Definition {
		return r.byName[n]
	})...)
}

// StateSelector returns a CSS selector matching frames that embed any
// registered provider, including wrappers that keep the source in
// data-mce-p-src.
func (r *Registry) StateSelector() string {
	parts := make([]string, 0, len(r.order)*2)
	for _, name := range r.order {
		prefix := r.byName[name].EmbedPrefix
		parts = append(parts,
			fmt.Sprintf(`iframe[src*="%s"]`, prefix),
			fmt.Sprintf(`[data-mce-p-src*="%s"]`, prefix),
		)
	}
	return strings.Join(parts, ",")
}
