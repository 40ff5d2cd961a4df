package provider

import (
	"github.com/samber/lo"

	"vidembed/internal/media"
)

// OptionValue is one resolved option.
type OptionValue struct {
	Name    string
	Enabled bool
}

// Options is a resolved option set in provider declaration order.
type Options []OptionValue

// Enabled reports the value of the named option and whether it is present.
func (o Options) Enabled(name string) (enabled, ok bool) {
	for _, v := range o {
		if v.Name == name {
			return v.Enabled, true
		}
	}
	return false, false
}

// Map returns the options as a name to value mapping.
func (o Options) Map() map[string]bool {
	return lo.SliceToMap(o, func(v OptionValue) (string, bool) {
		return v.Name, v.Enabled
	})
}

// Disabled returns the names of disabled options, in order.
func (o Options) Disabled() []string {
	return lo.FilterMap(o, func(v OptionValue, _ int) (string, bool) {
		return v.Name, !v.Enabled
	})
}

// IsDisabled reports whether a raw form value turns an option off.
// Only bool false and the string "0" do; every other value, including
// nil, "" and "false", leaves the option on.
func IsDisabled(v any) bool {
	switch x := v.(type) {
	case bool:
		return !x
	case string:
		return x == "0"
	}
	return false
}

// ResolveOptions resolves every option of def against raw form values.
// A nil definition resolves to no options.
func ResolveOptions(def *Definition, form media.FormValues) Options {
	if def == nil {
		return nil
	}
	opts := make(Options, 0, len(def.Options))
	for _, o := range def.Options {
		opts = append(opts, OptionValue{
			Name:    o.Name,
			Enabled: !IsDisabled(form[o.Name]),
		})
	}
	return opts
}

// Resolve resolves the options of the provider a parsed video belongs to.
func (r *Registry) Resolve(v media.ParsedVideo, form media.FormValues) Options {
	def, _ := r.Lookup(v.Provider)
	return ResolveOptions(def, form)
}
