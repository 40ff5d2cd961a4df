package provider

import (
	"strings"

	"vidembed/internal/media"
)

// Parse matches rawURL against each provider in registry order; the first
// match wins. URLs no provider recognizes come back as the unknown
// provider with the raw URL as their embed URL.
func (r *Registry) Parse(rawURL string) media.ParsedVideo {
	for _, name := range r.order {
		d := r.byName[name]
		m := d.Pattern.FindStringSubmatch(rawURL)
		if m == nil || m[1] == "" {
			continue
		}
		return d.parsed(m)
	}
	return media.ParsedVideo{
		Provider: UnknownName,
		EmbedURL: rawURL,
		Options:  map[string]bool{},
		Query:    map[string]string{},
	}
}

// Parse parses rawURL against the built-in providers.
func Parse(rawURL string) media.ParsedVideo {
	return Default().Parse(rawURL)
}

func (d *Definition) parsed(m []string) media.ParsedVideo {
	id := m[1]
	var rest string
	if len(m) > 2 {
		rest = m[2]
	}
	query := splitQuery(rest)

	opts := make(map[string]bool, len(d.Options))
	for _, o := range d.Options {
		opts[o.Name] = o.DefaultEnabled
		if v, ok := query[o.Name]; ok {
			opts[o.Name] = !IsDisabled(v)
		}
	}

	return media.ParsedVideo{
		Provider: d.Name,
		ID:       id,
		EmbedURL: d.EmbedPrefix + id,
		Options:  opts,
		Query:    query,
	}
}

// splitQuery splits "a=1&b=2" into pairs. A piece without "=" maps to ""
// and later keys override earlier ones. No percent-decoding is done.
func splitQuery(q string) map[string]string {
	pairs := map[string]string{}
	if q == "" {
		return pairs
	}
	for _, piece := range strings.Split(q, "&") {
		k, v, _ := strings.Cut(piece, "=")
		if k == "" {
			continue
		}
		pairs[k] = v
	}
	return pairs
}
