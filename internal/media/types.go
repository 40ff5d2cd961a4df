// Package media defines shared types for the vidembed application.
package media

// UnknownProvider is the provider name reported for URLs no provider matches.
const UnknownProvider = "unknown"

// Default frame dimensions used when the form leaves them empty.
const (
	DefaultWidth  = "400"
	DefaultHeight = "300"
)

// ParsedVideo is the normalized identity of a video URL.
type ParsedVideo struct {
	Provider string            // Provider name, or UnknownProvider
	ID       string            // Video ID; empty when the provider is unknown
	EmbedURL string            // Base embed URL (no option query), or the raw URL when unknown
	Options  map[string]bool   // Option values, keyed by the provider's option names only
	Query    map[string]string // Every key/value pair from the trailing query string
}

// Known reports whether the URL matched a registered provider.
func (p ParsedVideo) Known() bool {
	return p.Provider != UnknownProvider && p.Provider != ""
}

// FormValues holds raw option values as a form reports them.
// Values are bool, string, or absent.
type FormValues map[string]any

// EmbedRequest is the state of one insert/edit dialog.
type EmbedRequest struct {
	URL        string
	Width      string
	Height     string
	Fullscreen bool
	Options    FormValues
}

// WithDefaults returns a copy of r with empty dimensions set to 400x300
// and a non-nil Options map.
func (r EmbedRequest) WithDefaults() EmbedRequest {
	if r.Width == "" {
		r.Width = DefaultWidth
	}
	if r.Height == "" {
		r.Height = DefaultHeight
	}
	opts := make(FormValues, len(r.Options))
	for k, v := range r.Options {
		opts[k] = v
	}
	r.Options = opts
	return r
}
