// Package embed renders embed markup for parsed videos and reads existing
// embed markup back into an editable request.
//
// Nothing here HTML-escapes its input: the URL and the dimensions are
// written into the markup exactly as the caller supplies them.
package embed

import (
	"strings"

	"vidembed/internal/media"
	"vidembed/internal/provider"
)

// Frame is everything needed to render one iframe.
type Frame struct {
	URL         string // Base embed URL
	Width       string
	Height      string
	Fullscreen  bool
	InlineStyle bool // Also emit pixel sizing as an inline style (previews)
	Options     provider.Options
}

// Render returns the iframe markup for embedURL with every disabled
// option appended as name=0.
func Render(embedURL, width, height string, fullscreen bool, opts provider.Options) string {
	return Frame{URL: embedURL, Width: width, Height: height, Fullscreen: fullscreen, Options: opts}.HTML()
}

// RenderPreview is Render plus an inline width/height style, which some
// preview panes need to size the frame.
func RenderPreview(embedURL, width, height string, fullscreen bool, opts provider.Options) string {
	return Frame{URL: embedURL, Width: width, Height: height, Fullscreen: fullscreen, InlineStyle: true, Options: opts}.HTML()
}

// URL returns embedURL with "name=0" added for each disabled option.
// Enabled options are left out since every provider treats them as on.
func URL(embedURL string, opts provider.Options) string {
	disabled := opts.Disabled()
	if len(disabled) == 0 {
		return embedURL
	}
	queries := make([]string, len(disabled))
	for i, name := range disabled {
		queries[i] = name + "=0"
	}
	sep := "?"
	if strings.Contains(embedURL, "?") {
		sep = "&"
	}
	return embedURL + sep + strings.Join(queries, "&")
}

// HTML renders the frame. Empty dimensions fall back to 400x300.
func (f Frame) HTML() string {
	width, height := f.Width, f.Height
	if width == "" {
		width = media.DefaultWidth
	}
	if height == "" {
		height = media.DefaultHeight
	}

	var b strings.Builder
	b.WriteString(`<iframe src="`)
	b.WriteString(URL(f.URL, f.Options))
	b.WriteString(`" width="`)
	b.WriteString(width)
	b.WriteString(`" height="`)
	b.WriteString(height)
	b.WriteString(`"`)
	if f.Fullscreen {
		b.WriteString(" allowfullscreen")
	}
	if f.InlineStyle {
		b.WriteString(` style="width: `)
		b.WriteString(width)
		b.WriteString(`px; height: `)
		b.WriteString(height)
		b.WriteString(`px;"`)
	}
	b.WriteString("></iframe>")
	return b.String()
}

// Request renders a dialog request: the URL is parsed with reg, option
// values found in the URL's query are taken as form values unless the
// request sets them, and the result rendered. Unknown URLs are embedded
// unchanged with no options.
func Request(reg *provider.Registry, req media.EmbedRequest, preview bool) string {
	v := reg.Parse(req.URL)
	f := Frame{
		URL:         v.EmbedURL,
		Width:       req.Width,
		Height:      req.Height,
		Fullscreen:  req.Fullscreen,
		InlineStyle: preview,
		Options:     reg.Resolve(v, MergeForm(v, req.Options)),
	}
	return f.HTML()
}

// MergeForm layers form values over the option values found in the
// parsed URL's query.
func MergeForm(v media.ParsedVideo, form media.FormValues) media.FormValues {
	merged := media.FormValues{}
	for k := range v.Options {
		if raw, ok := v.Query[k]; ok {
			merged[k] = raw
		}
	}
	for k, val := range form {
		merged[k] = val
	}
	return merged
}
