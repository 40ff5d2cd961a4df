package provider

import (
	"regexp"

	"vidembed/internal/media"
)

// UnknownName is the provider name reported when no definition matches.
const UnknownName = media.UnknownProvider

// YouTube matches:
//
//	https://youtu.be/$id
//	https://www.youtube.com/watch?v=$id
//	https://www.youtube.com/embed/$id
var YouTube = &Definition{
	Name:        "youtube",
	Pattern:     regexp.MustCompile(`(?i)youtu(?:\.be|be\.com)/(?:watch\?v=|embed/)?([a-z0-9\-_]+)(?:\?|&)?(.+)?`),
	EmbedPrefix: "//www.youtube.com/embed/",
	Options: []OptionDescriptor{
		{Name: "rel", Label: "Show suggested videos when the video finishes", DefaultEnabled: true},
		{Name: "controls", Label: "Show player controls", DefaultEnabled: true},
		{Name: "showinfo", Label: "Show video title and player actions", DefaultEnabled: true},
	},
}

// Vimeo matches:
//
//	https://vimeo.com/$id
//	https://player.vimeo.com/video/$id
var Vimeo = &Definition{
	Name:        "vimeo",
	Pattern:     regexp.MustCompile(`(?:player\.)?vimeo\.com/(?:video/)?([0-9]+)(?:\?|&)?(.+)?`),
	EmbedPrefix: "//player.vimeo.com/video/",
	Options: []OptionDescriptor{
		{Name: "portrait", Label: "Show portrait in overlay", DefaultEnabled: true},
		{Name: "title", Label: "Show title in overlay", DefaultEnabled: true},
		{Name: "byline", Label: "Show byline in overlay", DefaultEnabled: true},
	},
}

var defaultRegistry = mustRegistry(YouTube, Vimeo)

// Default returns the registry of built-in providers: youtube, then vimeo.
func Default() *Registry {
	return defaultRegistry
}

func mustRegistry(defs ...*Definition) *Registry {
	r, err := NewRegistry(defs...)
	if err != nil {
		panic(err)
	}
	return r
}
