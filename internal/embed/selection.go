package embed

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vidembed/internal/media"
	"vidembed/internal/provider"
)

// ErrNoFrame is returned when markup holds no frame with a source.
var ErrNoFrame = errors.New("no embedded frame found")

// wrapperSelector matches the element some editors wrap a live iframe in;
// the wrapper keeps the original attributes under data-mce-p-*.
const wrapperSelector = "[data-mce-p-src]"

// ReadSelection reads existing embed markup back into a request so it can
// be edited. The frame's source is parsed with reg: for a known provider
// the request URL becomes the clean embed URL and its option query values
// become form values. Missing dimensions default to 400x300.
func ReadSelection(reg *provider.Registry, html string) (media.EmbedRequest, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return media.EmbedRequest{}, fmt.Errorf("parsing selection: %w", err)
	}

	frame := doc.Find("iframe").First()
	wrap := doc.Find(wrapperSelector).First()
	if frame.Length() == 0 && wrap.Length() == 0 {
		return media.EmbedRequest{}, ErrNoFrame
	}

	src := firstAttr(frame, "src")
	if src == "" {
		src = firstAttr(wrap, "data-mce-p-src")
	}
	src = strings.TrimSpace(src)
	if src == "" {
		return media.EmbedRequest{}, fmt.Errorf("%w: frame has no source", ErrNoFrame)
	}

	req := media.EmbedRequest{
		URL:        src,
		Width:      firstAttr(frame, "width"),
		Height:     firstAttr(frame, "height"),
		Fullscreen: hasAttr(frame, "allowfullscreen") || hasAttr(wrap, "data-mce-p-allowfullscreen"),
		Options:    media.FormValues{},
	}
	if req.Width == "" {
		req.Width = firstAttr(wrap, "width", "data-mce-p-width")
	}
	if req.Height == "" {
		req.Height = firstAttr(wrap, "height", "data-mce-p-height")
	}

	v := reg.Parse(src)
	if def, ok := reg.Lookup(v.Provider); ok {
		req.URL = v.EmbedURL
		for _, o := range def.Options {
			if raw, ok := v.Query[o.Name]; ok {
				req.Options[o.Name] = raw
			}
		}
	}

	return req.WithDefaults(), nil
}

// IsProviderFrame reports whether html contains a frame embedding one of
// reg's providers.
func IsProviderFrame(reg *provider.Registry, html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return doc.Find(reg.StateSelector()).Length() > 0
}

func firstAttr(s *goquery.Selection, names ...string) string {
	if s.Length() == 0 {
		return ""
	}
	for _, n := range names {
		if v := strings.TrimSpace(s.AttrOr(n, "")); v != "" {
			return v
		}
	}
	return ""
}

func hasAttr(s *goquery.Selection, name string) bool {
	if s.Length() == 0 {
		return false
	}
	_, ok := s.Attr(name)
	return ok
}
