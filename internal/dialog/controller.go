// Package dialog drives the insert/edit video dialog. The dialog widgets
// themselves belong to a FormHost; the controller only decides which
// options to offer, what the preview shows and what gets inserted.
package dialog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"vidembed/internal/embed"
	"vidembed/internal/media"
	"vidembed/internal/provider"
)

// ErrEmptyURL is returned by Submit when the dialog has no video URL.
var ErrEmptyURL = errors.New("video URL is empty")

// FormHost is the UI capability the controller drives.
type FormHost interface {
	// Values returns the current field values.
	Values() media.EmbedRequest

	// Fill sets every field from req.
	Fill(req media.EmbedRequest)

	// ShowOptions replaces the option checkboxes. defs is empty for
	// URLs no provider recognizes.
	ShowOptions(defs []provider.OptionDescriptor, checked map[string]bool)

	// ShowPreview replaces the preview pane.
	ShowPreview(html string)

	// Insert hands the final markup to the host content.
	Insert(html string) error
}

// Controller owns the state of one open dialog.
type Controller struct {
	reg  *provider.Registry
	host FormHost
	log  logrus.FieldLogger

	lastURL string
	video   media.ParsedVideo
	form    media.EmbedRequest
}

// New creates a controller for host. A nil logger uses the logrus
// standard logger.
func New(reg *provider.Registry, host FormHost, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{reg: reg, host: host, log: log.WithField("component", "dialog")}
}

// Open fills the host from initial, with empty dimensions defaulted to
// 400x300, and renders options and preview.
func (c *Controller) Open(initial media.EmbedRequest) {
	c.lastURL = ""
	c.video = media.ParsedVideo{}
	c.host.Fill(initial.WithDefaults())
	c.Refresh()
}

// Refresh re-reads the host. When the URL changed since the last refresh
// it is parsed again and option values from its query replace the form's;
// otherwise the form's option values are kept as the user left them.
func (c *Controller) Refresh() media.ParsedVideo {
	req := c.host.Values()
	if req.Options == nil {
		req.Options = media.FormValues{}
	}

	if req.URL != c.lastURL || c.video.Provider == "" {
		c.video = c.reg.Parse(req.URL)
		c.lastURL = req.URL
		c.mergeURLOptions(req.Options)
		c.log.WithFields(logrus.Fields{
			"provider": c.video.Provider,
			"id":       c.video.ID,
		}).Debug("video URL changed")
	}
	c.form = req

	def, ok := c.reg.Lookup(c.video.Provider)
	if !ok {
		c.host.ShowOptions(nil, nil)
	} else {
		c.host.ShowOptions(def.Options, provider.ResolveOptions(def, req.Options).Map())
	}

	if strings.TrimSpace(req.URL) == "" {
		c.host.ShowPreview("")
	} else {
		c.host.ShowPreview(c.frame(true).HTML())
	}
	return c.video
}

// Submit renders the final markup and inserts it through the host.
func (c *Controller) Submit() (string, error) {
	c.Refresh()
	if strings.TrimSpace(c.form.URL) == "" {
		return "", ErrEmptyURL
	}

	html := c.frame(false).HTML()
	if err := c.host.Insert(html); err != nil {
		return "", fmt.Errorf("inserting embed: %w", err)
	}
	c.log.WithField("provider", c.video.Provider).Debug("embed inserted")
	return html, nil
}

// Video returns the parse result for the current URL.
func (c *Controller) Video() media.ParsedVideo {
	return c.video
}

func (c *Controller) mergeURLOptions(form media.FormValues) {
	def, ok := c.reg.Lookup(c.video.Provider)
	if !ok {
		return
	}
	for _, o := range def.Options {
		if raw, ok := c.video.Query[o.Name]; ok {
			form[o.Name] = raw
			continue
		}
		if _, set := form[o.Name]; !set && !o.DefaultEnabled {
			form[o.Name] = false
		}
	}
}

func (c *Controller) frame(preview bool) embed.Frame {
	return embed.Frame{
		URL:         c.video.EmbedURL,
		Width:       c.form.Width,
		Height:      c.form.Height,
		Fullscreen:  c.form.Fullscreen,
		InlineStyle: preview,
		Options:     c.reg.Resolve(c.video, c.form.Options),
	}
}
