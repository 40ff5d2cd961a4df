package embed

import (
	"strings"
	"testing"

	"vidembed/internal/media"
	"vidembed/internal/provider"
)

func TestRender(t *testing.T) {
	opts := provider.ResolveOptions(provider.YouTube, media.FormValues{"rel": false})
	got := Render("//www.youtube.com/embed/abc123", "400", "300", false, opts)

	want := `<iframe src="//www.youtube.com/embed/abc123?rel=0" width="400" height="300"></iframe>`
	if got != want {
		t.Errorf("Render() =\n  %s\nwant\n  %s", got, want)
	}
	if !strings.Contains(got, "rel=0") {
		t.Error("disabled option rel missing from embed URL")
	}
	for _, name := range []string{"controls=", "showinfo="} {
		if strings.Contains(got, name) {
			t.Errorf("enabled option %q should be omitted", name)
		}
	}
}

func TestRenderVariants(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  string
	}{
		{
			"no options",
			Frame{URL: "//player.vimeo.com/video/1", Width: "640", Height: "360"},
			`<iframe src="//player.vimeo.com/video/1" width="640" height="360"></iframe>`,
		},
		{
			"several disabled in provider order",
			Frame{URL: "//player.vimeo.com/video/1", Width: "640", Height: "360",
				Options: provider.ResolveOptions(provider.Vimeo, media.FormValues{"byline": "0", "portrait": false})},
			`<iframe src="//player.vimeo.com/video/1?portrait=0&byline=0" width="640" height="360"></iframe>`,
		},
		{
			"fullscreen with inline style",
			Frame{URL: "//www.youtube.com/embed/x", Width: "640", Height: "360", Fullscreen: true, InlineStyle: true},
			`<iframe src="//www.youtube.com/embed/x" width="640" height="360" allowfullscreen style="width: 640px; height: 360px;"></iframe>`,
		},
		{
			"default dimensions",
			Frame{URL: "//www.youtube.com/embed/x"},
			`<iframe src="//www.youtube.com/embed/x" width="400" height="300"></iframe>`,
		},
		{
			"url already has a query",
			Frame{URL: "https://example.com/player?id=1",
				Options: provider.Options{{Name: "rel", Enabled: false}}},
			`<iframe src="https://example.com/player?id=1&rel=0" width="400" height="300"></iframe>`,
		},
		{
			"values inserted verbatim",
			Frame{URL: `x"onload="alert(1)`, Width: "100%", Height: "<b>"},
			`<iframe src="x"onload="alert(1)" width="100%" height="<b>"></iframe>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frame.HTML(); got != tt.want {
				t.Errorf("HTML() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	v := provider.Parse("https://youtu.be/abc?controls=0")
	opts := provider.Default().Resolve(v, media.FormValues{"controls": "0", "showinfo": false})

	first := RenderPreview(v.EmbedURL, "560", "315", true, opts)
	second := RenderPreview(v.EmbedURL, "560", "315", true, opts)
	if first != second {
		t.Errorf("rendering twice differs:\n  %s\n  %s", first, second)
	}
}

func TestRequest(t *testing.T) {
	reg := provider.Default()

	tests := []struct {
		name string
		req  media.EmbedRequest
		want string
	}{
		{
			"url query carried over",
			media.EmbedRequest{URL: "https://www.youtube.com/watch?v=abc&rel=0", Width: "400", Height: "300"},
			`<iframe src="//www.youtube.com/embed/abc?rel=0" width="400" height="300"></iframe>`,
		},
		{
			"form value overrides url query",
			media.EmbedRequest{URL: "https://youtu.be/abc?rel=0", Options: media.FormValues{"rel": true, "showinfo": "0"}},
			`<iframe src="//www.youtube.com/embed/abc?showinfo=0" width="400" height="300"></iframe>`,
		},
		{
			"unknown url embedded unchanged",
			media.EmbedRequest{URL: "https://example.com/video", Width: "1", Height: "2", Options: media.FormValues{"rel": "0"}},
			`<iframe src="https://example.com/video" width="1" height="2"></iframe>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Request(reg, tt.req, false); got != tt.want {
				t.Errorf("Request() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}
