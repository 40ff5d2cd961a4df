package cmd

import (
	"errors"
	"testing"

	"vidembed/internal/config"
	"vidembed/internal/embed"
	"vidembed/internal/provider"
)

func setupTestState(t *testing.T) {
	t.Helper()
	cfg = config.Default()
	cfg.Width = "640"
	cfg.Height = "360"
	registry = provider.Default()
	t.Cleanup(func() {
		cfg = nil
		registry = nil
	})
}

func TestInitialRequestFromURL(t *testing.T) {
	setupTestState(t)

	req, err := initialRequest("  https://youtu.be/abc123  ")
	if err != nil {
		t.Fatalf("initialRequest: %v", err)
	}
	if req.URL != "https://youtu.be/abc123" {
		t.Errorf("URL = %q", req.URL)
	}
	if req.Width != "640" || req.Height != "360" {
		t.Errorf("dimensions = %sx%s, want config defaults 640x360", req.Width, req.Height)
	}
	if req.Options == nil {
		t.Error("Options should not be nil")
	}
}

func TestInitialRequestEmpty(t *testing.T) {
	setupTestState(t)

	req, err := initialRequest("")
	if err != nil {
		t.Fatalf("initialRequest: %v", err)
	}
	if req.URL != "" {
		t.Errorf("URL = %q, want empty", req.URL)
	}
}

func TestInitialRequestFromMarkup(t *testing.T) {
	setupTestState(t)

	html := `<iframe src="//player.vimeo.com/video/12345?title=0" width="500" height="281" allowfullscreen></iframe>`
	req, err := initialRequest(html)
	if err != nil {
		t.Fatalf("initialRequest: %v", err)
	}
	if req.URL != "//player.vimeo.com/video/12345" {
		t.Errorf("URL = %q", req.URL)
	}
	if req.Width != "500" || req.Height != "281" {
		t.Errorf("dimensions = %sx%s", req.Width, req.Height)
	}
	if !req.Fullscreen {
		t.Error("Fullscreen = false")
	}
	if req.Options["title"] != "0" {
		t.Errorf("Options[title] = %v, want \"0\"", req.Options["title"])
	}
}

func TestInitialRequestNoFrame(t *testing.T) {
	setupTestState(t)

	_, err := initialRequest("<p>no video here</p>")
	if !errors.Is(err, embed.ErrNoFrame) {
		t.Errorf("err = %v, want ErrNoFrame", err)
	}
}

func TestRequestFromFlags(t *testing.T) {
	setupTestState(t)

	flagWidth, flagHeight, flagSet = "800", "", map[string]string{"rel": "0"}
	t.Cleanup(func() { flagWidth, flagHeight, flagSet = "", "", nil })

	req := requestFromFlags(embedCmd, "https://youtu.be/abc123")
	if req.Width != "800" {
		t.Errorf("Width = %q, want flag value 800", req.Width)
	}
	if req.Height != "360" {
		t.Errorf("Height = %q, want config value 360", req.Height)
	}
	if req.Fullscreen {
		t.Error("Fullscreen should stay at the config default")
	}

	got := embed.Request(registry, req, false)
	want := `<iframe src="//www.youtube.com/embed/abc123?rel=0" width="800" height="360"></iframe>`
	if got != want {
		t.Errorf("rendered:\n got %s\nwant %s", got, want)
	}
}

func TestFormatProvider(t *testing.T) {
	got := FormatProvider(provider.Vimeo)
	want := "vimeo (//player.vimeo.com/video/) [portrait, title, byline]"
	if got != want {
		t.Errorf("FormatProvider = %q, want %q", got, want)
	}
}
