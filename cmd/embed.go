package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"vidembed/internal/embed"
	"vidembed/internal/media"
)

// embed flags, shared by the root command and `embed`
var (
	flagWidth      string
	flagHeight     string
	flagFullscreen bool
	flagSet        map[string]string
	flagPreview    bool
)

var embedCmd = &cobra.Command{
	Use:   "embed <url>",
	Short: "Print the <iframe> markup for a video URL",
	Example: `  vidembed embed https://youtu.be/dQw4w9WgXcQ --set rel=0
  vidembed embed https://vimeo.com/76979871 --width 640 --height 360 --fullscreen`,
	Args: cobra.ExactArgs(1),
	RunE: embedRun,
}

func init() {
	addEmbedFlags(embedCmd)
}

func addEmbedFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagWidth, "width", "W", "", "Frame width in pixels (default from config, 400)")
	c.Flags().StringVarP(&flagHeight, "height", "H", "", "Frame height in pixels (default from config, 300)")
	c.Flags().BoolVarP(&flagFullscreen, "fullscreen", "f", false, "Allow fullscreen")
	c.Flags().StringToStringVarP(&flagSet, "set", "s", nil, "Option values, e.g. --set rel=0,controls=0 (only \"0\" disables)")
	c.Flags().BoolVar(&flagPreview, "preview", false, "Add inline pixel sizing for preview panes")
}

// embedRun prints the markup for args[0]. With no URL it opens the dialog.
func embedRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return editRun(cmd, args)
	}

	req := requestFromFlags(cmd, args[0])
	debugf("embedding %s (%sx%s, fullscreen=%v)", req.URL, req.Width, req.Height, req.Fullscreen)

	if v := registry.Parse(req.URL); !v.Known() {
		if err := embed.CheckSource(req.URL); err != nil {
			logrus.WithField("url", req.URL).Warnf("unrecognized video URL: %v", err)
		}
	}

	html := embed.Request(registry, req, flagPreview)

	if flagJSON {
		v := registry.Parse(req.URL)
		out := map[string]interface{}{
			"provider": v.Provider,
			"id":       v.ID,
			"url":      embed.URL(v.EmbedURL, registry.Resolve(v, embed.MergeForm(v, req.Options))),
			"html":     html,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(html)
	return nil
}

// requestFromFlags builds a request for url: config defaults, then flags.
func requestFromFlags(cmd *cobra.Command, url string) media.EmbedRequest {
	req := cfg.Request(url)
	if flagWidth != "" {
		req.Width = flagWidth
	}
	if flagHeight != "" {
		req.Height = flagHeight
	}
	if cmd.Flags().Changed("fullscreen") {
		req.Fullscreen = flagFullscreen
	}
	for k, v := range flagSet {
		req.Options[k] = v
	}
	return req
}
