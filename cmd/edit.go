package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vidembed/internal/embed"
	"vidembed/internal/media"
	"vidembed/internal/ui"
)

var flagFile string

var editCmd = &cobra.Command{
	Use:   "edit [url|html]",
	Short: "Insert or edit a video in an interactive dialog",
	Long: `Opens the video dialog in the terminal. Given existing <iframe> markup
(as an argument or with --file) the dialog starts from that video; given a
URL it starts from the URL. The inserted markup is printed to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: editRun,
}

func init() {
	editCmd.Flags().StringVarP(&flagFile, "file", "i", "", "Read existing embed markup from a file")
}

func editRun(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stderr.Fd())) {
		return fmt.Errorf("the video dialog needs an interactive terminal; use `vidembed embed <url>` instead")
	}

	input := ""
	if len(args) > 0 {
		input = args[0]
	}
	if flagFile != "" {
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return fmt.Errorf("reading %s: %w", flagFile, err)
		}
		input = string(data)
	}

	initial, err := initialRequest(input)
	if err != nil {
		return err
	}

	html, err := ui.Run(registry, initial, logrus.StandardLogger())
	if errors.Is(err, ui.ErrCancelled) {
		debugf("dialog cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Println(html)
	return nil
}

// initialRequest seeds the dialog from markup, a URL, or nothing.
func initialRequest(input string) (media.EmbedRequest, error) {
	input = strings.TrimSpace(input)
	if !strings.Contains(input, "<") {
		return cfg.Request(input), nil
	}

	if !embed.IsProviderFrame(registry, input) {
		logrus.Warn("markup does not embed a known provider; its source will be kept as is")
	}
	req, err := embed.ReadSelection(registry, input)
	if err != nil {
		return media.EmbedRequest{}, fmt.Errorf("reading existing embed: %w", err)
	}
	debugf("editing %s (%sx%s)", req.URL, req.Width, req.Height)
	return req, nil
}
