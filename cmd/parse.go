package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <url>",
	Short: "Show the provider, video ID and embed URL of a video URL",
	Args:  cobra.ExactArgs(1),
	RunE:  parseRun,
}

func parseRun(cmd *cobra.Command, args []string) error {
	v := registry.Parse(args[0])
	debugf("parsed %s as provider %s", args[0], v.Provider)

	if flagJSON {
		var id interface{}
		if v.ID != "" {
			id = v.ID
		}
		out := map[string]interface{}{
			"provider":  v.Provider,
			"id":        id,
			"embed_url": v.EmbedURL,
			"options":   v.Options,
			"query":     v.Query,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("provider:  %s\n", v.Provider)
	if v.Known() {
		fmt.Printf("id:        %s\n", v.ID)
	}
	fmt.Printf("embed url: %s\n", v.EmbedURL)

	if def, ok := registry.Lookup(v.Provider); ok {
		fmt.Println("options:")
		for _, o := range def.Options {
			state := "on"
			if !v.Options[o.Name] {
				state = "off"
			}
			fmt.Printf("  %-10s %-4s %s\n", o.Name, state, o.Label)
		}
	}

	if len(v.Query) > 0 {
		keys := make([]string, 0, len(v.Query))
		for k := range v.Query {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Println("query:")
		for _, k := range keys {
			fmt.Printf("  %s=%s\n", k, v.Query[k])
		}
	}

	return nil
}
