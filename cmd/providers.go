package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"vidembed/internal/provider"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the enabled video providers and their options",
	Args:  cobra.NoArgs,
	RunE:  providersRun,
}

func providersRun(cmd *cobra.Command, args []string) error {
	defs := registry.Definitions()

	if flagJSON {
		type option struct {
			Name    string `json:"name"`
			Label   string `json:"label"`
			Default bool   `json:"default"`
		}
		type entry struct {
			Name        string   `json:"name"`
			EmbedPrefix string   `json:"embed_prefix"`
			Options     []option `json:"options"`
		}
		out := lo.Map(defs, func(d *provider.Definition, _ int) entry {
			return entry{
				Name:        d.Name,
				EmbedPrefix: d.EmbedPrefix,
				Options: lo.Map(d.Options, func(o provider.OptionDescriptor, _ int) option {
					return option{Name: o.Name, Label: o.Label, Default: o.DefaultEnabled}
				}),
			}
		})
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, d := range defs {
		fmt.Println(FormatProvider(d))
		for _, o := range d.Options {
			fmt.Printf("  %-10s %s\n", o.Name, o.Label)
		}
	}
	return nil
}

// FormatProvider creates a one-line summary of a provider.
func FormatProvider(d *provider.Definition) string {
	names := lo.Map(d.Options, func(o provider.OptionDescriptor, _ int) string {
		return o.Name
	})
	return fmt.Sprintf("%s (%s) [%s]", d.Name, d.EmbedPrefix, strings.Join(names, ", "))
}
