package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	var asJSON bool

	root := &cobra.Command{
		Use:          "translit",
		Short:        "Cyrillic/Latin transliteration toolbox",
		Long:         "Generate spelling variants, expand search queries and build search_text values the way the catalog does.",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print JSON instead of plain lines")

	out := func(c *cobra.Command) printer {
		return printer{w: c.OutOrStdout(), json: asJSON}
	}

	root.AddCommand(
		newVariantsCmd(out),
		newExpandCmd(out),
		newSearchTextCmd(out),
		newConvertCmd(out),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

type printer struct {
	w    io.Writer
	json bool
}

func (p printer) lines(v any, lines ...string) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(p.w, strings.Join(lines, "\n"))
	return err
}
