package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/goods-search/internal/translit"
)

func newVariantsCmd(out func(*cobra.Command) printer) *cobra.Command {
	var smart bool

	c := &cobra.Command{
		Use:   "variants <text>...",
		Short: "Print spelling variants of a text",
		Example: `  translit variants Реле
  translit variants --smart ш170-25`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			variants := translit.Variants(text, smart)
			return out(c).lines(map[string]any{"text": text, "smart": smart, "variants": variants}, variants...)
		},
	}
	c.Flags().BoolVar(&smart, "smart", false, "drop keyboard variants of part numbers")
	return c
}
