package cmd

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/goods-search/internal/translit"
)

func newSearchTextCmd(out func(*cobra.Command) printer) *cobra.Command {
	return &cobra.Command{
		Use:     "search-text <text>...",
		Short:   "Build the search_text value stored for the given fields",
		Example: `  translit search-text Реле Finder`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			text := translit.SearchText(args...)
			return out(c).lines(map[string]string{"search_text": text}, text)
		},
	}
}
