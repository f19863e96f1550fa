package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/goods-search/internal/domain"
	"github.com/heartmarshall/goods-search/internal/translit"
)

func newExpandCmd(out func(*cobra.Command) printer) *cobra.Command {
	return &cobra.Command{
		Use:     "expand <query>...",
		Short:   "Expand a search query into priority and fallback variants",
		Example: `  translit expand реле финдер`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			query := domain.NormalizeQuery(strings.Join(args, " "))
			exp := translit.ExpandQuery(query)

			lines := make([]string, 0, len(exp.All))
			for _, v := range exp.Priority {
				lines = append(lines, "priority\t"+v)
			}
			for _, v := range exp.Fallback {
				lines = append(lines, "fallback\t"+v)
			}
			return out(c).lines(exp, lines...)
		},
	}
}
