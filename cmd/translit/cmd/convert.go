package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/goods-search/internal/translit"
)

func newConvertCmd(out func(*cobra.Command) printer) *cobra.Command {
	var mode, dir string

	c := &cobra.Command{
		Use:   "convert <text>...",
		Short: "Apply a single mapping to a text",
		Example: `  translit convert --mode keyboard --dir ru-en Реле
  translit convert --mode semantic --dir en-ru rele`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			d, err := parseDirection(dir)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			var result string
			switch mode {
			case "keyboard":
				result = translit.TranslateKeyboard(text, d)
			case "semantic":
				result = translit.TranslateSemantic(text, d)
			default:
				return fmt.Errorf("unknown --mode %q (want keyboard or semantic)", mode)
			}
			return out(c).lines(map[string]string{"text": text, "mode": mode, "dir": d.String(), "result": result}, result)
		},
	}
	c.Flags().StringVar(&mode, "mode", "semantic", "keyboard or semantic")
	c.Flags().StringVar(&dir, "dir", "ru-en", "ru-en or en-ru")
	return c
}

func parseDirection(s string) (translit.Direction, error) {
	switch strings.ToLower(s) {
	case translit.RUToEN.String():
		return translit.RUToEN, nil
	case translit.ENToRU.String():
		return translit.ENToRU, nil
	default:
		return 0, fmt.Errorf("unknown --dir %q (want ru-en or en-ru)", s)
	}
}
